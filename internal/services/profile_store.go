package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enlist-app/enlist-backend/internal/models"
)

const profilesCollection = "profiles"

// ProfileStore keeps per-user profile-picture documents in MongoDB.
// At most one document per user by construction; reads take the first match.
type ProfileStore struct {
	col *mongo.Collection
}

func NewProfileStore(db *mongo.Database) *ProfileStore {
	return &ProfileStore{col: db.Collection(profilesCollection)}
}

// EnsureIndexes configures indexes for the profiles collection.
// Called on startup from main after Mongo has connected. The index is not
// unique; the store enforces nothing beyond "insert if provided".
func (s *ProfileStore) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("idx_user_id"),
	}
	_, err := s.col.Indexes().CreateOne(ctx, model)
	return err
}

// Insert stores the profile picture reference for a user.
func (s *ProfileStore) Insert(ctx context.Context, userID int64, profilePicture string) error {
	doc := models.ProfileDocument{
		UserID:         userID,
		ProfilePicture: profilePicture,
	}
	_, err := s.col.InsertOne(ctx, doc)
	return err
}

// FindByUserID returns the profile picture for a user. The bool reports
// whether a document exists.
func (s *ProfileStore) FindByUserID(ctx context.Context, userID int64) (string, bool, error) {
	var doc models.ProfileDocument
	err := s.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", false, nil
		}
		return "", false, err
	}
	return doc.ProfilePicture, true, nil
}
