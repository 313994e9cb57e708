package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/enlist-app/enlist-backend/internal/models"
	"github.com/enlist-app/enlist-backend/internal/services"
)

// UserStore is the relational store surface the handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, u *models.User) (int64, error)
}

// ProfileStore is the document store surface the handlers need.
type ProfileStore interface {
	Insert(ctx context.Context, userID int64, profilePicture string) error
	FindByUserID(ctx context.Context, userID int64) (string, bool, error)
}

// Handler serves the registration and lookup endpoints. Profiles is nil when
// no document store is configured; profile pictures are then neither stored
// nor returned.
type Handler struct {
	users    UserStore
	profiles ProfileStore
}

func New(users UserStore, profiles ProfileStore) *Handler {
	return &Handler{users: users, profiles: profiles}
}

// RegisterUser handles POST /register_user/.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" || req.Phone == "" {
		respondError(w, http.StatusBadRequest, "full_name, email, password and phone are required")
		return
	}

	ctx := r.Context()

	// Check if email already exists
	existing, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, "Email already registered")
		return
	}

	// Check if phone already exists
	existing, err = h.users.FindByPhone(ctx, req.Phone)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, "Phone number already registered")
		return
	}

	// Insert the user. Two concurrent registrations can both pass the checks
	// above; the unique constraints break the tie and surface here.
	userID, err := h.users.Create(ctx, &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		switch err {
		case services.ErrDuplicateEmail:
			respondError(w, http.StatusBadRequest, "Email already registered")
		case services.ErrDuplicatePhone:
			respondError(w, http.StatusBadRequest, "Phone number already registered")
		default:
			respondError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	// Store the profile picture document. The user row is already committed,
	// so a failure here leaves the row in place; log and acknowledge anyway.
	if req.ProfilePicture != "" && h.profiles != nil {
		if err := h.profiles.Insert(ctx, userID, req.ProfilePicture); err != nil {
			log.Printf("failed to store profile picture for user %d: %v", userID, err)
		}
	}

	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "User registered successfully"})
}

// GetUser handles GET /user/{user_id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx := r.Context()

	user, err := h.users.FindByID(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	resp := models.UserDetailResponse{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
	}

	if h.profiles != nil {
		picture, found, err := h.profiles.FindByUserID(ctx, userID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if found {
			resp.ProfilePicture = &picture
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, models.ErrorResponse{Detail: detail})
}
