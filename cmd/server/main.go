package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/enlist-app/enlist-backend/internal/config"
	"github.com/enlist-app/enlist-backend/internal/database"
	"github.com/enlist-app/enlist-backend/internal/handlers"
	"github.com/enlist-app/enlist-backend/internal/middleware"
	"github.com/enlist-app/enlist-backend/internal/routes"
	"github.com/enlist-app/enlist-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Connect to PostgreSQL and create the schema
	log.Printf("Connecting to PostgreSQL...")
	db, err := database.ConnectPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()

	if err := database.InitPostgresTables(db); err != nil {
		log.Fatal("Failed to initialize PostgreSQL tables:", err)
	}

	users := services.NewUserStore(db)

	// Connect to MongoDB when a URI is configured. Without it the service
	// runs relational-only and profile pictures are not stored.
	var profiles handlers.ProfileStore
	if cfg.MongoURI != "" {
		log.Printf("Connecting to MongoDB...")
		mongoClient, mongoDB, err := database.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer database.DisconnectMongo(mongoClient)

		profileStore := services.NewProfileStore(mongoDB)
		if err := profileStore.EnsureIndexes(context.Background()); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure MongoDB profile indexes: %v", err)
		}
		profiles = profileStore
	} else {
		log.Println("MONGO_URI not set; profile pictures disabled")
	}

	// Initialize Cloudinary when credentials are present
	var uploads *handlers.UploadHandler
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		cloudinaryService, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Profile picture uploads will not be available")
		} else {
			uploads = handlers.NewUploadHandler(cloudinaryService)
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Profile picture uploads will not be available")
	}

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestLogger)

	// Connect to Redis for per-IP rate limiting
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		rdb, err := database.ConnectRedis(cfg.RedisURI)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer rdb.Close()
		r.Use(middleware.RateLimit(rdb))
	} else {
		log.Println("REDIS_URI not set; rate limiting disabled")
	}

	// Health check (no auth, no body)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	h := handlers.New(users, profiles)
	routes.SetupRoutes(r, h, uploads)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /register_user/")
	log.Println("  GET  /user/{user_id}")
	if uploads != nil {
		log.Println("  POST /upload")
	}

	log.Printf("🚀 Enlist backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
