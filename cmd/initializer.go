package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"clutchzone/internal/config"
	"clutchzone/internal/handlers"
	"clutchzone/internal/repositories"
	"clutchzone/internal/services"
	"clutchzone/utils"
)

type application struct {
	errorLog   *log.Logger
	infoLog    *log.Logger
	db         *sql.DB
	signingKey string

	tokenManager *utils.Manager
	adminFeed    *AdminFeed

	authService        *services.AuthService
	sessionRepo        *repositories.SessionRepository
	carHandler         *handlers.CarHandler
	propertyHandler    *handlers.PropertyHandler
	requestHandler     *handlers.PurchaseRequestHandler
	settingsHandler    *handlers.SettingsHandler
	authHandler        *handlers.AuthHandler
	dashboardHandler   *handlers.DashboardHandler
	installmentHandler *handlers.InstallmentHandler
	deviceHandler      *handlers.DeviceHandler
	healthHandler      *handlers.HealthHandler
}

func initializeApp(ctx context.Context, cfg config.Config, db *sql.DB, errorLog, infoLog *log.Logger) *application {
	// Repositories
	carRepo := repositories.CarRepository{DB: db}
	propertyRepo := repositories.PropertyRepository{DB: db}
	requestRepo := repositories.PurchaseRequestRepository{DB: db}
	settingsRepo := repositories.SettingsRepository{DB: db}
	sessionRepo := repositories.SessionRepository{DB: db}
	deviceRepo := repositories.DeviceRepository{DB: db}

	cache := openRedis(cfg, infoLog, errorLog)
	fcmClient := openFCM(ctx, cfg, infoLog, errorLog)
	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatalf("token manager: %v", err)
	}
	storage := openStorage(cfg, errorLog)
	handlers.SetErrorLog(errorLog)

	adminFeed := NewAdminFeed()

	passwordHash := cfg.Auth.AdminPassword
	if passwordHash != "" && !isBcryptHash(passwordHash) {
		hashed, err := services.HashPassword(passwordHash)
		if err != nil {
			errorLog.Fatalf("hash admin password: %v", err)
		}
		passwordHash = hashed
	}

	// Services
	notifier := &services.NotificationService{Client: fcmClient, DeviceRepo: &deviceRepo, ErrorLog: errorLog}
	carService := &services.CarService{CarRepo: &carRepo, Cache: cache}
	propertyService := &services.PropertyService{PropertyRepo: &propertyRepo, Cache: cache}
	requestService := &services.PurchaseRequestService{
		RequestRepo:  &requestRepo,
		CarRepo:      &carRepo,
		PropertyRepo: &propertyRepo,
		Feed:         adminFeed,
		Notifier:     notifier,
	}
	settingsService := services.NewSettingsService(ctx, &settingsRepo, errorLog)
	authService := &services.AuthService{
		AdminEmail:   cfg.Auth.AdminEmail,
		AdminName:    cfg.Auth.AdminName,
		PasswordHash: passwordHash,
		SigningKey:   cfg.Auth.SigningKey,
		SessionRepo:  &sessionRepo,
		TokenManager: tokenManager,
	}
	dashboardService := &services.DashboardService{
		CarRepo:      &carRepo,
		PropertyRepo: &propertyRepo,
		RequestRepo:  &requestRepo,
	}

	return &application{
		errorLog:   errorLog,
		infoLog:    infoLog,
		db:         db,
		signingKey: cfg.Auth.SigningKey,

		tokenManager: tokenManager,
		adminFeed:    adminFeed,

		authService:        authService,
		sessionRepo:        &sessionRepo,
		carHandler:         &handlers.CarHandler{Service: carService, Storage: storage},
		propertyHandler:    &handlers.PropertyHandler{Service: propertyService, Storage: storage},
		requestHandler:     &handlers.PurchaseRequestHandler{Service: requestService},
		settingsHandler:    &handlers.SettingsHandler{Service: settingsService},
		authHandler:        &handlers.AuthHandler{Service: authService},
		dashboardHandler:   &handlers.DashboardHandler{Service: dashboardService},
		installmentHandler: &handlers.InstallmentHandler{},
		deviceHandler:      &handlers.DeviceHandler{Repo: &deviceRepo},
		healthHandler:      &handlers.HealthHandler{DB: db},
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

// openRedis returns nil when no address is configured; the services treat a
// nil client as "cache disabled".
func openRedis(cfg config.Config, infoLog, errorLog *log.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		errorLog.Printf("redis unavailable, running without cache: %v", err)
		return nil
	}
	infoLog.Printf("Connected to redis at %s", cfg.Redis.Addr)
	return client
}

// openFCM returns nil when firebase credentials are not configured.
func openFCM(ctx context.Context, cfg config.Config, infoLog, errorLog *log.Logger) *messaging.Client {
	if cfg.Firebase.CredentialsFile == "" {
		return nil
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		errorLog.Printf("firebase init failed, push disabled: %v", err)
		return nil
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		errorLog.Printf("firebase messaging init failed, push disabled: %v", err)
		return nil
	}
	infoLog.Println("Firebase messaging ready")
	return client
}

func openStorage(cfg config.Config, errorLog *log.Logger) *utils.ImageStorage {
	if cfg.Storage.AccessKey == "" {
		return nil
	}
	storage, err := utils.NewImageStorage(utils.ImageStorageConfig{
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		errorLog.Printf("object storage init failed, uploads disabled: %v", err)
		return nil
	}
	return storage
}

func isBcryptHash(s string) bool {
	return len(s) > 4 && s[0] == '$' && (s[1] == '2')
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
