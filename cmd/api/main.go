package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dev-rajankit/recozadmin/docs"
	"github.com/dev-rajankit/recozadmin/internal/auth"
	"github.com/dev-rajankit/recozadmin/internal/config"
	"github.com/dev-rajankit/recozadmin/internal/database"
	"github.com/dev-rajankit/recozadmin/internal/expense"
	"github.com/dev-rajankit/recozadmin/internal/mail"
	"github.com/dev-rajankit/recozadmin/internal/member"
	"github.com/dev-rajankit/recozadmin/internal/report"
)

// @title           Recoz Admin API
// @version         1.0
// @description     Co-working space administration API: members, expenses and financial reports
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Connected to database successfully")

	// Mail driver
	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.MailDriver == "smtp" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	}

	// Member feature
	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo)
	memberHandler := member.NewHandler(memberService)

	// Expense feature
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo)
	expenseHandler := expense.NewHandler(expenseService)

	// Auth feature (with mailer injected)
	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, mailer, cfg.AppURL, cfg.ResetTokenTTL)
	authHandler := auth.NewHandler(authService)

	// Report feature
	reportRepo := report.NewRepository(db)
	reportService := report.NewService(reportRepo)
	reportHandler := report.NewHandler(reportService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/members", memberHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
