package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/azmirfakkri/jomsplit/docs"
	"github.com/azmirfakkri/jomsplit/internal/bill"
	"github.com/azmirfakkri/jomsplit/internal/bill/split"
	"github.com/azmirfakkri/jomsplit/internal/config"
	"github.com/azmirfakkri/jomsplit/internal/database"
	"github.com/azmirfakkri/jomsplit/internal/payment"
	"github.com/azmirfakkri/jomsplit/internal/receipt"
	"github.com/azmirfakkri/jomsplit/internal/session"
	"github.com/azmirfakkri/jomsplit/internal/settlement"
	"github.com/azmirfakkri/jomsplit/pkg/logging"
	mw "github.com/azmirfakkri/jomsplit/pkg/middleware"
)

// @title           JomSplit API
// @version         1.0
// @description     Malaysian bill-splitting API with SST, service charge and 5 sen rounding support.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var (
		sessionRepo    session.Repository
		billRepo       bill.Repository
		settlementRepo settlement.Repository
		paymentRepo    payment.Repository
	)

	// Fall back to in-memory storage when no database is configured,
	// matching the product's behaviour on a fresh deployment.
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, using in-memory storage; data is lost on restart")
		sessionRepo = session.NewMemoryRepository()
		billRepo = bill.NewMemoryRepository()
		settlementRepo = settlement.NewMemoryRepository()
		paymentRepo = payment.NewMemoryRepository()
	} else {
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("connected to database")

		sessionRepo = session.NewPostgresRepository(db)
		billRepo = bill.NewPostgresRepository(db)
		settlementRepo = settlement.NewPostgresRepository(db)
		paymentRepo = payment.NewPostgresRepository(db)
	}

	engine := split.New(cfg.SplitConfig())
	slog.Info("split engine configured",
		"sst_rate", cfg.SSTRate,
		"service_charge_rate", cfg.ServiceChargeRate,
		"service_charge_scope", cfg.ServiceChargeScope)

	// Session feature
	sessionService := session.NewService(sessionRepo)
	sessionHandler := session.NewHandler(sessionService)

	// Bill items feature (with split engine injected)
	billService := bill.NewService(billRepo, sessionRepo, engine)
	billHandler := bill.NewHandler(billService)

	// Settlement feature
	settlementService := settlement.NewService(settlementRepo, sessionRepo, billService)
	settlementHandler := settlement.NewHandler(settlementService)

	// Payment feature
	paymentService := payment.NewService(paymentRepo, sessionRepo, billService)
	paymentHandler := payment.NewHandler(paymentService)

	// Receipt parsing feature
	receiptHandler := receipt.NewHandler()

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.DeviceID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/sessions", sessionHandler.Routes())
		r.Mount("/items", billHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/payments", paymentHandler.Routes())
		r.Mount("/receipts", receiptHandler.Routes())
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
