package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"meenakshitravels/config"
	"meenakshitravels/db"
	"meenakshitravels/db/mongo"
	"meenakshitravels/db/postgres"
	"meenakshitravels/handlers"
	"meenakshitravels/repository"
	"meenakshitravels/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	var (
		testimonialRepo repository.TestimonialRepository
		serviceRepo     repository.ServiceRepository
		tariffRepo      repository.TariffRepository
		leadRepo        repository.LeadRepository
		pageRepo        repository.PageRepository
		settingsRepo    repository.SettingsRepository
		userRepo        repository.UserRepository
	)

	switch db.Type(cfg.DBType) {
	case db.Postgres:
		// Run migrations before opening the pool
		if err := db.RunMigrations(cfg.PostgresURL); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			log.Fatal().Err(err).Msg("postgres connect failed")
		}
		defer pg.Disconnect()

		testimonialRepo = repository.NewPostgresTestimonialRepo(pg.Conn)
		serviceRepo = repository.NewPostgresServiceRepo(pg.Conn)
		tariffRepo = repository.NewPostgresTariffRepo(pg.Conn)
		leadRepo = repository.NewPostgresLeadRepo(pg.Conn)
		pageRepo = repository.NewPostgresPageRepo(pg.Conn)
		settingsRepo = repository.NewPostgresSettingsRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer mg.Disconnect()

		testimonialRepo = repository.NewMongoTestimonialRepo(mg.Client)
		serviceRepo = repository.NewMongoServiceRepo(mg.Client)
		tariffRepo = repository.NewMongoTariffRepo(mg.Client)
		leadRepo = repository.NewMongoLeadRepo(mg.Client)
		pageRepo = repository.NewMongoPageRepo(mg.Client)
		settingsRepo = repository.NewMongoSettingsRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		log.Fatal().Str("db_type", cfg.DBType).Msg("DB_TYPE not supported")
	}

	h := &routes.Handlers{
		User:        &handlers.UserHandler{Repo: userRepo, JWTSecret: cfg.JWTSecret},
		Testimonial: &handlers.TestimonialHandler{Repo: testimonialRepo},
		Service:     &handlers.ServiceHandler{Repo: serviceRepo},
		Tariff:      &handlers.TariffHandler{Repo: tariffRepo},
		Lead:        &handlers.LeadHandler{Repo: leadRepo, Settings: settingsRepo},
		Page:        &handlers.PageHandler{Repo: pageRepo},
		Contact:     &handlers.ContactHandler{Repo: settingsRepo},
		Theme:       &handlers.ThemeHandler{Repo: settingsRepo},
		SMTP:        &handlers.SMTPHandler{Repo: settingsRepo},
		Dashboard: &handlers.DashboardHandler{
			Leads:        leadRepo,
			Testimonials: testimonialRepo,
			Services:     serviceRepo,
			Tariffs:      tariffRepo,
		},
		Upload: &handlers.UploadHandler{},
		PDF: &handlers.PDFHandler{
			Leads:    leadRepo,
			Tariffs:  tariffRepo,
			Settings: settingsRepo,
			SavePath: cfg.PDFSavePath,
		},
		JWTSecret: cfg.JWTSecret,
	}

	routes.SetupRoutes(h)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Info().Str("port", cfg.Port).Str("db", cfg.DBType).Msg("server running")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
