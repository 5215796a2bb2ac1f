package main

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ShubhanginiSharma627/e-sign-app/adapters/events"
	"github.com/ShubhanginiSharma627/e-sign-app/adapters/pdf"
	"github.com/ShubhanginiSharma627/e-sign-app/adapters/store"
	"github.com/ShubhanginiSharma627/e-sign-app/adapters/zoho"
	"github.com/ShubhanginiSharma627/e-sign-app/config"
	"github.com/ShubhanginiSharma627/e-sign-app/ports"
	"github.com/ShubhanginiSharma627/e-sign-app/service"
	"github.com/ShubhanginiSharma627/e-sign-app/transport/http"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Secrets come from the environment; .env is a development convenience
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fs := afero.NewOsFs()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	var tokenStore ports.TokenStore
	switch cfg.TokenStore {
	case "redis":
		tokenStore = store.NewRedisStore(redisClient)
	case "memory":
		tokenStore = store.NewMemoryStore()
	default:
		tokenStore = store.NewFileStore(fs, cfg.TokenFile)
	}

	eventPub := ports.EventPublisher(events.NewNoopPublisher())
	if redisClient != nil {
		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: redisClient,
			},
			watermill.NewStdLogger(false, false),
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}
		eventPub = events.NewWatermillPublisher(publisher)
	}

	tokens := zoho.NewAuthClient(cfg.Zoho, tokenStore, log)
	signClient := zoho.NewSignClient(cfg.Zoho, log)
	renderer := pdf.NewRenderer()

	esignService := service.NewEsignService(renderer, tokens, signClient, eventPub, fs, cfg.OutputDir, log)

	// Setup Gin router
	router := http.SetupRouter(esignService, log, "web/public")

	// Start server
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
