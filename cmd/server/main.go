package main

import (
	"context"
	"time"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/api"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/config"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/directory"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/eta"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/logger"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/sender"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/whatsapp"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	var areas directory.AreaStore = directory.NewAreaRepository(db)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("Redis unreachable, area cache will fall through to the database")
		}
		cancel()
		areas = directory.NewCachedAreas(directory.NewAreaRepository(db), rdb, cfg.AreaCacheTTL)
		log.WithField("addr", cfg.RedisAddr).Info("Area cache enabled")
	}

	templates := directory.NewTemplateRepository(db)
	customers := directory.NewCustomerRepository(db)
	registry := eta.NewRegistry(db)

	hub := ws.NewHub(cfg.WSAllowedOrigins...)
	go hub.Run()

	orch := &sender.Orchestrator{
		Customers:    customers,
		Templates:    templates,
		Areas:        areas,
		ETAs:         registry,
		Submitter:    sender.NewBackgroundClient(cfg),
		Processes:    sender.NewProcessStore(db),
		Notifier:     hub,
		DefaultDelay: time.Duration(cfg.DefaultDelaySeconds) * time.Second,
	}
	if cfg.WhatsAppToken != "" && cfg.PhoneNumberID != "" {
		orch.WhatsApp = whatsapp.NewClient(cfg)
	} else {
		log.Warn("WHATSAPP_TOKEN or PHONE_NUMBER_ID not set, direct sending disabled")
	}

	r := gin.Default()
	r.Use(api.CORS())
	api.RegisterRoutes(r, api.Handlers{
		Areas:     api.NewAreaHandler(areas),
		Templates: api.NewTemplateHandler(templates),
		Customers: api.NewCustomerHandler(customers),
		ETAs:      api.NewETAHandler(registry),
		Send:      api.NewSendHandler(orch),
		Hub:       hub,
	})

	log.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
