package main

import (
	"net/http"

	"locodhaasu-be/internal/config"
	"locodhaasu-be/internal/db"
	"locodhaasu-be/internal/logger"
	"locodhaasu-be/internal/notification"
	"locodhaasu-be/internal/order"
	"locodhaasu-be/internal/router"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database, err := db.New(cfg)
	if err != nil {
		log.Fatal("failed to connect to order store", zap.Error(err))
	}

	var repo order.Repository
	if database != nil {
		defer database.Close()
		repo = order.NewRepository(database)
	}

	var smsGateway notification.SMSGateway
	if cfg.TwilioConfigured() {
		smsGateway = notification.NewTwilioGateway(
			cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber,
		)
	}

	var emailGateway notification.EmailGateway
	if cfg.SendGridConfigured() {
		emailGateway = notification.NewSendGridGateway(cfg.SendGridAPIKey, cfg.EmailFrom)
	}

	notifier := notification.NewService(smsGateway, emailGateway, cfg.FCMServerKey, cfg.DefaultCountryCode)

	orderService := order.NewService(repo, notifier, order.AdminContacts{
		Phone: cfg.AdminPhone,
		Email: cfg.AdminEmail,
	})

	r := router.New(cfg, order.NewHandler(orderService))

	log.Info("🌯 LOCO DHAASU backend starting",
		zap.String("port", cfg.AppPort),
		zap.Bool("store", cfg.StoreConfigured()),
		zap.Bool("twilio", cfg.TwilioConfigured()),
		zap.Bool("sendgrid", cfg.SendGridConfigured()),
	)

	if err := http.ListenAndServe(":"+cfg.AppPort, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
