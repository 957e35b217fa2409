package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/Shopmart/internal"
)

func main() {
	//decimals at json as numbers
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer z.Sync()
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	var publisher IPublisher = NopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := NewAMQPPublisher(cfg.AMQPURL, sugaredLogger)
		if err != nil {
			sugaredLogger.Fatal(err)
		}
		publisher = p
	}
	defer publisher.Close()

	caps, err := NewCapabilities()
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	hub := NewHub(0, sugaredLogger)
	carrier := NewCarrierService(cfg.CarrierSystemAddress, cfg.CarrierPollInterval, sugaredLogger)
	service := NewService(repository, carrier, publisher, hub, cfg.JWTSecret, sugaredLogger)
	handlers := NewHandlers(service, caps, cfg.EventsKeepAlive, sugaredLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go carrier.Run(ctx, cfg.CarrierWorkers, service.ApplyShipment)
	go func() {
		n, err := service.ResumeShipments(ctx)
		if err != nil {
			sugaredLogger.Errorf("ResumeShipments error: %s", err.Error())
			return
		}
		sugaredLogger.Infof("Resumed polling for %d shipments", n)
	}()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	SetupRoutes(app, handlers)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	cancel()
	if err = app.Shutdown(); err != nil {
		sugaredLogger.Errorf("Shutdown error: %s", err.Error())
	}
}
