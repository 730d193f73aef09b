package main

import (
	"fmt"
	"log"

	"github.com/student-hub/booking-portal/internal/gateway"
	"github.com/student-hub/booking-portal/internal/handler"
	"github.com/student-hub/booking-portal/internal/service"
	"github.com/student-hub/booking-portal/internal/session"
	"github.com/student-hub/booking-portal/pkg/config"
	"github.com/student-hub/booking-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	sessions := session.New(cfg.Session.Secret, cfg.Session.TTL)
	gw := gateway.New(cfg.Backend.BaseURL, logr)
	metricsSvc := service.NewMetricsService()

	r := handler.NewRouter(cfg, logr, sessions, gw, metricsSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("portal starting", "addr", addr, "env", cfg.Env, "backend", cfg.Backend.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("portal failed", "error", err)
	}
}
