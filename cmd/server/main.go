// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ics-oracle/internal/config"
	"github.com/MKhiriev/go-ics-oracle/internal/handler"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/server"
	"github.com/MKhiriev/go-ics-oracle/internal/service"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/internal/workers"
	"github.com/MKhiriev/go-ics-oracle/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info.Banner())

	log := logger.NewLogger("ics-oracle")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.ParseLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.Version
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	bg := workers.NewWorkers(cfg.Workers, services.Flusher, log)
	bg.Run(ctx)
	defer bg.Stop()

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
