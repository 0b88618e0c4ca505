// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-ics-oracle/internal/adapter"
	"github.com/MKhiriev/go-ics-oracle/internal/client"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
)

type replayConfig struct {
	Address string        `env:"ORACLE_ADDRESS" envDefault:"localhost:8080"`
	Script  string        `env:"REPLAY_SCRIPT"`
	Timeout time.Duration `env:"ORACLE_TIMEOUT" envDefault:"30s"`
}

func main() {
	log := logger.NewLogger("ics-replay")

	var cfg replayConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing environment")
	}

	fs := flag.NewFlagSet("ics-replay", flag.ExitOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "oracle address host:port or URL")
	fs.StringVar(&cfg.Script, "s", cfg.Script, "path to the replay script")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "per-request timeout")
	_ = fs.Parse(os.Args[1:])

	if cfg.Script == "" {
		log.Fatal().Msg("no script given, use -s or REPLAY_SCRIPT")
	}

	f, err := os.Open(cfg.Script)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening script")
	}
	script, err := client.LoadScript(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading script")
	}

	oracle, err := adapter.NewHTTPOracleClient(cfg.Address, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating oracle client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if v, err := oracle.Version(ctx); err == nil {
		fmt.Printf("oracle version %s\n", v)
	}

	app, err := client.NewApp(oracle, script, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating replay")
	}

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, client.ErrExpectationsFailed) {
			fmt.Fprintln(os.Stderr, err)
			stop()
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("replay aborted")
	}
}
