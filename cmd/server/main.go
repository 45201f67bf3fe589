// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

// Command server runs the CropAdvisor HTTP API. Startup loads the
// configuration, the regional reference table and the classifier artifact,
// wires the recommendation engine and serves it under a supervisor tree
// until SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/agrovista/cropadvisor/internal/api"
	"github.com/agrovista/cropadvisor/internal/classifier"
	"github.com/agrovista/cropadvisor/internal/config"
	"github.com/agrovista/cropadvisor/internal/logging"
	"github.com/agrovista/cropadvisor/internal/metrics"
	"github.com/agrovista/cropadvisor/internal/recommend"
	"github.com/agrovista/cropadvisor/internal/reference"
	"github.com/agrovista/cropadvisor/internal/supervisor"
	"github.com/agrovista/cropadvisor/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("reference_path", cfg.Data.ReferencePath).
		Str("model_path", cfg.Data.ModelPath).
		Msg("starting cropadvisor")

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	handler := api.NewHandler(engine, logging.Logger())
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("http server listening")

	err = tree.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("supervisor: %w", err)
	}

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("services did not stop cleanly")
	}

	logging.Info().Msg("shutdown complete")
	return nil
}

// buildEngine loads the data artifacts and assembles the recommendation
// engine. Any failure here is startup-fatal: the service refuses to run
// with a missing or corrupt table, model or rule file.
func buildEngine(cfg *config.Config) (*recommend.Engine, error) {
	table, err := reference.LoadCSV(cfg.Data.ReferencePath)
	if err != nil {
		return nil, fmt.Errorf("load reference table: %w", err)
	}
	metrics.ReferenceRowsLoaded.Set(float64(table.Len()))
	logging.Info().Int("rows", table.Len()).Msg("reference table loaded")

	clf, err := classifier.Load(cfg.Data.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	metrics.ModelClassesLoaded.Set(float64(len(clf.Classes())))
	logging.Info().
		Int("classes", len(clf.Classes())).
		Strs("features", clf.Features()).
		Msg("classifier loaded")

	rules := recommend.DefaultRuleSet()
	if cfg.Data.RulesPath != "" {
		rules, err = recommend.LoadRuleSet(cfg.Data.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rule table: %w", err)
		}
		logging.Info().Str("path", cfg.Data.RulesPath).Msg("rule table override loaded")
	}

	engineCfg := &recommend.Config{
		DefaultTopK: cfg.Engine.DefaultTopK,
		MaxTopK:     cfg.Engine.MaxTopK,
	}
	engine, err := recommend.NewEngine(engineCfg, table, clf, rules, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}
