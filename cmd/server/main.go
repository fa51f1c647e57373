package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"

	httpadapter "readiness/internal/adapters/http"
	"readiness/internal/adapters/memory"
	"readiness/internal/adapters/objectstore"
	pg "readiness/internal/adapters/postgres"
	sendgridadapter "readiness/internal/adapters/sendgrid"
	stripeadapter "readiness/internal/adapters/stripe"
	"readiness/internal/config"
	"readiness/internal/metrics"
	"readiness/internal/ports"
	"readiness/internal/render"
	"readiness/internal/services/analyses"
	"readiness/internal/services/delivery"
	"readiness/internal/services/fulfillment"
	"readiness/internal/services/leads"
	"readiness/internal/workers/reportrunner"
)

const brand = "AI Readiness Check"

type recordStore interface {
	ports.RecordStore
	ports.JobRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("incomplete configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store recordStore
	switch {
	case cfg.DatabaseURL != "":
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("db connect")
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			log.WithError(err).Fatal("db migrate")
		}
		store = db
	case cfg.Development():
		log.Warn("DATABASE_URL not set, using in-memory record store")
		store = memory.New()
	default:
		log.Fatal("DATABASE_URL is required outside development")
	}

	var objects ports.ObjectStore = objectstore.Disabled{}
	if cfg.Storage.Enabled() {
		s, err := objectstore.New(cfg.Storage)
		if err != nil {
			log.WithError(err).Fatal("object store")
		}
		if err := s.EnsureBucket(ctx); err != nil {
			log.WithError(err).Warn("object store bucket unavailable, uploads will fail")
		}
		objects = s
	} else {
		log.Warn("object storage not configured, reports are delivered by email only")
	}

	payments := stripeadapter.New(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	mailer := sendgridadapter.New(cfg.SendGridAPIKey, cfg.EmailFromName, cfg.EmailFromAddr)
	renderer := render.New(brand, cfg.SupportEmail)
	dispatcher := delivery.NewDispatcher(objects, mailer, brand, cfg.SupportEmail)

	orchestrator := fulfillment.New(store, payments, renderer, dispatcher, fulfillment.Config{
		PublicBaseURL: cfg.PublicBaseURL,
	})
	leadSvc := leads.New(store, store)
	analysisSvc := analyses.New(store)

	metrics.Register()

	admin := httpadapter.AdminAuth{
		Secret:               []byte(cfg.AdminJWTSecret),
		AllowUnauthenticated: cfg.Development(),
	}
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpadapter.New(orchestrator, leadSvc, analysisSvc, admin).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	workersDone := reportrunner.Run(ctx, store, orchestrator, reportrunner.Options{
		Concurrency:  cfg.ReportWorkers,
		PollInterval: cfg.SweepInterval,
		Policy:       cfg.Sweep,
	})
	if cfg.ReportWorkers > 0 {
		log.WithField("workers", cfg.ReportWorkers).Info("report sweep started")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.WithField("addr", cfg.ListenAddr).Info("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
	case err := <-errCh:
		log.WithError(err).Error("server error")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	cancel()
	select {
	case <-workersDone:
	case <-shutdownCtx.Done():
		log.Warn("report workers did not stop in time")
	}
	log.Info("server exited")
}
