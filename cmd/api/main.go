package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/qualink/page-audit/internal/audit"
	"github.com/qualink/page-audit/internal/linkaudit"
	"github.com/qualink/page-audit/internal/pagedoc"
	"github.com/qualink/page-audit/internal/platform/config"
	"github.com/qualink/page-audit/internal/platform/logger"
	"github.com/qualink/page-audit/internal/platform/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	documents := pagedoc.NewProvider(pagedoc.NewHTTPClient())
	prober := linkaudit.NewHTTPProber(cfg.ProbeTimeout, cfg.LinkCheckConcurrency)
	collector := linkaudit.NewCollector(prober, cfg.LinkCheckConcurrency)

	engine := audit.NewEngine(documents, collector)
	service := audit.NewService(engine, log)
	transport := audit.NewTransport(service, log)

	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)

	handler := middleware.RequestID(middleware.Logging(log)(mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("page audit service listening", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
