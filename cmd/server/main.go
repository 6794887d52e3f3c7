package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"javaconnect/internal/config"
	"javaconnect/internal/observability"
	"javaconnect/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "javaconnect-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExport,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSample,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Printf("Tracing shutdown error: %v", err)
	}
}
