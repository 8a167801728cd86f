package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/speakwell/speakwell-api/internal/api"
	"github.com/speakwell/speakwell-api/internal/config"
	"github.com/speakwell/speakwell-api/internal/phrases"
	"github.com/speakwell/speakwell-api/internal/transcribe"
)

var version = "dev"

func main() {
	startTime := time.Now()

	// CLI overrides
	envFile := flag.String("env", "", "path to .env file")
	httpAddr := flag.String("addr", "", "http listen address (overrides HTTP_ADDR)")
	logLevel := flag.String("log-level", "", "log level (overrides LOG_LEVEL)")
	sttProvider := flag.String("stt-provider", "", "stt provider (overrides STT_PROVIDER)")
	flag.Parse()

	// Config
	cfg, err := config.Load(config.Overrides{
		EnvFile:     *envFile,
		HTTPAddr:    *httpAddr,
		LogLevel:    *logLevel,
		STTProvider: *sttProvider,
	})
	if err != nil {
		early := zerolog.New(os.Stderr).With().Timestamp().Logger()
		early.Fatal().Err(err).Msg("failed to load config")
	}

	// Logger
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	log.Info().Str("version", version).Msg("speakwell-api starting")

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// STT provider
	var stt transcribe.Provider
	switch cfg.STTProvider {
	case "whisper":
		stt = transcribe.NewWhisperClient(cfg.WhisperURL, cfg.WhisperModel, cfg.STTTimeout)
	default:
		stt = transcribe.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.STTModel, cfg.STTTimeout)
	}
	log.Info().
		Str("provider", stt.Name()).
		Str("model", stt.Model()).
		Str("language", cfg.STTLanguage).
		Msg("stt provider configured")

	// Phrase catalog
	catalog := phrases.NewCatalog()

	// HTTP Server
	httpLog := log.With().Str("component", "http").Logger()
	srv := api.NewServer(cfg, catalog, stt, version, startTime, httpLog)

	// Start HTTP server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("http server error")
		}
	}

	// Graceful shutdown with 10s timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	log.Info().Msg("speakwell-api stopped")
}
