package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awspolly "github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/joho/godotenv"

	"github.com/ekisa-team/speakstore/internal/config"
	"github.com/ekisa-team/speakstore/internal/env"
	"github.com/ekisa-team/speakstore/internal/envvar"
	"github.com/ekisa-team/speakstore/internal/function"
	"github.com/ekisa-team/speakstore/internal/logger"
	"github.com/ekisa-team/speakstore/internal/objectkey"
	httpserver "github.com/ekisa-team/speakstore/internal/server/http"
	"github.com/ekisa-team/speakstore/internal/service"
	"github.com/ekisa-team/speakstore/internal/speech/polly"
	s3store "github.com/ekisa-team/speakstore/internal/storage/s3"
	"github.com/ekisa-team/speakstore/internal/xfs"
)

func main() {
	var (
		flagServe      = flag.Bool("serve", false, "Run a local HTTP server instead of the Lambda runtime")
		flagHTTPPort   = flag.Int("http-port", defaultHTTPPort(), "HTTP port to listen on with -serve")
		flagConfigPath = flag.String("config", "", "Path to an optional YAML config file (default $"+envvar.SpeakstoreConfig+")")
	)
	flag.Parse()

	if *flagServe {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to load .env file", "error", err)
		}
	}

	environment := env.FromEnv()
	logFile := os.Getenv(envvar.SpeakstoreLogFile)

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(logFile != ""),
			logger.WithLogFile(logFile),
		),
	)

	configPath, err := resolveConfigPath(*flagConfigPath)
	if err != nil {
		slog.Error("Config file not found", "path", configPath, "error", err)
	}

	if *flagServe {
		if err != nil {
			return
		}
		serve(environment, configPath, *flagHTTPPort)
		return
	}

	// A broken config must not crash the runtime: invocations then answer 500.
	var cfg *config.Config
	if err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			slog.Error("Failed to load config", "path", configPath, "error", err)
		}
	}

	handler := newHandler(cfg, config.NewStatic(cfg))

	slog.Info("Starting Lambda handler", "environment", environment)
	lambda.Start(handler.Handle)
}

// serve runs the HTTP server until SIGINT or SIGTERM.
func serve(environment env.Environment, configPath string, port int) {
	var (
		settings config.Provider
		cfg      *config.Config
	)

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, nil)
		if err != nil {
			slog.Error("Failed to create config watcher", "error", err)
			return
		}
		defer watcher.Close()

		settings = watcher
		cfg = watcher.Snapshot()
	} else {
		loaded, err := config.Load("")
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			return
		}

		settings = config.NewStatic(loaded)
		cfg = loaded
	}

	srv := httpserver.NewServer(port, newHandler(cfg, settings))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr, "environment", environment, "config", configPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down HTTP server", "error", err)
		return
	}

	slog.Info("HTTP server stopped")
}

// newHandler builds the AWS clients once per process and wires them into the handler.
// cfg may be nil; upload tuning then falls back to the SDK defaults.
func newHandler(cfg *config.Config, settings config.Provider) *function.Handler {
	var (
		awsConfig  aws.Config
		uploadOpts s3store.Options
	)
	if cfg != nil {
		if cfg.AWS.Region != "" {
			awsConfig.Region = aws.String(cfg.AWS.Region)
		}
		uploadOpts = s3store.Options{
			PartSizeMB:  cfg.Storage.PartSizeMB,
			Concurrency: cfg.Storage.Concurrency,
		}
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            awsConfig,
		SharedConfigState: session.SharedConfigEnable,
	}))

	svc := service.NewTTS(
		polly.New(awspolly.New(sess)),
		s3store.New(s3manager.NewUploader(sess), uploadOpts),
		objectkey.New(),
		settings,
	)

	return function.NewHandler(svc)
}

// resolveConfigPath picks the -config flag, then $SPEAKSTORE_CONFIG.
// An empty result means no config file; a named file must exist.
func resolveConfigPath(flagValue string) (string, error) {
	path := flagValue
	if path == "" {
		path = os.Getenv(envvar.SpeakstoreConfig)
	}
	if path == "" {
		return "", nil
	}

	path = xfs.ExpandTilde(path)
	if !xfs.Exists(path) {
		return path, fmt.Errorf("config file %s does not exist: %w", path, fs.ErrNotExist)
	}

	return path, nil
}

func defaultHTTPPort() int {
	if v := os.Getenv(envvar.SpeakstoreServerHTTPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}
	return config.DefaultHTTPPort
}
