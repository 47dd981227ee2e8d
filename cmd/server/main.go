package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/colabdraw/go-whiteboard/internal/api"
	"github.com/colabdraw/go-whiteboard/internal/config"
	"github.com/colabdraw/go-whiteboard/internal/database"
	"github.com/colabdraw/go-whiteboard/internal/stats"
	"github.com/colabdraw/go-whiteboard/internal/storage"
)

type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, strings.Split(value, ",")...)
	return nil
}

var (
	addr           string
	mongoURI       string
	mongoDatabase  string
	cloudinaryURL  string
	uploadDir      string
	allowedOrigins stringSliceFlag
)

func main() {
	flag.StringVar(&addr, "addr", "", "server address")
	flag.StringVar(&mongoURI, "mongo-uri", "", "mongo connection URI")
	flag.StringVar(&mongoDatabase, "mongo-database", "", "mongo database name")
	flag.StringVar(&cloudinaryURL, "cloudinary-url", "", "cloudinary:// credentials URL")
	flag.StringVar(&uploadDir, "upload-dir", "", "directory for temporary uploads")
	flag.Var(&allowedOrigins, "allowed-origins", "comma-separated list of allowed origins for CORS")
	flag.Parse()

	logger := log.New(os.Stderr, "[whiteboard] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config:", err)
	}

	// Flags override the environment when set.
	if addr != "" {
		cfg.ServerAddr = addr
	}
	if mongoURI != "" {
		cfg.MongoURI = mongoURI
	}
	if mongoDatabase != "" {
		cfg.MongoDatabase = mongoDatabase
	}
	if cloudinaryURL != "" {
		cfg.CloudinaryURL = cloudinaryURL
	}
	if uploadDir != "" {
		cfg.UploadDir = uploadDir
	}
	if len(allowedOrigins) > 0 {
		cfg.AllowedOrigins = allowedOrigins
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("config:", err)
	}

	repo, err := database.NewMongoWhiteboardRepository(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			logger.Println("db close:", err)
		}
	}()

	uploads, err := storage.NewCloudinaryGateway(cfg.CloudinaryURL)
	if err != nil {
		logger.Fatal("storage gateway:", err)
	}

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	srv := api.NewWhiteboardApp(mux, logger, repo, uploads, statsUpdater, cfg)

	statsUpdater.Run()
	defer statsUpdater.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Printf("received signal: %s\n", sig)
	case err := <-errCh:
		logger.Println("server:", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("HTTP server shutdown:", err)
	}

	logger.Println("shutdown complete")
}
