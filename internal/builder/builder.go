package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/driveassist/backend/internal/api"
	chatapi "github.com/driveassist/backend/internal/api/chat"
	filesapi "github.com/driveassist/backend/internal/api/files"
	"github.com/driveassist/backend/internal/config"
	"github.com/driveassist/backend/internal/integration/drive"
	"github.com/driveassist/backend/internal/integration/llm"
	"github.com/driveassist/backend/internal/pkg/extract"
	"github.com/driveassist/backend/internal/pkg/validator"
	"github.com/driveassist/backend/internal/repository"
	"github.com/driveassist/backend/internal/usecase/chat"
	"github.com/driveassist/backend/internal/usecase/retrieval"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize external service connectors (with mock support)
	var storageClient retrieval.StorageClient
	var llmConnector chat.LLMConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		storageClient = drive.NewMockClient(logger)
		llmConnector = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		driveClient, err := drive.NewClient(ctx, cfg.DriveCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize drive client: %w", err)
		}
		storageClient = driveClient
		llmConnector = llm.NewConnector(cfg.LLMCfg, logger)
	}

	// Initialize repositories
	historyRepo := repository.NewSessionHistoryCache(cfg.SessionCfg)
	logger.Info("Repositories initialized")

	// Initialize use cases
	extractor := extract.NewExtractor(storageClient, logger)
	retrievalUC := retrieval.NewUsecase(storageClient, extractor, cfg.RetrievalCfg, logger)
	chatUC := chat.NewUsecase(llmConnector, retrievalUC, historyRepo, cfg.SessionCfg, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	reqValidator := validator.NewValidator()
	chatHandler := chatapi.NewHandler(chatUC, historyRepo, reqValidator)
	filesHandler := filesapi.NewHandler(retrievalUC, reqValidator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(chatHandler, filesHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

func setupLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
