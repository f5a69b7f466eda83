package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/xolan/hours/internal/config"
	"github.com/xolan/hours/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Session *Session
	Config  *ConfigService
}

// NewServices creates a new Services instance from the user's config file.
// A non-empty dataFile overrides the configured data_file.
func NewServices(dataFile string, logger *zap.Logger) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(dataFile) == "" {
		dataFile = cfg.DataFile
	}
	dataPath, err := storage.ResolvePath(dataFile)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(dataPath, configPath, cfg, logger), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(dataPath, configPath string, cfg config.Config, logger *zap.Logger) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	codec := storage.NewCodec(cfg.Backups, logger.Named("storage"))

	return &Services{
		Session: NewSession(dataPath, codec, logger.Named("session")),
		Config:  NewConfigService(configPath, cfg),
	}
}
