package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"readmaster-go/internal/app"
	"readmaster-go/internal/config"
	"readmaster-go/internal/logs"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	configFile string
	dataDir    string
	logLevel   string
	logDir     string
	logToFile  bool
	enableTray bool

	version = "v0.1.0" // This will be injected by -ldflags during build
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "readmaster",
		Short:   "Read Master - desktop reading application",
		Version: version,
		RunE:    runApp,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory path (default: ~/.readmaster)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", true, "Enable logging to file in standard OS location")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Custom log directory path (overrides standard OS location)")
	rootCmd.PersistentFlags().BoolVar(&enableTray, "tray", true, "Enable system tray (use --tray=false to disable)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runApp(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override logging settings from command line
	if cfg.Logging == nil {
		cfg.Logging = logs.DefaultLogConfig()
	}
	cfg.Logging.Level = logLevel
	cfg.Logging.EnableFile = logToFile
	if logDir != "" {
		cfg.Logging.LogDir = logDir
	}
	cfg.EnableTray = enableTray

	logger, err := logs.SetupLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting Read Master Desktop",
		zap.String("version", version),
		zap.String("data_dir", cfg.DataDir))

	shell := app.New(cfg, logger, version, assets)
	if err := shell.Run(); err != nil {
		logger.Error("Application failed", zap.Error(err))
		return err
	}

	logger.Info("Read Master Desktop exited")
	return nil
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	return cfg, nil
}
