package config

// Config represents the main configuration structure
type Config struct {
	DataDir    string `json:"data_dir" mapstructure:"data-dir"`
	EnableTray bool   `json:"enable_tray" mapstructure:"tray"`

	// Main window appearance
	WindowTitle  string `json:"window_title" mapstructure:"window-title"`
	WindowWidth  int    `json:"window_width" mapstructure:"window-width"`
	WindowHeight int    `json:"window_height" mapstructure:"window-height"`

	// Logging configuration
	Logging *LogConfig `json:"logging,omitempty" mapstructure:"logging"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level         string `json:"level" mapstructure:"level"`
	EnableFile    bool   `json:"enable_file" mapstructure:"enable-file"`
	EnableConsole bool   `json:"enable_console" mapstructure:"enable-console"`
	Filename      string `json:"filename" mapstructure:"filename"`
	LogDir        string `json:"log_dir,omitempty" mapstructure:"log-dir"` // Custom log directory
	MaxSize       int    `json:"max_size" mapstructure:"max-size"`         // MB
	MaxBackups    int    `json:"max_backups" mapstructure:"max-backups"`   // number of backup files
	MaxAge        int    `json:"max_age" mapstructure:"max-age"`           // days
	Compress      bool   `json:"compress" mapstructure:"compress"`
	JSONFormat    bool   `json:"json_format" mapstructure:"json-format"`
}

// DefaultConfig returns configuration defaults for the desktop shell.
func DefaultConfig() *Config {
	return &Config{
		EnableTray:   true,
		WindowTitle:  "Read Master",
		WindowWidth:  1200,
		WindowHeight: 800,
	}
}
