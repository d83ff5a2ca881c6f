package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Data        DataConfig        `mapstructure:"data"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds the balance knobs of a fresh game
type GameConfig struct {
	Hand     HandConfig     `mapstructure:"hand"`
	Invasion InvasionConfig `mapstructure:"invasion"`
	// StartingCards lists card template ids dealt into the deck at setup
	StartingCards []string `mapstructure:"starting_cards"`
}

// HandConfig holds hand and deck sizing
type HandConfig struct {
	Limit     int `mapstructure:"limit"`
	DeckLimit int `mapstructure:"deck_limit"`
}

// InvasionConfig holds invasion clock settings
type InvasionConfig struct {
	Distance     int `mapstructure:"distance"`
	SpeedPerTurn int `mapstructure:"speed_per_turn"`
}

// DataConfig holds paths to the JSON content files
type DataConfig struct {
	Buildings     string `mapstructure:"buildings"`
	Slots         string `mapstructure:"slots"`
	SlotLocations string `mapstructure:"slot_locations"`
	Stickers      string `mapstructure:"stickers"`
	Cards         string `mapstructure:"cards"`
	Adventures    string `mapstructure:"adventures"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PersistenceConfig holds snapshot storage settings
type PersistenceConfig struct {
	SaveDir     string `mapstructure:"save_dir"`
	AutosaveKey string `mapstructure:"autosave_key"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	TrackTelemetry bool `mapstructure:"track_telemetry"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.hand.limit", 5)
	v.SetDefault("game.hand.deck_limit", 20)
	v.SetDefault("game.invasion.distance", 30)
	v.SetDefault("game.invasion.speed_per_turn", 3)
	v.SetDefault("game.starting_cards", []string{
		"villager", "villager", "villager", "villager", "villager",
		"villager", "villager", "villager", "scout", "scout",
	})

	// Data defaults
	v.SetDefault("data.buildings", "data/buildings.json")
	v.SetDefault("data.slots", "data/slots.json")
	v.SetDefault("data.slot_locations", "data/slot_locations.json")
	v.SetDefault("data.stickers", "data/stickers.json")
	v.SetDefault("data.cards", "data/cards.json")
	v.SetDefault("data.adventures", "data/adventures.json")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Persistence defaults
	v.SetDefault("persistence.save_dir", "saves")
	v.SetDefault("persistence.autosave_key", "autosave")

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.track_telemetry", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/palisade")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("PALISADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If we have a specific config path and it doesn't exist, that's ok - use defaults
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Hand.Limit <= 0 {
		return fmt.Errorf("game.hand.limit must be positive")
	}
	if c.Game.Hand.DeckLimit <= 0 {
		return fmt.Errorf("game.hand.deck_limit must be positive")
	}
	if c.Game.Hand.DeckLimit < c.Game.Hand.Limit {
		return fmt.Errorf("game.hand.deck_limit must be at least game.hand.limit")
	}
	if c.Game.Invasion.Distance <= 0 {
		return fmt.Errorf("game.invasion.distance must be positive")
	}
	if c.Game.Invasion.SpeedPerTurn < 0 {
		return fmt.Errorf("game.invasion.speed_per_turn must be non-negative")
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Data.Buildings == "" || c.Data.Slots == "" || c.Data.Cards == "" {
		return fmt.Errorf("data paths for buildings, slots and cards must be set")
	}
	if c.Persistence.SaveDir == "" {
		return fmt.Errorf("persistence.save_dir must be set")
	}
	if c.Persistence.AutosaveKey == "" {
		return fmt.Errorf("persistence.autosave_key must be set")
	}

	return nil
}
