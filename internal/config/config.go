package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"lotto/internal/models"
)

const envPrefix = "LOTTERY"

// Random source names accepted by game.random_source.
const (
	RandomMath   = "math"
	RandomCrypto = "crypto"
)

// Config is the full process configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Game   GameConfig   `mapstructure:"game"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin_mode"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// GameConfig embeds the rule set plus the choice of random source.
type GameConfig struct {
	models.GameConfig `mapstructure:",squash"`
	RandomSource      string `mapstructure:"random_source"`
}

type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from the optional YAML file at path and from
// LOTTERY_* environment variables, e.g. LOTTERY_GAME_SELECT_COUNT.
// A missing file is not an error; defaults fill every unset key.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s -> %w", path, err)
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("failed to decode config -> %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks the values Load cannot check by type alone.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	switch c.Game.RandomSource {
	case RandomMath, RandomCrypto:
	default:
		return fmt.Errorf("unknown random source %q", c.Game.RandomSource)
	}
	if c.Server.Port == "" {
		return errors.New("server port must be set")
	}
	if c.Server.SessionTTL <= 0 || c.Server.CleanupInterval <= 0 {
		return errors.New("session ttl and cleanup interval must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	game := models.DefaultGameConfig()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.session_ttl", time.Hour)
	v.SetDefault("server.cleanup_interval", 10*time.Minute)

	v.SetDefault("game.total_numbers", game.TotalNumbers)
	v.SetDefault("game.select_count", game.SelectCount)
	v.SetDefault("game.min_jackpot", game.MinJackpot)
	v.SetDefault("game.jackpot_increment", game.JackpotIncrement)
	v.SetDefault("game.history_size", game.HistorySize)
	v.SetDefault("game.ticket_price", game.TicketPrice)
	v.SetDefault("game.random_source", RandomMath)

	v.SetDefault("log.verbose", false)
}
