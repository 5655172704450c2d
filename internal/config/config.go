package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/GridRacingRL/internal/experience"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/mitchelldurbincs/GridRacingRL/internal/race"
	"github.com/mitchelldurbincs/GridRacingRL/internal/storage"
)

// Config holds all configuration for the application
type Config struct {
	Race     RaceConfig             `mapstructure:"race"`
	Learning LearningConfig         `mapstructure:"learning"`
	Rewards  experience.RewardTable `mapstructure:"rewards"`
	Storage  StorageConfig          `mapstructure:"storage"`
	Tracks   TracksConfig           `mapstructure:"tracks"`
	Server   ServerConfig           `mapstructure:"server"`
}

// RaceConfig holds simulation limits
type RaceConfig struct {
	MaxTicks       int `mapstructure:"max_ticks"`
	MinAgents      int `mapstructure:"min_agents"`
	MaxAgents      int `mapstructure:"max_agents"`
	RecentPerAgent int `mapstructure:"recent_per_agent"`
	RecentPerTrack int `mapstructure:"recent_per_track"`
}

// LearningConfig holds Q-learning and default policy settings
type LearningConfig struct {
	Alpha        float64               `mapstructure:"alpha"`
	Gamma        float64               `mapstructure:"gamma"`
	FinalEpsilon float64               `mapstructure:"final_epsilon"`
	Policy       learning.PolicyConfig `mapstructure:"policy"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// TracksConfig points at the YAML track definitions
type TracksConfig struct {
	Dir string `mapstructure:"dir"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	GRPCServer GRPCServerConfig `mapstructure:"grpc_server"`
}

// GRPCServerConfig holds gRPC server configuration
type GRPCServerConfig struct {
	Host                  string `mapstructure:"host"`
	Port                  int    `mapstructure:"port"`
	LogLevel              string `mapstructure:"log_level"`
	EnableReflection      bool   `mapstructure:"enable_reflection"`
	GracefulShutdownDelay int    `mapstructure:"graceful_shutdown_delay"`
	// MonitorInterval is in seconds; zero disables the goroutine monitor
	MonitorInterval  int `mapstructure:"monitor_interval"`
	MonitorThreshold int `mapstructure:"monitor_threshold"`
}

var (
	// Global config instance. mu guards the pointer; a loaded Config is never mutated.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("race.max_ticks", game.DefaultMaxTicks)
	v.SetDefault("race.min_agents", game.MinAgents)
	v.SetDefault("race.max_agents", game.MaxAgents)
	v.SetDefault("race.recent_per_agent", storage.DefaultRecentPerAgent)
	v.SetDefault("race.recent_per_track", storage.DefaultRecentPerTrack)

	policy := learning.DefaultPolicyConfig()
	v.SetDefault("learning.alpha", learning.DefaultAlpha)
	v.SetDefault("learning.gamma", learning.DefaultGamma)
	v.SetDefault("learning.final_epsilon", learning.DefaultFinalEpsilon)
	v.SetDefault("learning.policy.training", policy.Training)
	v.SetDefault("learning.policy.epsilon", policy.Epsilon)
	v.SetDefault("learning.policy.temperature", policy.Temperature)
	v.SetDefault("learning.policy.epsilon_decay", policy.EpsilonDecay)

	rewards := experience.DefaultRewardTable()
	v.SetDefault("rewards.distance", rewards.Distance)
	v.SetDefault("rewards.stuck", rewards.Stuck)
	v.SetDefault("rewards.wall", rewards.Wall)
	v.SetDefault("rewards.no_move", rewards.NoMove)
	v.SetDefault("rewards.explore", rewards.Explore)
	v.SetDefault("rewards.rank.first", rewards.Rank.First)
	v.SetDefault("rewards.rank.second", rewards.Rank.Second)
	v.SetDefault("rewards.rank.third", rewards.Rank.Third)
	v.SetDefault("rewards.rank.other", rewards.Rank.Other)

	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.sqlite_path", "gridracing.db")

	v.SetDefault("tracks.dir", "./tracks")

	// gRPC server defaults
	v.SetDefault("server.grpc_server.host", "0.0.0.0")
	v.SetDefault("server.grpc_server.port", 50051)
	v.SetDefault("server.grpc_server.log_level", "info")
	v.SetDefault("server.grpc_server.enable_reflection", true)
	v.SetDefault("server.grpc_server.graceful_shutdown_delay", 5)
	v.SetDefault("server.grpc_server.monitor_interval", 30)
	v.SetDefault("server.grpc_server.monitor_threshold", 1000)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/gridracing")
	}

	v.SetEnvPrefix("RACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case configPath != "" && errors.Is(err, fs.ErrNotExist):
			// A missing explicit file falls back to defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return reload()
}

// reload decodes viper into a fresh Config and swaps it in only if it is valid
func reload() error {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	cfg = next
	mu.Unlock()
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded configuration
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	return reload()
}

// Set allows runtime config updates. An update that leaves the config
// invalid is rejected and the previous config stays in place.
func Set(key string, value interface{}) error {
	v.Set(key, value)
	return reload()
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. Only the values read
// through Get after a change see the update; running services keep theirs.
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := reload(); err != nil {
			log.Error().Err(err).Str("config_file", e.Name).Msg("Ignoring config change")
			return
		}
		if onChange != nil {
			onChange()
		}
	})
}

// RaceSettings converts the race, learning and rewards sections for race.NewService
func (c *Config) RaceSettings() race.Settings {
	return race.Settings{
		MaxTicks:     c.Race.MaxTicks,
		FinalEpsilon: c.Learning.FinalEpsilon,
		MinAgents:    c.Race.MinAgents,
		MaxAgents:    c.Race.MaxAgents,
		Learning:     learning.Params{Alpha: c.Learning.Alpha, Gamma: c.Learning.Gamma},
		Policy:       c.Learning.Policy,
		Rewards:      c.Rewards,
	}
}

// StorageLimits returns the recent-race caps for storage.NewStore
func (c *Config) StorageLimits() storage.Limits {
	return storage.Limits{
		RecentPerAgent: c.Race.RecentPerAgent,
		RecentPerTrack: c.Race.RecentPerTrack,
	}
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Race.MaxTicks <= 0 {
		return fmt.Errorf("race.max_ticks must be positive")
	}
	if c.Race.MinAgents < game.MinAgents || c.Race.MaxAgents > game.MaxAgents || c.Race.MinAgents > c.Race.MaxAgents {
		return fmt.Errorf("race agent bounds must satisfy %d <= min_agents <= max_agents <= %d", game.MinAgents, game.MaxAgents)
	}
	if c.Race.RecentPerAgent <= 0 || c.Race.RecentPerTrack <= 0 {
		return fmt.Errorf("race recent-race caps must be positive")
	}

	if c.Learning.Alpha <= 0 || c.Learning.Alpha > 1 {
		return fmt.Errorf("learning.alpha must be in (0, 1]")
	}
	if c.Learning.Gamma < 0 || c.Learning.Gamma > 1 {
		return fmt.Errorf("learning.gamma must be between 0 and 1")
	}
	if c.Learning.FinalEpsilon < 0 || c.Learning.FinalEpsilon > 1 {
		return fmt.Errorf("learning.final_epsilon must be between 0 and 1")
	}
	if c.Learning.Policy.Epsilon < 0 || c.Learning.Policy.Epsilon > 1 {
		return fmt.Errorf("learning.policy.epsilon must be between 0 and 1")
	}
	if c.Learning.Policy.Temperature < 0 {
		return fmt.Errorf("learning.policy.temperature must be non-negative")
	}

	switch c.Storage.Backend {
	case "memory":
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("storage.backend must be memory or sqlite, got %q", c.Storage.Backend)
	}

	if c.Server.GRPCServer.Port <= 0 || c.Server.GRPCServer.Port > 65535 {
		return fmt.Errorf("server.grpc_server.port must be between 1 and 65535")
	}
	if c.Server.GRPCServer.GracefulShutdownDelay < 0 {
		return fmt.Errorf("server.grpc_server.graceful_shutdown_delay must be non-negative")
	}
	if c.Server.GRPCServer.MonitorInterval < 0 {
		return fmt.Errorf("server.grpc_server.monitor_interval must be non-negative")
	}

	return nil
}
