package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridRacingRL/internal/experience"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/mitchelldurbincs/GridRacingRL/internal/race"
	"github.com/mitchelldurbincs/GridRacingRL/internal/storage"
	"github.com/mitchelldurbincs/GridRacingRL/internal/testutil"
)

func reset() {
	mu.Lock()
	cfg = nil
	mu.Unlock()
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
race:
  max_ticks: 60
  recent_per_agent: 4
learning:
  alpha: 0.2
  policy:
    epsilon: 0.3
    epsilon_decay: false
rewards:
  wall: -10
  rank:
    first: 120
storage:
  backend: sqlite
  sqlite_path: /tmp/race.db
server:
  grpc_server:
    port: 8080
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	reset()
	err = Init(configFile)
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 60, c.Race.MaxTicks)
	assert.Equal(t, 4, c.Race.RecentPerAgent)
	assert.Equal(t, storage.DefaultRecentPerTrack, c.Race.RecentPerTrack)
	assert.Equal(t, 0.2, c.Learning.Alpha)
	assert.Equal(t, learning.DefaultGamma, c.Learning.Gamma)
	assert.Equal(t, 0.3, c.Learning.Policy.Epsilon)
	assert.False(t, c.Learning.Policy.EpsilonDecay)
	assert.True(t, c.Learning.Policy.Training)
	assert.Equal(t, int32(-10), c.Rewards.Wall)
	assert.Equal(t, int32(120), c.Rewards.Rank.First)
	assert.Equal(t, int32(50), c.Rewards.Rank.Second)
	assert.Equal(t, "sqlite", c.Storage.Backend)
	assert.Equal(t, "/tmp/race.db", c.Storage.SQLitePath)
	assert.Equal(t, 8080, c.Server.GRPCServer.Port)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestGetViperBeforeInit(t *testing.T) {
	reset()
	r := testutil.AssertPanic(t, func() { GetViper() }, "GetViper before Init")
	assert.Contains(t, r, "call Init() first")

	require.NoError(t, Init(""))
	assert.NotNil(t, GetViper())
}

func TestInitWithDefaults(t *testing.T) {
	reset()

	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, race.DefaultSettings(), c.RaceSettings())
	assert.Equal(t, storage.DefaultLimits(), c.StorageLimits())
	assert.Equal(t, experience.DefaultRewardTable(), c.Rewards)
	assert.Equal(t, "memory", c.Storage.Backend)
	assert.Equal(t, 50051, c.Server.GRPCServer.Port)
}

func TestEnvironmentVariables(t *testing.T) {
	reset()

	t.Setenv("RACE_RACE_MAX_TICKS", "40")
	t.Setenv("RACE_SERVER_GRPC_SERVER_PORT", "9090")
	t.Setenv("RACE_STORAGE_BACKEND", "sqlite")

	err := Init("")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 40, c.Race.MaxTicks)
	assert.Equal(t, 9090, c.Server.GRPCServer.Port)
	assert.Equal(t, "sqlite", c.Storage.Backend)
}

func TestSet(t *testing.T) {
	reset()

	err := Init("")
	require.NoError(t, err)

	require.NoError(t, Set("race.max_ticks", 25))
	require.NoError(t, Set("rewards.stuck", -2))

	c := Get()
	assert.Equal(t, 25, c.Race.MaxTicks)
	assert.Equal(t, int32(-2), c.RaceSettings().Rewards.Stuck)
}

func TestSetRejectsInvalidValueAndKeepsConfig(t *testing.T) {
	reset()
	require.NoError(t, Init(""))
	before := Get()

	assert.Error(t, Set("race.max_ticks", 0))
	assert.Same(t, before, Get())
	assert.Equal(t, before.Race.MaxTicks, Get().Race.MaxTicks)
}

func TestReloadSwapsInFreshConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("race:\n  max_ticks: 50\n"), 0644))

	reset()
	require.NoError(t, Init(configFile))
	before := Get()

	require.NoError(t, os.WriteFile(configFile, []byte("race:\n  max_ticks: -3\n"), 0644))
	require.NoError(t, v.ReadInConfig())
	assert.Error(t, reload())
	assert.Same(t, before, Get())
	assert.Equal(t, 50, Get().Race.MaxTicks)

	require.NoError(t, os.WriteFile(configFile, []byte("race:\n  max_ticks: 70\n"), 0644))
	require.NoError(t, v.ReadInConfig())
	require.NoError(t, reload())
	assert.NotSame(t, before, Get())
	assert.Equal(t, 70, Get().Race.MaxTicks)
	assert.Equal(t, 50, before.Race.MaxTicks)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero ticks", func(c *Config) { c.Race.MaxTicks = 0 }},
		{"too many agents", func(c *Config) { c.Race.MaxAgents = 9 }},
		{"inverted agent bounds", func(c *Config) { c.Race.MinAgents = 5; c.Race.MaxAgents = 2 }},
		{"no recent cap", func(c *Config) { c.Race.RecentPerTrack = 0 }},
		{"alpha out of range", func(c *Config) { c.Learning.Alpha = 1.5 }},
		{"negative gamma", func(c *Config) { c.Learning.Gamma = -0.1 }},
		{"epsilon above one", func(c *Config) { c.Learning.Policy.Epsilon = 2 }},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"sqlite without path", func(c *Config) { c.Storage.Backend = "sqlite"; c.Storage.SQLitePath = "" }},
		{"bad port", func(c *Config) { c.Server.GRPCServer.Port = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			require.NoError(t, Init(""))
			c := *Get()
			tt.mutate(&c)
			assert.Error(t, Validate(&c))
		})
	}
}

func TestInitRejectsInvalidFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("race:\n  max_ticks: -1\n"), 0644))

	reset()
	assert.Error(t, Init(configFile))
}

func TestLoadEnvironmentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	baseConfig := filepath.Join(tmpDir, "config.yaml")
	baseContent := `
race:
  max_ticks: 100
server:
  grpc_server:
    port: 50051
`
	err := os.WriteFile(baseConfig, []byte(baseContent), 0644)
	require.NoError(t, err)

	envConfig := filepath.Join(tmpDir, "config.prod.yaml")
	envContent := `
race:
  max_ticks: 80
server:
  grpc_server:
    port: 8080
    log_level: "error"
`
	err = os.WriteFile(envConfig, []byte(envContent), 0644)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	reset()
	err = Init(baseConfig)
	require.NoError(t, err)

	err = LoadEnvironmentConfig("prod")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 80, c.Race.MaxTicks)
	assert.Equal(t, 8080, c.Server.GRPCServer.Port)
	assert.Equal(t, "error", c.Server.GRPCServer.LogLevel)
}
