package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config represents the full config.json schema for esports-stream.
type Config struct {
	NickName    string          `json:"nickName" mapstructure:"nickName"`
	Version     string          `json:"version" mapstructure:"version"`
	Mode        string          `json:"mode" mapstructure:"mode"`
	MaxStream   int             `json:"maxStream" mapstructure:"maxStream"`
	Proxy       string          `json:"proxy" mapstructure:"proxy"`
	Language    string          `json:"language" mapstructure:"language"`
	Webhook     string          `json:"webhook" mapstructure:"webhook"`
	SleepPeriod string          `json:"sleepPeriod" mapstructure:"sleepPeriod"`
	Dashboard   DashboardConfig `json:"dashboard" mapstructure:"dashboard"`
	Feed        FeedConfig      `json:"feed" mapstructure:"feed"`
	Log         LogConfig       `json:"log" mapstructure:"log"`
	Demo        DemoConfig      `json:"demo" mapstructure:"demo"`
}

// DashboardConfig controls the live terminal dashboard.
type DashboardConfig struct {
	Interval      time.Duration `json:"interval" mapstructure:"interval"`
	BriefLogLines int           `json:"briefLogLines" mapstructure:"briefLogLines"`
	LiveLogLines  int           `json:"liveLogLines" mapstructure:"liveLogLines"`
	ForceColor    bool          `json:"forceColor" mapstructure:"forceColor"`
}

// FeedConfig points at the stats snapshot file published by the workers.
type FeedConfig struct {
	Path     string        `json:"path" mapstructure:"path"`
	Debounce time.Duration `json:"debounce" mapstructure:"debounce"`
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Dir     string `json:"dir" mapstructure:"dir"`
	Level   string `json:"level" mapstructure:"level"`
	Console bool   `json:"console" mapstructure:"console"`
}

// DemoConfig tunes the built-in simulated worker.
type DemoConfig struct {
	Interval time.Duration `json:"interval" mapstructure:"interval"`
}

// Operating modes.
const (
	ModeNormal = "normal"
	ModeSafe   = "safe"
)

// SafeMode reports whether the safe-mode banner annotation should be shown.
func (c *Config) SafeMode() bool {
	return strings.EqualFold(c.Mode, ModeSafe)
}

// SetDefaults registers default values on v. Keys mirror the mapstructure
// tags above.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("nickName", "player")
	v.SetDefault("version", "dev")
	v.SetDefault("mode", ModeNormal)
	v.SetDefault("maxStream", 3)
	v.SetDefault("language", "zh_CN")
	v.SetDefault("dashboard.interval", time.Second)
	v.SetDefault("dashboard.briefLogLines", 10)
	v.SetDefault("dashboard.liveLogLines", 10)
	v.SetDefault("feed.path", "stats.json")
	v.SetDefault("feed.debounce", 100*time.Millisecond)
	v.SetDefault("log.dir", "logs/programs")
	v.SetDefault("log.level", "info")
	v.SetDefault("demo.interval", 3*time.Second)
}

// singleton holds the global loaded config. It is immutable once loaded.
var (
	globalCfg  *Config
	globalRoot string
	mu         sync.RWMutex
)

// Load decodes the configuration held by v (already pointed at a file and
// environment by the CLI layer) and caches it for Get.
func Load(v *viper.Viper, projectRoot string) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	mu.Lock()
	globalCfg = &cfg
	globalRoot = projectRoot
	mu.Unlock()

	return &cfg, nil
}

// Get returns the cached global config. It panics if Load has not been called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()

	if globalCfg == nil {
		panic("config.Get() called before config.Load()")
	}
	return globalCfg
}

// Root returns the project root directory set during Load.
func Root() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalRoot
}
