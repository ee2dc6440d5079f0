package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	DefaultKey = "todos.entries"
)

type Config interface {
	BasePath() string
	Backend() string
	Key() string
	Placeholders() int
	FallbackMemory() bool
}

// LoadConfig reads .todos.yaml (from $TODOS_CONFIG_PATH or the working
// directory) and TODOS_* environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.todos.db")
	viper.SetDefault("backend", BackendDiskv)
	viper.SetDefault("key", DefaultKey)
	viper.SetDefault("placeholders", 0)
	viper.SetDefault("fallback_memory", false)
	viper.SetConfigName(".todos") // .yaml is implicit
	viper.SetEnvPrefix("TODOS")
	viper.AutomaticEnv()

	if override := os.Getenv("TODOS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:        path,
		BackendName: viper.GetString("backend"),
		SlotKey:     viper.GetString("key"),
		Placeholder: viper.GetInt("placeholders"),
		FallbackMem: viper.GetBool("fallback_memory"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	BackendName string `json:"backend"`
	SlotKey     string `json:"key"`
	Placeholder int    `json:"placeholders"`
	FallbackMem bool   `json:"fallback_memory"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) Backend() string      { return f.BackendName }
func (f *fileConfig) Placeholders() int    { return f.Placeholder }
func (f *fileConfig) FallbackMemory() bool { return f.FallbackMem }

func (f *fileConfig) Key() string {
	if f.SlotKey == "" {
		return DefaultKey
	}
	return f.SlotKey
}

// StaticConfig is a Config with fixed values, for tests and embedding.
type StaticConfig struct {
	Path        string
	BackendName string
	SlotKey     string
	Count       int
	Fallback    bool
}

func (s StaticConfig) BasePath() string     { return s.Path }
func (s StaticConfig) Placeholders() int    { return s.Count }
func (s StaticConfig) FallbackMemory() bool { return s.Fallback }

func (s StaticConfig) Backend() string {
	if s.BackendName == "" {
		return BackendDiskv
	}
	return s.BackendName
}

func (s StaticConfig) Key() string {
	if s.SlotKey == "" {
		return DefaultKey
	}
	return s.SlotKey
}
