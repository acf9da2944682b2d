package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TasksDir         = ".tasks"
	ConfigFileName   = "config.yaml"
	DefaultTasksFile = "tasks.yaml"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MissingDataDirError reports absence of an expected task data directory.
type MissingDataDirError struct {
	BaseDir string
}

func (e *MissingDataDirError) Error() string {
	if e == nil {
		return "data directory not found"
	}
	if e.BaseDir == "" {
		return "data directory not found"
	}
	return fmt.Sprintf("no data directory found from %s (.tasks/)", e.BaseDir)
}

// Config holds the settings read from config.yaml in the data directory.
// Fields are pointers where an absent key must fall back to a default.
type Config struct {
	AutoSave  *bool  `yaml:"autosave,omitempty"`
	Color     string `yaml:"color,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	TasksFile string `yaml:"tasks_file,omitempty"`
}

// Settings is the resolved configuration for one run.
type Settings struct {
	DataDir   string
	AutoSave  bool
	Color     string
	LogLevel  string
	TasksFile string
}

// Defaults returns the settings used when neither config.yaml nor flags say otherwise.
func Defaults() Settings {
	return Settings{
		AutoSave:  true,
		Color:     ColorAuto,
		LogLevel:  "warn",
		TasksFile: DefaultTasksFile,
	}
}

// Apply overlays the values present in cfg onto s.
func (s Settings) Apply(cfg Config) Settings {
	if cfg.AutoSave != nil {
		s.AutoSave = *cfg.AutoSave
	}
	if cfg.Color != "" {
		s.Color = cfg.Color
	}
	if cfg.LogLevel != "" {
		s.LogLevel = cfg.LogLevel
	}
	if cfg.TasksFile != "" {
		s.TasksFile = cfg.TasksFile
	}
	return s
}

// Validate checks enumerated values.
func (s Settings) Validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", s.Color)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", s.LogLevel)
	}
	if strings.TrimSpace(s.TasksFile) == "" {
		return errors.New("tasks file name must not be empty")
	}
	return nil
}

// Persistent reports whether the list is backed by a file.
func (s Settings) Persistent() bool {
	return s.DataDir != ""
}

// TasksFilePath returns the path of the persisted task list.
func (s Settings) TasksFilePath() string {
	if filepath.IsAbs(s.TasksFile) {
		return s.TasksFile
	}
	return DataDirFilePath(s.DataDir, s.TasksFile)
}

// DetectDataDir searches the working directory and nearby parents for a .tasks
// data directory.
func DetectDataDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return DetectDataDirFrom(cwd)
}

// DetectDataDirFrom mirrors DetectDataDir but with a caller-supplied base path.
func DetectDataDirFrom(basePath string) (string, error) {
	candidates := []string{
		filepath.Join(basePath, TasksDir),
		filepath.Join(filepath.Dir(basePath), TasksDir),
		filepath.Join(filepath.Dir(filepath.Dir(basePath)), TasksDir),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", &MissingDataDirError{BaseDir: basePath}
}

// EnsureDataDir creates dataDir if it does not exist yet.
func EnsureDataDir(dataDir string) error {
	if dataDir == "" {
		return errors.New("data directory must not be empty")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return nil
}

// DataDirFilePath formats a path under the provided data directory.
func DataDirFilePath(dataDir, fileName string) string {
	return filepath.Join(dataDir, fileName)
}

// ConfigFilePath returns the path of config.yaml for a data directory.
func ConfigFilePath(dataDir string) string {
	return DataDirFilePath(dataDir, ConfigFileName)
}

// Load reads config.yaml from dataDir. A missing file yields an empty Config.
func Load(dataDir string) (Config, error) {
	raw, err := os.ReadFile(ConfigFilePath(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	out := Config{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return Config{}, fmt.Errorf("failed to decode %s: %w", ConfigFileName, err)
	}
	return out, nil
}

// Save writes cfg to config.yaml in dataDir.
func Save(dataDir string, cfg Config) error {
	if err := EnsureDataDir(dataDir); err != nil {
		return err
	}
	payload, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigFilePath(dataDir), payload, 0o644)
}
