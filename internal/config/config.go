// Package config holds application constants and the user's YAML settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/akyairhashvil/meditimer/internal/util"
	"gopkg.in/yaml.v3"
)

// Orientation names accepted in the config file.
const (
	OrientationFill  = "fill"
	OrientationDrain = "drain"
)

// soundsDir holds the audio assets under the data dir.
const soundsDir = "sounds"

type Config struct {
	Session  SessionConfig  `yaml:"session"`
	Audio    AudioConfig    `yaml:"audio"`
	Reminder ReminderConfig `yaml:"reminder"`
	Theme    ThemeConfig    `yaml:"theme"`
	Data     DataConfig     `yaml:"data"`
}

type SessionConfig struct {
	DefaultMinutes int    `yaml:"default_minutes"`
	Orientation    string `yaml:"orientation"`
	Presets        []int  `yaml:"presets"`
}

type AudioConfig struct {
	// Command is the external player binary; Args are passed before the asset path.
	Command      string   `yaml:"command"`
	Args         []string `yaml:"args"`
	LoopArgs     []string `yaml:"loop_args"`
	VolumeArg    string   `yaml:"volume_arg"`
	AssetsDir    string   `yaml:"assets_dir"`
	Volume       float64  `yaml:"volume"`
	DefaultSound string   `yaml:"default_sound"`
}

type ReminderConfig struct {
	Timezone string `yaml:"timezone"`
}

type ThemeConfig struct {
	Name string `yaml:"name"`
}

type DataConfig struct {
	Dir     string `yaml:"dir"`
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	dataDir := util.DataDir(AppName)
	return Config{
		Session: SessionConfig{
			DefaultMinutes: DefaultMinutes,
			Orientation:    OrientationFill,
			Presets:        append([]int(nil), DurationPresets...),
		},
		Audio: AudioConfig{
			Command:      "ffplay",
			Args:         []string{"-nodisp", "-autoexit", "-loglevel", "quiet"},
			LoopArgs:     []string{"-loop", "0"},
			VolumeArg:    "-volume",
			AssetsDir:    filepath.Join(dataDir, soundsDir),
			Volume:       DefaultVolume,
			DefaultSound: "silence",
		},
		Reminder: ReminderConfig{Timezone: "Europe/Moscow"},
		Theme:    ThemeConfig{Name: "default"},
		Data: DataConfig{
			Dir:     dataDir,
			LogFile: filepath.Join(dataDir, LogFileName),
		},
	}
}

// Path resolves the config file location. MEDITIMER_CONFIG wins over the XDG default.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("MEDITIMER_CONFIG")); p != "" {
		return p
	}
	return filepath.Join(util.ConfigDir(AppName), "config.yaml")
}

// Load reads the YAML file at path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if dir := strings.TrimSpace(os.Getenv("MEDITIMER_DATA_DIR")); dir != "" {
		if cfg.Audio.AssetsDir == filepath.Join(cfg.Data.Dir, soundsDir) {
			cfg.Audio.AssetsDir = filepath.Join(dir, soundsDir)
		}
		cfg.Data.Dir = dir
		cfg.Data.LogFile = filepath.Join(dir, LogFileName)
	}
	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) normalize() error {
	c.Session.DefaultMinutes = util.Clamp(c.Session.DefaultMinutes, MinMinutes, MaxMinutes)
	switch c.Session.Orientation {
	case "":
		c.Session.Orientation = OrientationFill
	case OrientationFill, OrientationDrain:
	default:
		return fmt.Errorf("unknown orientation %q", c.Session.Orientation)
	}
	presets := c.Session.Presets[:0]
	for _, p := range c.Session.Presets {
		if p >= MinMinutes && p <= MaxMinutes {
			presets = append(presets, p)
		}
	}
	if len(presets) == 0 {
		presets = append(presets, DurationPresets...)
	}
	c.Session.Presets = presets
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the reminder time zone.
func (c Config) Location() (*time.Location, error) {
	if c.Reminder.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Reminder.Timezone)
	if err != nil {
		return nil, fmt.Errorf("reminder timezone %q: %w", c.Reminder.Timezone, err)
	}
	return loc, nil
}
