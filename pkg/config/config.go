// Package config 从YAML文件加载配置，环境变量 DICT_* 覆盖对应字段
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// 存储驱动
const (
	DriverFile   = "file"
	DriverBadger = "badger"
)

// Config 全部配置
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Segment SegmentConfig `yaml:"segment"`
}

// StorageConfig 存储配置，file 驱动的 Path 为文件，badger 驱动的 Path 为目录
type StorageConfig struct {
	Driver     string        `yaml:"driver"`
	Path       string        `yaml:"path"`
	GCInterval time.Duration `yaml:"gcInterval"`
}

// LoggingConfig 日志级别、格式与输出文件
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// MetricsConfig 退出时写出的指标文件，为空表示不写
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// SegmentConfig 是否启用分词器
type SegmentConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load 读取配置
// path 为空时只使用默认值与环境变量
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s fail: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s fail: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验驱动与日志格式
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverBadger:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Path == "" {
		return errors.New("storage path is empty")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:     DriverFile,
			Path:       "database.txt",
			GCInterval: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "dictionary.log",
		},
	}
}

// applyEnvOverrides 读取 DICT_* 环境变量覆盖配置
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DICT_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DICT_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("DICT_STORAGE_GC_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Storage.GCInterval = d
		}
	}
	if v := os.Getenv("DICT_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("DICT_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("DICT_LOGGING_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("DICT_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Textfile = v
	}
	if v := os.Getenv("DICT_SEGMENT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Segment.Enabled = b
		}
	}
}
