// Package config 提供 CLI 配置管理，基于 viper 加载环境变量与配置文件
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config CLI 应用配置
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Solver SolverConfig `mapstructure:"solver"`
	Roster RosterConfig `mapstructure:"roster"`
	Report ReportConfig `mapstructure:"report"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// SolverConfig CP-SAT 求解器配置
type SolverConfig struct {
	TimeLimit   time.Duration `mapstructure:"time_limit"`
	NumWorkers  int           `mapstructure:"num_workers"`
	LogProgress bool          `mapstructure:"log_progress"`
}

// RosterConfig 名册与规则集输入配置
type RosterConfig struct {
	RosterCSVPath string `mapstructure:"roster_csv_path"`
	RuleSetPath   string `mapstructure:"rule_set_path"`
}

// ReportConfig 输出报表配置
type ReportConfig struct {
	XLSXOutputPath string `mapstructure:"xlsx_output_path"`
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool { return c.App.Env == "development" }

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool { return c.App.Env == "production" }

// Load 从配置文件（若存在）与环境变量加载配置，环境变量以 KAIGOSHIFT_ 为前缀。
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("app.name", "kaigoshift")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("solver.time_limit", 30*time.Second)
	v.SetDefault("solver.num_workers", 4)
	v.SetDefault("solver.log_progress", false)
	v.SetDefault("report.xlsx_output_path", "schedule.xlsx")

	v.SetEnvPrefix("KAIGOSHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
