package config

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host          string `yaml:"host" json:"host"`
	Port          int    `yaml:"port" json:"port"`
	Secret        string `yaml:"secret" json:"secret"`
	WhatsappPhone string `yaml:"whatsapp_phone" json:"whatsapp_phone"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(c.GetLogDir(), 0o755)
	_ = os.MkdirAll(c.GetDataDir(), 0o755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "upgradeats",
		Location: "Asia/Jakarta",
		Workdir:  "/var/upgradeats",
		Debug:    true,
	},
	Web: WebConfig{
		Host:          "0.0.0.0",
		Port:          1899,
		Secret:        "9b6de5cc-upgradeats-b843369df707",
		WhatsappPhone: "6285832841485",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "upgradeats",
		User:     "postgres",
		Passwd:   "root",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/upgradeats/upgradeats.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v := os.Getenv(name); v != "" {
		f(v)
	}
}

func setEnvInt64Value(name string, f func(v int64)) {
	if v := os.Getenv(name); v != "" {
		f(cast.ToInt64(v))
	}
}

// LoadConfig reads the YAML configuration file and applies UGE_* environment
// overrides on top of it. A missing file falls back to DefaultAppConfig.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	if data, err := os.ReadFile(cfile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "parse config %s error: %s\n", cfile, err.Error())
			cfg = DefaultAppConfig
		}
	} else {
		cfg = DefaultAppConfig
	}

	setEnvValue("UGE_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("UGE_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = v == "true" })
	setEnvValue("UGE_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("UGE_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("UGE_WEB_WHATSAPP_PHONE", func(v string) { cfg.Web.WhatsappPhone = v })
	setEnvInt64Value("UGE_WEB_PORT", func(v int64) { cfg.Web.Port = int(v) })
	setEnvValue("UGE_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvInt64Value("UGE_DB_PORT", func(v int64) { cfg.Database.Port = int(v) })
	setEnvValue("UGE_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("UGE_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("UGE_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("UGE_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	return cfg
}
