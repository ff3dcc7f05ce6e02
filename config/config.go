package config

import (
	"bytes"
	"fmt"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"path"
	"strings"
	"time"
)

// Config is the root config
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Schedule ScheduleConfig `mapstructure:"schedule"`

	// DBOnly bypasses memtable and memcached on the read path
	DBOnly bool `mapstructure:"db_only"`
}

// ServerListen ...
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenString for listening on all interfaces when host is empty
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// String for dialing
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// LogConfig ...
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// ScheduleConfig ...
type ScheduleConfig struct {
	// Timezone is an IANA name, empty means the host location
	Timezone    string `mapstructure:"timezone"`
	RefreshSpec string `mapstructure:"refresh_spec"`

	LocalCacheSize    int    `mapstructure:"local_cache_size"`
	LocalCacheSeconds int    `mapstructure:"local_cache_seconds"`
	LeaseTTL          uint32 `mapstructure:"lease_ttl"`
}

// Location ...
func (c ScheduleConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

var defaultConfig = []byte(`
server:
  grpc:
    host: localhost
    port: 5090
  http:
    host: localhost
    port: 5080

log:
  level: info
  development: false

mysql:
  host: localhost
  port: 3306
  database: promo_schedule
  username: root
  password: "1"
  max_open_conns: 20
  max_idle_conns: 10
  options:
    - key: parseTime
      value: "true"
    - key: loc
      value: UTC

memcache:
  host: localhost
  port: 11211
  num_conns: 4

jaeger:
  enabled: false
  url: http://localhost:14268/api/traces

schedule:
  timezone: ""
  refresh_spec: "@every 1m"
  local_cache_size: 33554432
  local_cache_seconds: 5
  lease_ttl: 0

db_only: false
`)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadConfig(bytes.NewBuffer(defaultConfig))
	if err != nil {
		panic(err)
	}
	return v
}

func loadFrom(v *viper.Viper, file string) Config {
	v.SetConfigFile(file)
	err := v.MergeInConfig()
	if err != nil {
		fmt.Println("[WARN] Can not read config file:", file, err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load loads config.yml in the working directory, environment variables override the file
func Load() Config {
	return loadFrom(newViper(), "config.yml")
}

// LoadTestConfig loads config.test.yml in the root directory
func LoadTestConfig(rootDir string) Config {
	return loadFrom(newViper(), path.Join(rootDir, "config.test.yml"))
}

// NewLogger ...
func NewLogger(conf LogConfig) *zap.Logger {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		panic(err)
	}

	zapConf := zap.NewProductionConfig()
	if conf.Development {
		zapConf = zap.NewDevelopmentConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
