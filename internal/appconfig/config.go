// Package appconfig loads the serve command's configuration file with
// viper and keeps it hot-reloadable via fsnotify, the same pattern the rest
// of the stack's config packages use.
package appconfig

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf is the process-wide configuration, populated by Load.
var Conf *Config

type Config struct {
	AppName    string     `mapstructure:"appName"`
	Log        LogConf    `mapstructure:"log"`
	WsPort     int        `mapstructure:"wsPort"`
	MetricPort int        `mapstructure:"metricPort"`
	Nats       NatsConf   `mapstructure:"nats"`
	Database   DatabaseConf `mapstructure:"database"`
	Cache      CacheConf  `mapstructure:"cache"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type NatsConf struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

type DatabaseConf struct {
	Mongo MongoConf `mapstructure:"mongo"`
	Redis RedisConf `mapstructure:"redis"`
}

type MongoConf struct {
	URL         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

type RedisConf struct {
	Addr         string `mapstructure:"addr"`
	Password     string `mapstructure:"password"`
	PoolSize     int    `mapstructure:"poolSize"`
	MinIdleConns int    `mapstructure:"minIdleConns"`
}

type CacheConf struct {
	MaxCostBytes int64 `mapstructure:"maxCostBytes"`
	TTLSeconds   int   `mapstructure:"ttlSeconds"`
}

// Load reads configFile into Conf and keeps watching it for changes; a
// change swaps Conf's contents in place. Settings the serve command has
// already read at startup (ports, connections, cache sizes) are not
// re-applied.
func Load(configFile string) error {
	Conf = new(Config)
	v := viper.New()
	v.SetConfigFile(configFile)
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		var next Config
		if err := v.Unmarshal(&next); err != nil {
			return
		}
		*Conf = next
	})

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("appconfig: reading %s: %w", configFile, err)
	}
	if err := v.Unmarshal(Conf); err != nil {
		return fmt.Errorf("appconfig: parsing %s: %w", configFile, err)
	}
	return nil
}
