// Package config provides configuration management for the WayForPay checkout service.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the checkout service.
// Values can be set via YAML configuration file or environment variables.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug bool `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	Listen  struct {
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5100" validate:"required,numeric"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:"" validate:"required_if=TLS true"`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:"" validate:"required_if=TLS true"`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"wayforpay" validate:"required_if=Enabled true"`
	} `yaml:"mongo"`
	Merchant struct {
		Account string `yaml:"account" env:"MERCHANT_ACCOUNT" env-default:"" validate:"required"`
		Key     string `yaml:"key" env:"MERCHANT_KEY" env-default:"" validate:"required"`
		// Domain fills merchantDomainName when a purchase request omits it.
		Domain string `yaml:"domain" env:"MERCHANT_DOMAIN" env-default:""`
		ApiUrl string `yaml:"api_url" env:"MERCHANT_API_URL" env-default:"https://api.wayforpay.com/api" validate:"required,url"`
	} `yaml:"merchant"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path.
// Configuration values can be overridden by environment variables.
// This function uses a singleton pattern and only loads the config once.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance, err = readConfig(path)
	})
	return instance, err
}

func readConfig(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}
	if err := validator.New().Struct(conf); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return conf, nil
}
