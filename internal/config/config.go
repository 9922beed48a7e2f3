package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Auth struct {
		SigningKey    string `yaml:"signing_key"`
		AdminEmail    string `yaml:"admin_email"`
		AdminName     string `yaml:"admin_name"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"auth"`
	Storage struct {
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
	} `yaml:"storage"`
	Firebase struct {
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"firebase"`
}

// LoadConfig reads the YAML file named by CONFIG_PATH (default
// config/config.yaml), then lets environment variables override the
// secret-bearing fields so nothing sensitive has to live on disk.
func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	overrideFromEnv(&cfg.Database.URL, "DATABASE_URL")
	overrideFromEnv(&cfg.Redis.Addr, "REDIS_ADDR")
	overrideFromEnv(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideFromEnv(&cfg.Auth.SigningKey, "JWT_SIGNING_KEY")
	overrideFromEnv(&cfg.Auth.AdminEmail, "ADMIN_EMAIL")
	overrideFromEnv(&cfg.Auth.AdminPassword, "ADMIN_PASSWORD")
	overrideFromEnv(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	overrideFromEnv(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	overrideFromEnv(&cfg.Firebase.CredentialsFile, "FIREBASE_CREDENTIALS_FILE")

	return cfg
}

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
