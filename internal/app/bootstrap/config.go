package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	ServiceID             string
	HTTPPort              int
	GRPCPort              int
	Storage               string
	RedisURL              string
	DatabaseURL           string
	KafkaBrokers          []string
	KafkaTopicUserUpdated string
	// TenantGRPCURL points the HTTP API at a remote tenant service instead of
	// the in-process one.
	TenantGRPCURL string
	Workers       int
	ValidateWire  bool
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
		Workers  int    `yaml:"workers"`
	} `yaml:"service"`
	Storage struct {
		Driver      string `yaml:"driver"`
		RedisURL    string `yaml:"redis_url"`
		DatabaseURL string `yaml:"database_url"`
	} `yaml:"storage"`
	Kafka struct {
		Brokers          []string `yaml:"brokers"`
		TopicUserUpdated string   `yaml:"topic_user_updated"`
	} `yaml:"kafka"`
	Tenant struct {
		GRPCURL      string `yaml:"grpc_url"`
		ValidateWire bool   `yaml:"validate_wire"`
	} `yaml:"tenant"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:             "results-tenant-service",
		HTTPPort:              8080,
		GRPCPort:              9090,
		Storage:               StorageMemory,
		KafkaTopicUserUpdated: "tenant.user_updated",
		Workers:               4,
	}
	if raw, err := os.ReadFile(path); err == nil {
		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Service.Workers > 0 {
			cfg.Workers = f.Service.Workers
		}
		if f.Storage.Driver != "" {
			cfg.Storage = f.Storage.Driver
		}
		cfg.RedisURL = f.Storage.RedisURL
		cfg.DatabaseURL = f.Storage.DatabaseURL
		cfg.KafkaBrokers = f.Kafka.Brokers
		if f.Kafka.TopicUserUpdated != "" {
			cfg.KafkaTopicUserUpdated = f.Kafka.TopicUserUpdated
		}
		cfg.TenantGRPCURL = f.Tenant.GRPCURL
		cfg.ValidateWire = f.Tenant.ValidateWire
	}
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.Storage = envString("STORAGE", cfg.Storage)
	cfg.RedisURL = envString("REDIS_URL", cfg.RedisURL)
	cfg.DatabaseURL = envString("DB_URL", cfg.DatabaseURL)
	cfg.KafkaBrokers = envList("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopicUserUpdated = envString("KAFKA_TOPIC_USER_UPDATED", cfg.KafkaTopicUserUpdated)
	cfg.TenantGRPCURL = envString("TENANT_GRPC_URL", cfg.TenantGRPCURL)
	cfg.Workers = envInt("WORKERS", cfg.Workers)
	cfg.ValidateWire = envBool("VALIDATE_WIRE", cfg.ValidateWire)

	switch cfg.Storage {
	case StorageMemory:
	case StorageRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("storage %q requires REDIS_URL", cfg.Storage)
		}
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("storage %q requires DB_URL", cfg.Storage)
		}
	default:
		return Config{}, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
	return cfg, nil
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envString(name, fallback string) string {
	if raw := strings.TrimSpace(os.Getenv(name)); raw != "" {
		return raw
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envList(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
