package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sidequests/backend/pkg/storage"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	Database  DatabaseConfigs   `toml:"database"`
	ApiServer ServerConfigs     `toml:"api_server"`
	Auth      AuthConfigs       `toml:"auth"`
	Session   SessionConfigs    `toml:"session"`
	Storage   storage.S3Configs `toml:"storage"`
	File      FileConfigs       `toml:"file"`
	Quest     QuestConfigs      `toml:"quest"`
	Search    SearchConfigs     `toml:"search"`
	Geocode   GeocodeConfigs    `toml:"geocode"`
	Redis     RedisConfigs      `toml:"redis"`
	Kafka     KafkaConfigs      `toml:"kafka"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

type AuthConfigs struct {
	TokenSecret     string       `toml:"token_secret"`
	AccessTokenName string       `toml:"access_token_name"`
	AccessToken     TokenConfigs `toml:"access_token"`

	Google OAuth2Config `toml:"google"`
}

type OAuth2Config struct {
	Name         string `toml:"name"`
	Issuer       string `toml:"issuer"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	IDField      string `toml:"id_field"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type SessionConfigs struct {
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

type FileConfigs struct {
	MaxSize     int64  `toml:"max_size"`
	ImageBucket string `toml:"image_bucket"`
}

type QuestConfigs struct {
	// MaxSteps bounds the number of steps accepted at quest creation.
	MaxSteps int `toml:"max_steps"`

	NearbyDefaultRadiusKm float64 `toml:"nearby_default_radius_km"`
	NearbyMaxLimit        int     `toml:"nearby_max_limit"`
}

type SearchConfigs struct {
	IndexDir string `toml:"index_dir"`
}

type GeocodeConfigs struct {
	Endpoint string `toml:"endpoint"`
	// Email identifies this deployment to the address search provider, as
	// required by its usage policy.
	Email string `toml:"email"`
	Limit int    `toml:"limit"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type KafkaConfigs struct {
	Addr  string `toml:"addr"`
	Topic string `toml:"topic"`
}

// Load builds the configuration from environment variables, then overlays the
// TOML file at path when path is not empty.
func Load(path string) (Configs, error) {
	cfg := Configs{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		Database: DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "sidequests"),
			User:     getEnv("MYSQL_USER", "sidequests"),
			Password: getEnv("MYSQL_PASSWORD", "secret"),
		},
		ApiServer: ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			DefaultLimit: getEnvAsInt("API_DEFAULT_LIMIT", 20),
			MaxLimit:     getEnvAsInt("API_MAX_LIMIT", 50),
		},
		Auth: AuthConfigs{
			TokenSecret:     getEnv("TOKEN_SECRET", "token-secret"),
			AccessTokenName: "access_token",
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvAsDuration("ACCESS_TOKEN_DURATION", "24h"),
			},
			Google: OAuth2Config{
				Name:         "google",
				Issuer:       getEnv("GOOGLE_ISSUER", "https://accounts.google.com"),
				ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
				ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
				IDField:      "email",
			},
		},
		Session: SessionConfigs{
			Secret: getEnv("SESSION_SECRET", "session-secret"),
			Name:   "session_id",
		},
		Storage: storage.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", ""),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", ""),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", ""),
			SSLDisabled:    getEnv("STORAGE_SSL_DISABLED", "") != "",
		},
		File: FileConfigs{
			MaxSize:     int64(getEnvAsInt("MAX_UPLOAD_SIZE", 2<<20)),
			ImageBucket: getEnv("IMAGE_BUCKET", "sidequests-images"),
		},
		Quest: QuestConfigs{
			MaxSteps:              getEnvAsInt("QUEST_MAX_STEPS", 20),
			NearbyDefaultRadiusKm: 10,
			NearbyMaxLimit:        getEnvAsInt("NEARBY_MAX_LIMIT", 20),
		},
		Search: SearchConfigs{
			IndexDir: getEnv("SEARCH_INDEX_DIR", "searchindex"),
		},
		Geocode: GeocodeConfigs{
			Endpoint: getEnv("GEOCODE_ENDPOINT", "https://nominatim.openstreetmap.org"),
			Email:    getEnv("GEOCODE_EMAIL", ""),
			Limit:    getEnvAsInt("GEOCODE_LIMIT", 5),
		},
		Redis: RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfigs{
			Addr:  getEnv("KAFKA_ADDR", "localhost:9092"),
			Topic: getEnv("KAFKA_TOPIC", "quest_events"),
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return n
}

func getEnvAsDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}

	return d
}
