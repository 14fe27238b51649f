package config

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLimitPosts = 20
	MaxLimitPosts     = 50

	// BodyLimit caps inbound request bodies in bytes.
	BodyLimit = 200_000

	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	MongoURI         string
	MongoDB          string
	MongoMaxPoolSize uint64
	DBTimeout        time.Duration

	AppOrigin string
	Port      string
	Store     string

	YouTubeAPIKey  string
	YouTubeBaseURL string
	YouTubeTimeout time.Duration
}

// flagKeys maps CLI flags onto their environment keys.
var flagKeys = map[string]string{
	"port":  "PORT",
	"store": "STORE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DB", "freedom_wall")
	v.SetDefault("MONGODB_MAX_POOL_SIZE", 10)
	v.SetDefault("DB_TIMEOUT", 5*time.Second)
	v.SetDefault("APP_ORIGIN", "*")
	v.SetDefault("PORT", "3000")
	v.SetDefault("STORE", StoreMongo)
	v.SetDefault("YOUTUBE_API_KEY", "")
	v.SetDefault("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("YOUTUBE_TIMEOUT", 10*time.Second)
}

// LoadConfig reads .env (when present), the environment and the given
// flags, in increasing order of precedence. flags may be nil.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := Config{
		MongoURI:         v.GetString("MONGODB_URI"),
		MongoDB:          v.GetString("MONGODB_DB"),
		MongoMaxPoolSize: v.GetUint64("MONGODB_MAX_POOL_SIZE"),
		DBTimeout:        v.GetDuration("DB_TIMEOUT"),
		AppOrigin:        v.GetString("APP_ORIGIN"),
		Port:             v.GetString("PORT"),
		Store:            v.GetString("STORE"),
		YouTubeAPIKey:    v.GetString("YOUTUBE_API_KEY"),
		YouTubeBaseURL:   v.GetString("YOUTUBE_BASE_URL"),
		YouTubeTimeout:   v.GetDuration("YOUTUBE_TIMEOUT"),
	}

	switch cfg.Store {
	case StoreMongo, StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown store %q (want %s or %s)", cfg.Store, StoreMongo, StoreMemory)
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT must not be empty")
	}
	return cfg, nil
}
