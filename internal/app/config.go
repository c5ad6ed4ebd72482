package app

import "os"

type Config struct {
	Env         string
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	StoreDriver string // "mongo" or "memory"
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:         getEnv("APP_ENV", "dev"),
		Port:        getEnv("APP_PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "foodorder"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		StoreDriver: getEnv("STORE_DRIVER", "mongo"),
	}
}
