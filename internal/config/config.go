package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultDatabase   = "linkboard"
	defaultCORSOrigin = "*"
)

type Config struct {
	Env    string
	DB     db
	Server server
	CORS   cors
	Logger logger

	// AdminKey is read from the environment but referenced by no handler.
	// The deployment surface expects the variable, so it stays loaded.
	AdminKey string
}

type db struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"DATABASE_NAME"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type cors struct {
	Origin string `env:"CORS_ORIGIN"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			URI:      viper.GetString("mongo_uri"),
			Database: viper.GetString("database_name"),
		},
		Server:   server{RunAddress: viper.GetString("run_address")},
		CORS:     cors{Origin: viper.GetString("cors_origin")},
		Logger:   logger{LogLevel: viper.GetString("log_level")},
		AdminKey: viper.GetString("admin_key"),
	}

	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.DB.URI == "" {
		config.DB.URI = defaultMongoURI
	}
	if config.DB.Database == "" {
		config.DB.Database = defaultDatabase
	}
	if config.CORS.Origin == "" {
		config.CORS.Origin = defaultCORSOrigin
	}
	if config.Env == "" {
		config.Env = EnvProd
	}

	return &config
}
