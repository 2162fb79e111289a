package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	PaymentBaseURL   string
	PaymentSecretKey string

	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	env := Env{
		AppAddr:          appAddr,
		GinMode:          strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:           envOr("DB_USER", "root"),
		DBPass:           os.Getenv("DB_PASS"),
		DBHost:           envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:           envOr("DB_NAME", "bookshop"),
		JWTSecret:        envOr("JWT_SECRET", "super-secret-key-change-me"),
		PaymentBaseURL:   envOr("PAYMENT_BASE_URL", "https://api.flutterwave.com/v3"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	} else {
		env.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return env
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
