package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var loaded bool

// Config reads a single variable from the environment, loading .env once.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using process environment")
		}
		loaded = true
	}
	return os.Getenv(key)
}

// App holds everything the core components need at construction time,
// so no package keeps its own mutable defaults.
type App struct {
	JWTSecret       string
	TokenTTL        time.Duration
	OrgMailDomain   string
	DefaultPassword string
	PublicBaseURL   string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	RedisAddr       string
	RedisPassword   string
}

func LoadApp() App {
	app := App{
		JWTSecret:       Config("JWT_SECRET"),
		TokenTTL:        7 * 24 * time.Hour,
		OrgMailDomain:   Config("ORG_MAIL_DOMAIN"),
		DefaultPassword: Config("DEFAULT_PASSWORD"),
		PublicBaseURL:   Config("PUBLIC_BASE_URL"),
		SMTPHost:        Config("SMTP_HOST"),
		SMTPUsername:    Config("SMTP_USERNAME"),
		SMTPPassword:    Config("SMTP_PASSWORD"),
		SMTPFrom:        Config("SMTP_FROM"),
		RedisAddr:       Config("REDIS_ADDR"),
		RedisPassword:   Config("REDIS_PASSWORD"),
	}
	if ttl := Config("TOKEN_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			app.TokenTTL = time.Duration(hours) * time.Hour
		}
	}
	if port, err := strconv.Atoi(Config("SMTP_PORT")); err == nil {
		app.SMTPPort = port
	}
	if app.OrgMailDomain == "" {
		app.OrgMailDomain = "org.edu"
	}
	if app.DefaultPassword == "" {
		app.DefaultPassword = "changeme123"
	}
	if app.PublicBaseURL == "" {
		app.PublicBaseURL = "http://localhost:8002"
	}
	return app
}

var current App

// Current returns the process-wide app config. Init must run before handlers.
func Current() App { return current }

func Init() { current = LoadApp() }

// SetForTest replaces the active config. Tests only.
func SetForTest(app App) { current = app }
