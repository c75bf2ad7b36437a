package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	Production      bool
	AppName         string
	SpreadsheetID   string
	CredentialsJSON []byte
	Timezone        string
	Branches        []string
	SessionSecret   string
	SessionTTL      time.Duration
	LoginRatePerMinute int
	LoginRateBurst     int
}

var defaultBranches = []string{"Cabang 1", "Cabang 2", "Cabang 3", "Cabang 4"}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "Nails Salon Antrian"
	}

	timezone := os.Getenv("TIMEZONE")
	if timezone == "" {
		timezone = "Asia/Jakarta"
	}

	creds := os.Getenv("GOOGLE_CREDENTIALS_JSON")
	if creds == "" {
		// Service account split across two vars, the way the hosting
		// provider exposes them.
		email := os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL")
		key := strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")
		if email != "" && key != "" {
			creds = `{"type":"service_account","client_email":` + strconv.Quote(email) + `,"private_key":` + strconv.Quote(key) + `}`
		}
	}

	return Config{
		Port:            port,
		Production:      os.Getenv("NODE_ENV") == "production" || readBool("PRODUCTION", false),
		AppName:         appName,
		SpreadsheetID:   os.Getenv("GOOGLE_SHEET_ID"),
		CredentialsJSON: []byte(creds),
		Timezone:        timezone,
		Branches:        readBranches(),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      readDurationSeconds("SESSION_TTL_SECONDS", 8*60*60),
		LoginRatePerMinute: readInt("LOGIN_RATE_LIMIT_PER_MIN", 2),
		LoginRateBurst:     readInt("LOGIN_RATE_LIMIT_BURST", 10),
	}
}

func readBranches() []string {
	raw := os.Getenv("BRANCHES")
	if raw == "" {
		return defaultBranches
	}
	parts := strings.Split(raw, ",")
	branches := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			branches = append(branches, trimmed)
		}
	}
	if len(branches) == 0 {
		return defaultBranches
	}
	return branches
}

// AdminPassword returns the configured secret for a branch, read from
// ADMIN_PASS_<branch> with spaces replaced by underscores. The value may be
// either a bcrypt hash or a plain secret.
func (c Config) AdminPassword(branch string) string {
	key := "ADMIN_PASS_" + strings.ReplaceAll(branch, " ", "_")
	return os.Getenv(key)
}

// ValidBranch reports whether the branch is one of the configured branches.
func (c Config) ValidBranch(branch string) bool {
	for _, b := range c.Branches {
		if b == branch {
			return true
		}
	}
	return false
}

func readDurationSeconds(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		return 0
	}
	return time.Duration(value) * time.Second
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
