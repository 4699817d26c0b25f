package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Authentication modes for inbound Slack requests
const (
	AuthModeHMAC       = "hmac"
	AuthModePermissive = "permissive"
	AuthModeStrict     = "strict"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SigningSecret string
	AuthMode      string
	JiraBaseURL   string
	JiraToken     string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("retro-vote-sorter", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SigningSecret, "signing-secret", "", "Slack signing secret (prefer env)")
	fs.StringVar(&cfg.AuthMode, "auth-mode", "", "Auth mode when no signing secret: permissive or strict")

	// Optional ticket-title enrichment
	fs.StringVar(&cfg.JiraBaseURL, "jira-url", "", "Jira base URL for ticket title lookup")
	fs.StringVar(&cfg.JiraToken, "jira-token", "", "Jira API token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.SigningSecret == "" {
		cfg.SigningSecret = os.Getenv("SLACK_SIGNING_SECRET")
	}
	if cfg.AuthMode == "" {
		cfg.AuthMode = os.Getenv("AUTH_MODE")
	}

	// Request authentication must be an explicit choice. With a signing
	// secret the mode is hmac; without one the operator has to pick
	// permissive (dev) or strict. There is no silent default.
	if cfg.SigningSecret != "" {
		if cfg.AuthMode != "" && cfg.AuthMode != AuthModeHMAC {
			return Config{}, errors.New("AUTH_MODE conflicts with SLACK_SIGNING_SECRET (remove one)")
		}
		cfg.AuthMode = AuthModeHMAC
	} else {
		switch cfg.AuthMode {
		case AuthModePermissive, AuthModeStrict:
		case AuthModeHMAC:
			return Config{}, errors.New("AUTH_MODE=hmac requires SLACK_SIGNING_SECRET")
		case "":
			return Config{}, errors.New("SLACK_SIGNING_SECRET or AUTH_MODE (permissive/strict) required")
		default:
			return Config{}, errors.New("AUTH_MODE must be permissive or strict")
		}
	}

	if cfg.JiraBaseURL == "" {
		cfg.JiraBaseURL = os.Getenv("JIRA_BASE_URL")
	}
	if cfg.JiraToken == "" {
		cfg.JiraToken = os.Getenv("JIRA_API_TOKEN")
	}

	return cfg, nil
}
