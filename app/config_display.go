package app

import (
	"log"
	"os"
	"sort"
	"strings"

	"farmportal.app/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints all fields in the configuration
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("SERVER:\n")
	log.Printf("  Port: %d\n", cfg.Server.Port)
	log.Printf("  Allowed Origins: %s\n", strings.Join(cfg.Server.AllowedOrigins, ", "))

	log.Printf("\nUPSTREAM SERVICES:\n")
	log.Printf("  Advisory: %s (timeout %ds)\n", cfg.Advisory.BaseURL, cfg.Advisory.TimeoutSeconds)
	log.Printf("  Eco: %s (timeout %ds)\n", cfg.Eco.BaseURL, cfg.Eco.TimeoutSeconds)
	log.Printf("  Alert: %s (timeout %ds)\n", cfg.Alert.BaseURL, cfg.Alert.TimeoutSeconds)
	log.Printf("  Chatbot: %s (timeout %ds)\n", cfg.Chatbot.BaseURL, cfg.Chatbot.TimeoutSeconds)

	log.Printf("\nCACHE:\n")
	log.Printf("  Type: %s\n", cfg.Cache.Type)
	log.Printf("  TTL: %d minutes\n", cfg.Cache.TTLMinutes)
	if cfg.Cache.Type == "redis" {
		log.Printf("  Redis Addr: %s\n", cfg.Cache.RedisAddr)
		log.Printf("  Redis Password: %s\n", cd.maskString(cfg.Cache.RedisPassword))
		log.Printf("  Redis DB: %d\n", cfg.Cache.RedisDB)
	}

	log.Printf("\nSESSION:\n")
	log.Printf("  Cookie Name: %s\n", cfg.Session.CookieName)
	log.Printf("  Cookie Max Age: %d seconds\n", cfg.Session.CookieMaxAge)
	log.Printf("  Cookie Secure: %t\n", cfg.Session.CookieSecure)

	log.Println("===================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	log.Println("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, value := parts[0], parts[1]
		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}
		log.Printf("  %s=%s\n", key, value)
	}

	log.Println("===============================")
}

func (cd *ConfigDisplayer) isSensitive(key string) bool {
	upper := strings.ToUpper(key)
	return strings.Contains(upper, "PASSWORD") ||
		strings.Contains(upper, "SECRET") ||
		strings.Contains(upper, "TOKEN") ||
		strings.Contains(upper, "KEY")
}

func (cd *ConfigDisplayer) maskString(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
