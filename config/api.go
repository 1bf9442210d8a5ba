package config

import (
	"os"
	"strings"
)

// CORSOrigins returns the allowed CORS origins for the GraphQL front door.
func CORSOrigins() []string {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{"*"}
}
