package config

import (
	"os"
	"strconv"
)

// Helper untuk ambil environment variable dengan nilai default
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper untuk ambil environment variable sebagai integer
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret dipakai di handler login dan middleware auth.
// Pastikan keduanya memakai fungsi ini agar key-nya SAMA PERSIS.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia_negara"))
}
