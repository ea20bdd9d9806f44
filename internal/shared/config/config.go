package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	MaxUploadBytes  int64
	LatencyScale    float64
}

// Load reads configuration from an optional TOML file and environment
// variables. Environment values win over file values.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	file, err := loadFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Printf("config: ignoring CONFIG_FILE: %v", err)
	}

	return Config{
		Port:            getEnv("PORT", file.Port, "8080"),
		Env:             normalizeEnv(getEnv("ENV", file.Env, "dev")),
		LogLevel:        getEnv("LOG_LEVEL", file.LogLevel, ""),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", strings.Join(file.CORSAllowOrigins, ","), "http://localhost:3000")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", file.ObjectStore.Type, "none")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", file.ObjectStore.LocalDir, "./data"),
		AWSRegion:       getEnv("AWS_REGION", file.ObjectStore.AWSRegion, ""),
		S3Bucket:        getEnv("S3_BUCKET", file.ObjectStore.S3Bucket, ""),
		S3Prefix:        getEnv("S3_PREFIX", file.ObjectStore.S3Prefix, ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", file.ObjectStore.SSEKMSKeyID, ""),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", file.MaxUploadBytes),
		LatencyScale:    getEnvFloat("LATENCY_SCALE", file.LatencyScale, 1.0),
	}
}

func getEnv(key, fileVal, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if strings.TrimSpace(fileVal) != "" {
		return fileVal
	}
	return def
}

func getEnvInt64(key string, fileVal int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return max(fileVal, 0)
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val < 0 {
		log.Printf("config: %s invalid int: %q", key, raw)
		return max(fileVal, 0)
	}
	return val
}

func getEnvFloat(key string, fileVal *float64, def float64) float64 {
	if fileVal != nil && *fileVal >= 0 {
		def = *fileVal
	}
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 {
		log.Printf("config: %s invalid float: %q", key, raw)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	case "local":
		return "local"
	default:
		return "none"
	}
}
