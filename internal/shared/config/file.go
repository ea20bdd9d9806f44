package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the subset of Config that may be set from a TOML file.
//
//	port = "8080"
//	env = "dev"
//	latency_scale = 0.5
//
//	[object_store]
//	type = "local"
//	local_dir = "./data"
type fileConfig struct {
	Port             string   `toml:"port"`
	Env              string   `toml:"env"`
	LogLevel         string   `toml:"log_level"`
	CORSAllowOrigins []string `toml:"cors_allow_origins"`
	MaxUploadBytes   int64    `toml:"max_upload_bytes"`
	LatencyScale     *float64 `toml:"latency_scale"`
	ObjectStore      struct {
		Type        string `toml:"type"`
		LocalDir    string `toml:"local_dir"`
		AWSRegion   string `toml:"aws_region"`
		S3Bucket    string `toml:"s3_bucket"`
		S3Prefix    string `toml:"s3_prefix"`
		SSEKMSKeyID string `toml:"sse_kms_key_id"`
	} `toml:"object_store"`
}

// loadFile reads a TOML config file. An empty path yields an empty config.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}
