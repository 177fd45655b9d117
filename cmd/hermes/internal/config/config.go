// Package config loads the hermes CLI configuration from the environment.
//
// Values are read from HERMES_* environment variables. A .env file in the
// working directory (or an explicit file) is loaded first; variables already
// set in the environment take precedence over it.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/hupe1980/hermes"
	"github.com/hupe1980/hermes/blobstore"
	minioblob "github.com/hupe1980/hermes/blobstore/minio"
	s3blob "github.com/hupe1980/hermes/blobstore/s3"
	"github.com/hupe1980/hermes/codec"
	"github.com/hupe1980/hermes/resource"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Prefix is the environment variable prefix.
const Prefix = "HERMES"

// Store kinds.
const (
	StoreMemory = "memory"
	StoreLocal  = "local"
	StoreMinio  = "minio"
	StoreS3     = "s3"
)

// Config is the CLI configuration.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	Store     string `envconfig:"STORE" default:"local"`
	Root      string `envconfig:"ROOT" default:"hermes-data"`
	Bucket    string `envconfig:"BUCKET"`
	Prefix    string `envconfig:"PREFIX" default:"vectors"`
	Endpoint  string `envconfig:"ENDPOINT"`
	Region    string `envconfig:"REGION"`
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
	Secure    bool   `envconfig:"SECURE" default:"true"`

	Compression        string `envconfig:"COMPRESSION" default:"zstd"`
	Concurrency        int    `envconfig:"CONCURRENCY" default:"4"`
	IOLimitBytesPerSec int64  `envconfig:"IO_LIMIT_BYTES_PER_SEC" default:"0"`
	MemoryLimitBytes   int64  `envconfig:"MEMORY_LIMIT_BYTES" default:"0"`
}

// Load reads envFile (or ./.env when envFile is empty and the file exists)
// and then processes the HERMES_* environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if _, err := codec.ParseCompression(c.Compression); err != nil {
		return err
	}

	switch c.Store {
	case StoreMemory:
	case StoreLocal:
		if c.Root == "" {
			return errors.New("local store requires HERMES_ROOT")
		}
	case StoreMinio:
		if c.Endpoint == "" || c.Bucket == "" {
			return errors.New("minio store requires HERMES_ENDPOINT and HERMES_BUCKET")
		}
	case StoreS3:
		if c.Bucket == "" {
			return errors.New("s3 store requires HERMES_BUCKET")
		}
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0, got %d", c.Concurrency)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Logger builds a logger writing to w.
func (c *Config) Logger(w io.Writer) *hermes.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.LogFormat, "json") {
		return hermes.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return hermes.NewLogger(slog.NewTextHandler(w, opts))
}

// CompressionKind parses Compression.
func (c *Config) CompressionKind() (codec.Compression, error) {
	return codec.ParseCompression(c.Compression)
}

// Controller builds the resource controller for bulk transfers.
func (c *Config) Controller() *resource.Controller {
	return resource.NewController(resource.Config{
		MaxConcurrentTransfers: int64(c.Concurrency),
		IOLimitBytesPerSec:     c.IOLimitBytesPerSec,
		MemoryLimitBytes:       c.MemoryLimitBytes,
	})
}

// OpenStore connects to the configured blob store.
func (c *Config) OpenStore(ctx context.Context) (blobstore.Store, error) {
	switch c.Store {
	case StoreMemory:
		return blobstore.NewMemoryStore(), nil
	case StoreLocal:
		return blobstore.NewLocalStore(c.Root), nil
	case StoreMinio:
		client, err := minio.New(c.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
			Secure: c.Secure,
			Region: c.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return minioblob.NewStore(client, c.Bucket, ""), nil
	case StoreS3:
		var opts []s3blob.Option
		if c.Region != "" {
			opts = append(opts, s3blob.WithRegion(c.Region))
		}
		if c.Endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(c.Endpoint))
		}
		return s3blob.New(ctx, c.Bucket, opts...)
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}
}
