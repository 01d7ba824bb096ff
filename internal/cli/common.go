package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/mdconv/internal/config"
	"github.com/vvka-141/mdconv/internal/fetch"
	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/internal/logging"
	"github.com/vvka-141/mdconv/internal/retry"
	"github.com/vvka-141/mdconv/internal/xmlschema"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// loadProjectConfig loads .env, mdconv.yaml and environment overrides.
// A missing mdconv.yaml yields an empty configuration.
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = &config.ProjectConfig{}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRegistry builds a registry holding every configured format.
func loadRegistry(dir string) (*config.ProjectConfig, *format.Registry, error) {
	cfg, err := loadProjectConfig(dir)
	if err != nil {
		return nil, nil, err
	}

	reg := format.NewRegistry()
	if err := cfg.Populate(reg); err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}

// newSchemaFetcher returns an HTTP fetcher wrapped in the configured retry policy.
func newSchemaFetcher(cfg *config.ProjectConfig, logger mdconv.Logger) (mdconv.Fetcher, error) {
	fetchCfg, err := cfg.Fetch.FetcherConfig()
	if err != nil {
		return nil, err
	}

	strategy := retry.NewExponentialBackoff(cfg.Fetch.RetryCount())
	executor := retry.NewExecutor(retry.NewHTTPErrorClassifier(), strategy).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Warn("schema download failed (retry %d in %v): %v", attempt+1, delay, err)
		})
	return retry.NewFetcher(fetch.New(fetchCfg), executor), nil
}

func newLogger(verbose bool) mdconv.Logger {
	return logging.NewConsoleLogger(verbose)
}

// resolveFormat returns the newest registered descriptor matching name and
// version. An empty version matches any.
func resolveFormat(reg *format.Registry, name, version string) (*format.Descriptor, error) {
	d, err := reg.Latest(name, version)
	if err != nil {
		if version == "" {
			return nil, fmt.Errorf("format %q is not configured: %w", name, err)
		}
		return nil, fmt.Errorf("format %q version %q is not configured: %w", name, version, err)
	}
	return d, nil
}

// adhocFormat describes input that is not tied to a configured format.
func adhocFormat(path string, t format.Type) *format.Descriptor {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		name = "input"
	}
	return format.MustNew(name, "0", format.WithType(t))
}

// parseReplacements converts "old=new" flag values.
func parseReplacements(values []string) ([]xmlschema.Replacement, error) {
	out := make([]xmlschema.Replacement, 0, len(values))
	for _, v := range values {
		old, replacement, ok := strings.Cut(v, "=")
		if !ok || old == "" {
			return nil, fmt.Errorf("invalid argument %q for --replace: expected old=new", v)
		}
		out = append(out, xmlschema.Replacement{Old: []byte(old), New: []byte(replacement)})
	}
	return out, nil
}

func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(path, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// contextOrBackground guards commands invoked directly in tests.
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
