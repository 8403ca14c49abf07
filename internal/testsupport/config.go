package testsupport

import (
	"path/filepath"
	"testing"

	"scorecard/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with a unique temp log directory per
// test. Clipboard copying is disabled so tests never touch the host
// clipboard. Options override the defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.LogDir = filepath.Join(t.TempDir(), "logs")
	cfgVal.Output.Clipboard = false
	cfgVal.Output.Color = "never"

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithTeam sets the batting team abbreviation on the test config.
func WithTeam(team string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scorebook.Team = team
	}
}

// WithMinInnings sets the minimum inning column count on the test config.
func WithMinInnings(innings int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scorebook.MinInnings = innings
	}
}

// WithFormat sets the output format on the test config.
func WithFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithClipboard toggles clipboard copying on the test config.
func WithClipboard(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Clipboard = enabled
	}
}
