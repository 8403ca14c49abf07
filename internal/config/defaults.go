package config

const (
	defaultLogDir     = "~/.local/share/scorecard/logs"
	defaultTeam       = "MIL"
	defaultMinInnings = 9
	defaultFormat     = "table"
	defaultColor      = "auto"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogDir: defaultLogDir,
		Scorebook: Scorebook{
			Team:       defaultTeam,
			MinInnings: defaultMinInnings,
		},
		Output: Output{
			Format:    defaultFormat,
			Clipboard: true,
			Color:     defaultColor,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
