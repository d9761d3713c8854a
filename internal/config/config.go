// Package config holds runtime configuration: defaults, the optional YAML
// defaults file, and validation. CLI flag parsing lives in cmd/ccpath; flags
// override file values, which override defaults.
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/backmassage/ccpath/internal/convention"
)

// Mode selects which path segments are converted.
type Mode string

const (
	ModeBasename Mode = "basename" // Convert only the final segment (default).
	ModeFull     Mode = "full"     // Convert every normal segment.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a YAML file by [LoadFile], and finally mutated by
// the CLI layer before being passed (by pointer) to packages that need it.
type Config struct {
	// Conversion.
	FromToken string `yaml:"from"` // Source convention token; empty means infer.
	IntoToken string `yaml:"into"` // Target convention token (required).
	Mode      Mode   `yaml:"mode"` // Default: "basename".
	Prefix    string `yaml:"prefix"`

	// Behavior.
	Recursive bool `yaml:"recursive"`
	DryRun    bool `yaml:"dry_run"`
	NoClobber bool `yaml:"no_clobber"`
	Watch     bool `yaml:"watch"`

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"` // Default: "auto".
	LogFile   string    `yaml:"log_file"`

	// Inputs (positional args; never read from the YAML file).
	Paths []string `yaml:"-"`
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before file and flag overrides.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeBasename,
		ColorMode: ColorAuto,
	}
}

// Validate checks field-level rules: the target convention token must parse,
// the source token (when given) must parse, mode and color must be members
// of their closed sets, and at least one input path is required.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.IntoToken,
			validation.Required.Error("a target convention is required"),
			validation.By(conventionToken)),
		validation.Field(&c.FromToken, validation.By(conventionToken)),
		validation.Field(&c.Mode,
			validation.Required.Error("a conversion mode is required"),
			validation.In(ModeBasename, ModeFull)),
		validation.Field(&c.ColorMode,
			validation.Required.Error("a color mode is required"),
			validation.In(ColorAuto, ColorAlways, ColorNever)),
		validation.Field(&c.Paths,
			validation.Required.Error("at least one path is required")),
	)
}

// Request returns the parsed conversion request. Call only after Validate
// has accepted the tokens.
func (c *Config) Request() (from, to convention.Convention, err error) {
	if c.FromToken != "" {
		if from, err = convention.Parse(c.FromToken); err != nil {
			return "", "", err
		}
	}
	to, err = convention.Parse(c.IntoToken)
	return from, to, err
}

// conventionToken is an ozzo rule adapter around [convention.Parse].
// Empty values are accepted; Required handles presence separately.
func conventionToken(value interface{}) error {
	token, _ := value.(string)
	if token == "" {
		return nil
	}
	_, err := convention.Parse(token)
	return err
}
