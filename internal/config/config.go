package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

// DefaultFile is read from the working directory when --config is not given.
const DefaultFile = "flatapi.yaml"

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Config struct {
	Spec                  string   `koanf:"spec"`
	Format                string   `koanf:"format"`
	Output                string   `koanf:"output"`
	Concurrency           int      `koanf:"concurrency"`
	Strict                bool     `koanf:"strict"`
	Verbose               bool     `koanf:"verbose"`
	IncludeTags           []string `koanf:"include-tags"`
	ExcludeTags           []string `koanf:"exclude-tags"`
	AdditionalInitialisms []string `koanf:"additional-initialisms"`
}

var defaults = map[string]any{
	"format":      FormatText,
	"concurrency": 1,
}

// BindFlags binds the extract flags to cmd.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "Config file path (default: "+DefaultFile+")")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.StringP("format", "f", "", "Output format: text, yaml, json")
	flags.StringP("output", "o", "", "Write output to file instead of stdout")
	flags.IntP("concurrency", "j", 0, "Number of paths extracted in parallel")
	flags.Bool("strict", false, "Exit with an error when any item was dropped")
	flags.BoolP("verbose", "v", false, "Log extraction details to stderr")
	flags.StringSlice("include-tags", nil, "Tags to include (exclusive)")
	flags.StringSlice("exclude-tags", nil, "Tags to exclude")
	flags.StringSlice("additional-initialisms", nil, "Additional initialisms for Go names in text output")
}

// Load merges defaults, the config file and flags, in increasing precedence.
// A positional spec argument overrides both file and flag.
func Load(cmd *cobra.Command, args []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(args) > 0 {
		cfg.Spec = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)
	flags := cmd.Flags()

	for _, name := range []string{"spec", "format", "output"} {
		if v, err := flags.GetString(name); err == nil && v != "" {
			m[name] = v
		}
	}
	for _, name := range []string{"include-tags", "exclude-tags", "additional-initialisms"} {
		if v, err := flags.GetStringSlice(name); err == nil && len(v) > 0 {
			m[name] = v
		}
	}
	if flags.Changed("concurrency") {
		if v, err := flags.GetInt("concurrency"); err == nil {
			m["concurrency"] = v
		}
	}
	for _, name := range []string{"strict", "verbose"} {
		if !flags.Changed(name) {
			continue
		}
		if v, err := flags.GetBool(name); err == nil {
			m[name] = v
		}
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}

	validFormats := map[string]bool{FormatText: true, FormatYAML: true, FormatJSON: true}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (valid: text, yaml, json)", c.Format)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency: %d (must be at least 1)", c.Concurrency)
	}

	for _, tag := range c.IncludeTags {
		for _, excluded := range c.ExcludeTags {
			if tag == excluded {
				return fmt.Errorf("tag %q is both included and excluded", tag)
			}
		}
	}

	return nil
}
