/*
File   : ash/internal/config/config.go
Package: config

Package config is the CLI driver's small configuration surface: a few
booleans and strings controlling REPL cosmetics and debug tracing. It
is deliberately separate from the language core — nothing in lexer,
parser, environment, value, or interpreter imports this package — so
the "no module system" / "no environment variables" constraints on
the language itself are untouched by the driver having a realistic
config layer of its own.

Defaults apply first, then an optional .ashrc.yaml in the current
directory overrides them, then command-line flags win over both —
grounded on perbu-vcltest's direct use of gopkg.in/yaml.v3 for this
exact shape of small CLI config struct (yaml.v3 is also already an
indirect dependency of the teacher repo's own go.mod).
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const defaultRCFile = ".ashrc.yaml"

// Config holds the driver's tunables.
type Config struct {
	NoColor bool   `yaml:"no_color"`
	Debug   bool   `yaml:"debug"`
	Prompt  string `yaml:"prompt"`
}

// Default returns the built-in configuration used when no .ashrc.yaml
// is present and no flags override it.
func Default() Config {
	return Config{NoColor: false, Debug: false, Prompt: "ash> "}
}

// Load returns Default(), overridden by defaultRCFile in dir if it
// exists. A missing file is not an error; a malformed one is.
func Load(dir string) (Config, error) {
	cfg := Default()
	path := defaultRCFile
	if dir != "" {
		path = dir + string(os.PathSeparator) + defaultRCFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
