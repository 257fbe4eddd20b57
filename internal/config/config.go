// Package config loads the driver's toolchain and output settings
// from an optional TOML file and environment variables (STACKC_
// prefix), layered over defaults via Viper — the same layering
// lookbusy1344's ARM emulator config package uses, just over a much
// smaller settings surface. No CLI flags are bound here; the caller
// applies flag overrides (such as --cxx) to the returned Config.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Toolchain describes how to invoke the host C++ compiler.
type Toolchain struct {
	CXX        string   `mapstructure:"cxx"`
	Std        string   `mapstructure:"std"`
	ExtraFlags []string `mapstructure:"extra_flags"`
}

// Output describes where compiled artifacts land.
type Output struct {
	Dir     string `mapstructure:"dir"`
	KeepCPP bool   `mapstructure:"keep_cpp"`
}

// Config is the decoded configuration document.
type Config struct {
	Toolchain Toolchain `mapstructure:"toolchain"`
	Output    Output    `mapstructure:"output"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Toolchain: Toolchain{CXX: "g++", Std: "c++20"},
		Output:    Output{Dir: "."},
	}
}

// Load reads path (if non-empty) as a TOML config file, falling back
// to Default() for any field it does not set. A missing path is not
// an error — matching Viper's own "config file is optional"
// convention.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("STACKC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("toolchain.cxx", cfg.Toolchain.CXX)
	v.SetDefault("toolchain.std", cfg.Toolchain.Std)
	v.SetDefault("toolchain.extra_flags", cfg.Toolchain.ExtraFlags)
	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("output.keep_cpp", cfg.Output.KeepCPP)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "config: reading %q", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "config: decoding")
	}

	return cfg, nil
}
