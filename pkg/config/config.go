// Package config reads run defaults from the environment. Command line
// flags override every value.
package config

import (
	"github.com/xyproto/env/v2"

	"hackasm/pkg/utils"
)

const (
	EnvLegacyTables = "HACKASM_LEGACY_TABLES"
	EnvStrict       = "HACKASM_STRICT"
	EnvOutExt       = "HACKASM_OUT_EXT"
	EnvVerbosity    = "HACKASM_VERBOSITY"
)

type Config struct {
	LegacyTables bool
	Strict       bool
	OutExt       string
	Verbosity    int
}

func Default() Config {
	return Config{OutExt: utils.BinaryExt}
}

func FromEnv() Config {
	c := Default()
	c.LegacyTables = env.Bool(EnvLegacyTables)
	c.Strict = env.Bool(EnvStrict)
	c.OutExt = env.Str(EnvOutExt, c.OutExt)
	c.Verbosity = env.Int(EnvVerbosity, c.Verbosity)
	if c.Verbosity < 0 {
		c.Verbosity = 0
	}
	return c
}
