package config

import (
	"strings"
)

// Sources names the layers Resolve reads. Empty paths are skipped.
type Sources struct {
	File   string
	DotEnv string
	Lookup func(string) (string, bool)
}

// Resolve layers the built-in defaults, an optional config file, an optional
// .env file and finally the FORMKIT_* variables visible through Lookup.
// Later layers win.
func Resolve(src Sources) (Defaults, error) {
	defaults := Default()
	if strings.TrimSpace(src.File) != "" {
		loaded, err := Load(src.File)
		if err != nil {
			return Defaults{}, err
		}
		defaults = loaded
	}

	var overrides Overrides
	if strings.TrimSpace(src.DotEnv) != "" {
		fromFile, err := LoadDotEnv(src.DotEnv)
		if err != nil {
			return Defaults{}, err
		}
		overrides = overrides.Merge(fromFile)
	}

	fromEnv, err := FromEnv(src.Lookup)
	if err != nil {
		return Defaults{}, err
	}
	overrides = overrides.Merge(fromEnv)

	return defaults.Derive(overrides), nil
}
