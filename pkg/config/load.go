package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment keys recognised by FromEnv and LoadDotEnv.
const (
	EnvRequiredSignifier = "FORMKIT_REQUIRED_SIGNIFIER"
	EnvLabelSuffix       = "FORMKIT_LABEL_SUFFIX"
	EnvCapitalizeErrors  = "FORMKIT_CAPITALIZE_ERRORS"
	EnvIconPath          = "FORMKIT_ICON_PATH"
)

// Load reads a JSON or YAML configuration file and applies it on top of the
// built-in defaults.
func Load(path string) (Defaults, error) {
	overrides, err := LoadOverrides(path)
	if err != nil {
		return Defaults{}, err
	}
	return Default().Derive(overrides), nil
}

// LoadOverrides reads a JSON or YAML file into an Overrides value. Keys absent
// from the file stay nil.
func LoadOverrides(path string) (Overrides, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Overrides{}, fmt.Errorf("config: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseOverrides(data, path)
}

// ParseOverrides decodes raw JSON or YAML. JSON is attempted first.
func ParseOverrides(data []byte, source string) (Overrides, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Overrides{}, fmt.Errorf("config: file %s is empty", source)
	}

	var out Overrides
	if err := json.Unmarshal(data, &out); err == nil {
		return out, nil
	}

	out = Overrides{}
	if err := yaml.Unmarshal(data, &out); err == nil {
		return out, nil
	}

	return Overrides{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

// FromEnv collects overrides from the FORMKIT_* variables returned by lookup.
// A nil lookup reads the process environment.
func FromEnv(lookup func(string) (string, bool)) (Overrides, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var out Overrides
	if value, ok := lookup(EnvRequiredSignifier); ok {
		out.RequiredSignifier = String(value)
	}
	if value, ok := lookup(EnvLabelSuffix); ok {
		out.LabelSuffix = String(value)
	}
	if value, ok := lookup(EnvIconPath); ok && strings.TrimSpace(value) != "" {
		out.IconPath = String(strings.TrimSpace(value))
	}
	if value, ok := lookup(EnvCapitalizeErrors); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return Overrides{}, fmt.Errorf("config: %s: %w", EnvCapitalizeErrors, err)
		}
		out.CapitalizeErrors = Bool(parsed)
	}
	return out, nil
}

// LoadDotEnv reads a .env file and returns the FORMKIT_* overrides it
// declares. The process environment is not modified.
func LoadDotEnv(path string) (Overrides, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("config: read env file %s: %w", path, err)
	}
	return FromEnv(func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	})
}
