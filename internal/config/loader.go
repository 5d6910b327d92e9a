package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coderbyheart/cucumber/internal/logging"
	"github.com/coderbyheart/cucumber/primitive"
	"github.com/coderbyheart/cucumber/transform"
)

// DefaultLocale is used when the file names none.
const DefaultLocale = "en"

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Locale == "" {
		f.Locale = DefaultLocale
	}

	def := logging.DefaultConfig()
	if f.Log.Level == "" {
		f.Log.Level = def.Level
	}

	if f.Log.Format == "" {
		f.Log.Format = def.Format
	}

	for i := range f.Transforms {
		t := &f.Transforms[i]
		if len(t.Regexps) == 0 {
			t.Regexps = transform.RegexpsFor(primitive.FromTypeName(t.Kind))
		}
	}
}

// Logging returns the logging configuration of the file.
func (f *File) Logging() logging.Config {
	return logging.Config{
		Level:  f.Log.Level,
		Format: f.Log.Format,
	}
}
