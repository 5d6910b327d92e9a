package config

// File is the top level of a registry configuration file.
type File struct {
	Locale             string         `yaml:"locale,omitempty"`
	TypeCheckedRegexps bool           `yaml:"type_checked_regexps,omitempty"`
	BigNumbers         bool           `yaml:"big_numbers,omitempty"`
	Log                LogConfig      `yaml:"log,omitempty"`
	Transforms         []TransformDef `yaml:"transforms,omitempty"`
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// TransformDef declares an additional transform.
type TransformDef struct {
	TypeName    string   `yaml:"type_name"`
	Kind        string   `yaml:"kind"`
	Regexps     []string `yaml:"regexps,omitempty"`
	Description string   `yaml:"description,omitempty"`
}
