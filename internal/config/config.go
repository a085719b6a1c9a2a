// Package config holds the parameters of rangectl. They are merged from defaults, a JSON, YAML or TOML file, environment
// variables and command line flags, in that order of increasing priority.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")

	// ErrUnknownRange is returned if a named range is referenced that is not defined in the configuration.
	ErrUnknownRange = ierrors.New("unknown named range")
)

const (
	// ParameterLogLevel is the key of the log level.
	ParameterLogLevel = "log.level"

	// ParameterIterateLimit is the key of the maximum number of values that are printed for an unbounded iteration.
	ParameterIterateLimit = "iterate.limit"

	// ParameterEncodeFormat is the key of the text encoding of marshaled expressions (hex or base58).
	ParameterEncodeFormat = "encode.format"

	// ParameterRanges is the key of the named ranges.
	ParameterRanges = "ranges"

	// RangeReferencePrefix marks an argument as the name of a configured range.
	RangeReferencePrefix = "@"
)

// Defaults contains the values of all parameters that are not set by any other source.
var Defaults = map[string]interface{}{
	ParameterLogLevel:     "warning",
	ParameterIterateLimit: 100,
	ParameterEncodeFormat: "hex",
}

// Configuration holds config parameters from several sources (defaults, file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new Configuration that is initialized with the Defaults.
func New() *Configuration {
	c := &Configuration{
		config: koanf.New("."),
	}

	if err := c.config.Load(confmap.Provider(Defaults, "."), nil); err != nil {
		panic(ierrors.Wrap(err, "failed to load default parameters"))
	}

	return c
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return ierrors.Wrapf(err, "failed to load config file %s", filePath)
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	case ".toml":
		parser = &TOMLLowerParser{}
	default:
		return ierrors.Wrapf(ErrUnknownConfigFormat, "file extension of %s", filePath)
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "failed to parse config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars, e.g. RANGECTL_LOG_LEVEL sets log.level for the prefix RANGECTL.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// String returns the string value of a parameter.
func (c *Configuration) String(key string) string {
	return c.config.String(key)
}

// Int returns the int value of a parameter.
func (c *Configuration) Int(key string) int {
	return c.config.Int(key)
}

// Ranges returns the named ranges in their textual notation.
func (c *Configuration) Ranges() map[string]string {
	return c.config.StringMap(ParameterRanges)
}

// ResolveRange returns the textual notation of the range that an argument refers to. Arguments without the
// RangeReferencePrefix are returned unchanged.
func (c *Configuration) ResolveRange(argument string) (string, error) {
	name, isReference := strings.CutPrefix(argument, RangeReferencePrefix)
	if !isReference {
		return argument, nil
	}

	key := ParameterRanges + "." + strings.ToLower(name)
	if !c.config.Exists(key) {
		return "", ierrors.Wrapf(ErrUnknownRange, "%q", name)
	}

	return c.config.String(key), nil
}

// Dump returns the merged parameters as indented JSON.
func (c *Configuration) Dump() (string, error) {
	settings, err := json.MarshalIndent(c.config.Raw(), "", "  ")
	if err != nil {
		return "", ierrors.Wrap(err, "failed to marshal parameters")
	}

	return string(settings), nil
}
