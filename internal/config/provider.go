package config

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerPosflag implements a koanf provider for the flags of a pflag.FlagSet with lower-cased keys.
type lowerPosflag struct {
	delim   string
	flagSet *flag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider that turns flags into a nested config map, where the nesting of the keys is
// defined by delim (--log.level becomes {log: {level: ...}}).
//
// Flags that were not set on the command line only contribute their default value if they name one of the Defaults and
// the key does not exist in ko yet. Other unset flags, like --help, are not parameters and are skipped.
func lowerPosflagProvider(flagSet *flag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagSet: flagSet,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *flag.Flag) {
		if !f.Changed && !p.takesDefault(strings.ToLower(f.Name)) {
			return
		}

		var v interface{}
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagSet.GetInt(f.Name)
			v = int64(i)
		case "int64":
			v, _ = p.flagSet.GetInt64(f.Name)
		case "bool":
			v, _ = p.flagSet.GetBool(f.Name)
		case "stringSlice":
			v, _ = p.flagSet.GetStringSlice(f.Name)
		default:
			v = f.Value.String()
		}

		mp[strings.ToLower(f.Name)] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// takesDefault returns true if the default value of an unset flag should be merged for the given key.
func (p *lowerPosflag) takesDefault(key string) bool {
	if _, isParameter := Defaults[key]; !isParameter {
		return false
	}

	return p.ko != nil && !p.ko.Exists(key)
}

// ReadBytes is not supported by the flag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("pflag provider does not support this method")
}

// Watch is not supported.
func (p *lowerPosflag) Watch(_ func(event interface{}, err error)) error {
	return ierrors.New("pflag provider does not support this method")
}
