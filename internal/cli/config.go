// Config loading for the gauge CLI. Settings come from config.yaml in
// the config directory, with flags taking precedence. A missing config
// file is not an error; commands other than init never create files.
package cli

import (
	"errors"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir   = "data_dir"
	cfgKeyPrecision = "precision"
	cfgKeyHistory   = "history"

	defaultDataDir   = ".gauge-db"
	defaultPrecision = 6
)

// ErrPrecisionInvalid is returned when config.yaml carries a negative
// output precision.
var ErrPrecisionInvalid = errors.New("precision must not be negative")

// settings holds the effective configuration after merging config.yaml
// with command-line flags.
type settings struct {
	dataDir   string
	precision int
	history   bool
}

// loadSettings reads config.yaml from the resolved config directory and
// applies flag overrides. Nothing is created on disk.
func loadSettings() (settings, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetDefault(cfgKeyPrecision, defaultPrecision)
	v.SetDefault(cfgKeyHistory, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(resolveConfigDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, systemErrorf("read config: %w", err)
		}
	}

	s := settings{
		dataDir:   v.GetString(cfgKeyDataDir),
		precision: v.GetInt(cfgKeyPrecision),
		history:   v.GetBool(cfgKeyHistory),
	}
	if s.precision < 0 {
		return settings{}, ErrPrecisionInvalid
	}

	if flags.dataDir != "" {
		s.dataDir = flags.dataDir
	}
	if flags.noHistory {
		s.history = false
	}
	return s, nil
}
