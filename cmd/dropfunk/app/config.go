package app

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/r6915ee/dropfunk/pkg/constants"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file actually read, if any
	ConfigFile string

	// Engine catalog
	DataDir  string
	Strict   bool
	Selected int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// DefaultDataDir returns the engine root used when none is configured.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, constants.AppName, constants.EnginesDirName)
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by ApplyFlags)
//  2. Environment variables (DROPFUNK_ prefix, LOG_* for logging)
//  3. .env.local, then .env
//  4. Config file (explicit path, ./.dropfunk.yaml or $XDG_CONFIG_HOME/dropfunk/config.yaml)
//  5. Defaults
//
// An explicit configFile that cannot be read is an error; a missing
// default config file is not.
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"log_level", "log_format", "log_output"} {
		envKey := strings.ToUpper(key)
		if err := v.BindEnv(key, constants.EnvPrefix+"_"+envKey, envKey); err != nil {
			return nil, errors.NewConfigError("env", "binding "+envKey, err)
		}
	}

	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("strict", false)
	v.SetDefault("selected", 0)
	v.SetDefault("format", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile != "" {
		if err := readConfigFile(v, configFile); err != nil {
			return nil, err
		}
	} else if path := findConfigFile(); path != "" {
		// Default locations are optional.
		_ = readConfigFile(v, path)
	}

	return &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		NoColor:    v.GetBool("no_color"),
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),
		DataDir:    v.GetString("data_dir"),
		Strict:     v.GetBool("strict"),
		Selected:   v.GetInt("selected"),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
		LogOutput:  v.GetString("log_output"),
	}, nil
}

// ApplyFlags copies the flags the user set explicitly over the loaded
// configuration so they take precedence over files and environment.
func (c *Config) ApplyFlags(flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "verbose":
			c.Verbose, _ = flags.GetBool(f.Name)
		case "quiet":
			c.Quiet, _ = flags.GetBool(f.Name)
		case "no-color":
			c.NoColor, _ = flags.GetBool(f.Name)
		case "format":
			c.Format, _ = flags.GetString(f.Name)
		case "data-dir":
			c.DataDir, _ = flags.GetString(f.Name)
		case "strict":
			c.Strict, _ = flags.GetBool(f.Name)
		case "select":
			c.Selected, _ = flags.GetInt(f.Name)
		case "log-level":
			c.LogLevel, _ = flags.GetString(f.Name)
		}
	})
}

func readConfigFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.NewConfigError("config", "reading "+path, err)
	}
	return nil
}

// findConfigFile returns the first default config file that exists.
func findConfigFile() string {
	local := "." + constants.AppName + ".yaml"
	if ok, _ := afero.Exists(afero.NewOsFs(), local); ok {
		return local
	}
	path, err := xdg.SearchConfigFile(filepath.Join(constants.AppName, constants.ConfigFileName+".yaml"))
	if err != nil {
		return ""
	}
	return path
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set, so
// .env.local is loaded first to win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
