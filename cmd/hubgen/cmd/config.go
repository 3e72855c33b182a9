package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// envConfigLocation overrides the default config file location
const envConfigLocation = "HUBGEN_CONFIG"

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	TrackDb   string `json:"trackdb" yaml:"trackdb"`     // Name of the generated trackDb file
	URLPrefix string `json:"urlprefix" yaml:"urlprefix"` // Prefix prepended to bigDataUrl entries
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// MarshalConfig produces a yaml rendering of this configuration
func (c *CLIConfig) MarshalConfig() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *CLIConfig) setHubParams(flags *flagsT) {
	if flags.hub.URLPrefix == "" {
		flags.hub.URLPrefix = c.URLPrefix
	}
}

func configFileLocation(expandEnv bool) string {
	if location := os.Getenv(envConfigLocation); location != "" {
		return location
	}
	home := "$HOME"
	if expandEnv {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	return filepath.Join(home, ".hubgen", "hubgen.yaml")
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage the hubgen CLI config.

Configuration for hubgen is the common set of flags that are needed for most commands and do not change across runs,
analogous to "git config ...". `,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
