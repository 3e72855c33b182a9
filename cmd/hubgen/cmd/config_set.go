package cmd

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configGen = &cobra.Command{
	Aliases: []string{"create"},
	Use:     "set",
	Short:   "Create a local config file",
	Long: `Creates a local config file holding the flags that do not change across runs, like the trackDb file name or the hub base URL.

	By default, this configuration file will be placed in ` + configFileLocation(false) + `.

	Use the ` + envConfigLocation + ` environment variable to change this default target.
	`,
	Example: `# Record the base URL under which the hub data files will be served
% hubgen config set --url-prefix http://hubs.example.org/mylab/hg38/
config file created in /home/ritesh/.hubgen/hubgen.yaml

# Use an alternate trackDb file name for all runs
% hubgen config set --trackdb trackDb.chip.txt
config file created in /home/ritesh/.hubgen/hubgen.yaml

# Generate config in some non-default location
% ` + envConfigLocation + `=~/.config/.hubgen/config.yaml hubgen config set --url-prefix http://hubs.example.org/
config file created in /home/ritesh/.config/.hubgen/config.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		localConfig := CLIConfig{
			TrackDb:   hubgenFlags.hub.TrackDb,
			URLPrefix: hubgenFlags.hub.URLPrefix,
		}

		file := configFileLocation(true)

		if ext := filepath.Ext(file); ext != ".yaml" {
			infoLogger.Printf("warning: the generated config file will contain a yaml document, but the file extension is %q", ext)
		}
		o, err := localConfig.MarshalConfig()
		if err != nil {
			wrapFatalln("could not serialize config to yaml", err)
			return
		}

		err = os.Mkdir(filepath.Dir(file), 0777)
		if err != nil && !os.IsExist(err) {
			wrapFatalln("could not create directory to hold config "+filepath.Dir(file), err)
			return
		}

		err = ioutil.WriteFile(file, o, 0600)
		if err != nil {
			wrapFatalln("error writing config file "+file, err)
			return
		}

		log.Printf("config file created in %s", file)
	},
}

func init() {
	addTrackDbFlag(configGen)
	addURLPrefixFlag(configGen)
	configCmd.AddCommand(configGen)
}
