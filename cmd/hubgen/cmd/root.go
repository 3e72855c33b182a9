// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/oneconcern/hubgen/pkg/hub"
	"github.com/spf13/viper"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hubgen",
	Short: "Hubgen generates UCSC track hubs from directory trees",
	Long: `Hubgen turns a directory tree of genome track files into a UCSC track hub.

Directories named *.multiwig, *.composite or *.super map to track containers
of the corresponding kind, bigWig and bigBed files map to tracks. The
generated trackDb configuration and a link farm pointing back at the data
files land in the output directory, ready for upload to a hub host.

`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if hubgenFlags.root.cpuProf {
			f, err := os.Create("cpu.prof")
			if err != nil {
				log.Fatal(err)
			}
			_ = pprof.StartCPUProfile(f)
		}
	},
	// upstream api note:  *PostRun functions aren't called in case of a panic() in Run
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if hubgenFlags.root.cpuProf {
			pprof.StopCPUProfile()
		}
	},
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addLogLevel(rootCmd)
	addCPUProfFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("trackdb", hub.DefaultTrackDb)
	if os.Getenv("HUBGEN_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("HUBGEN_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.hubgen")
		viper.AddConfigPath("/etc/hubgen")
		viper.SetConfigName("hubgen")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setHubParams(&hubgenFlags)
}
