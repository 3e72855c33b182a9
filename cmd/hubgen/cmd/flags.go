// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/oneconcern/hubgen/pkg/dlogger"
	"github.com/oneconcern/hubgen/pkg/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flagsT struct {
	hub struct {
		Destination string
		TrackDb     string
		StartIndex  int
		PostContent string
		URLPrefix   string
		SkipDumps   bool
	}
	root struct {
		logLevel string
		cpuProf  bool
	}
	doc struct {
		docTarget string
	}
}

var hubgenFlags = flagsT{}

func addDestinationFlag(cmd *cobra.Command) string {
	destination := "destination"
	if cmd != nil {
		cmd.Flags().StringVar(&hubgenFlags.hub.Destination, destination, "",
			"The directory receiving the trackDb file and the track links")
	}
	return destination
}

const trackDbFilenameFlag = "trackdb"

func addTrackDbFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&hubgenFlags.hub.TrackDb, trackDbFilenameFlag, "",
		fmt.Sprintf("The name of the generated trackDb file (default %q)", hub.DefaultTrackDb))
	return trackDbFilenameFlag
}

func addStartIndexFlag(cmd *cobra.Command) string {
	startIndex := "start-index"
	cmd.Flags().IntVar(&hubgenFlags.hub.StartIndex, startIndex, hub.DefaultStartIndex,
		"The index assigned to the first generated track identifier")
	return startIndex
}

func addPostContentFlag(cmd *cobra.Command) string {
	postContent := "post-content"
	cmd.Flags().StringVar(&hubgenFlags.hub.PostContent, postContent, "",
		"Extra content appended verbatim after the generated track blocks")
	return postContent
}

func addURLPrefixFlag(cmd *cobra.Command) string {
	urlPrefix := "url-prefix"
	cmd.Flags().StringVar(&hubgenFlags.hub.URLPrefix, urlPrefix, "",
		"A prefix prepended to every bigDataUrl file name (e.g. a hub base URL)")
	return urlPrefix
}

func addSkipDumpsFlag(cmd *cobra.Command) string {
	c := "skip-dumps"
	cmd.Flags().BoolVar(&hubgenFlags.hub.SkipDumps, c, false,
		"Skip writing the per-container and whole-tree YAML dump files")
	return c
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&hubgenFlags.root.logLevel, loglevel, "info",
		"The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return loglevel
}

func addCPUProfFlag(cmd *cobra.Command) string {
	c := "cpuprof"
	cmd.Flags().BoolVar(&hubgenFlags.root.cpuProf, c, false, "Toggle runtime profiling")
	return c
}

func addTargetFlag(cmd *cobra.Command) string {
	c := "target-dir"
	cmd.Flags().StringVar(&hubgenFlags.doc.docTarget, c, ".", "The target directory where to generate the markdown documentation")
	return c
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}

func getLogger() *zap.Logger {
	logger, err := dlogger.GetLogger(hubgenFlags.root.logLevel)
	if err != nil {
		wrapFatalln("failed to set log level "+hubgenFlags.root.logLevel, err)
		return zap.NewNop()
	}
	return logger
}

// newHub assembles a hub from the current flag settings
func newHub(source string, extra ...hub.Option) *hub.Hub {
	opts := []hub.Option{
		hub.Destination(hubgenFlags.hub.Destination),
		hub.StartIndex(hubgenFlags.hub.StartIndex),
		hub.PostContent(hubgenFlags.hub.PostContent),
		hub.URLPrefix(hubgenFlags.hub.URLPrefix),
		hub.Dumps(!hubgenFlags.hub.SkipDumps),
		hub.Logger(getLogger()),
	}
	opts = append(opts, extra...)
	return hub.New(source, opts...)
}
