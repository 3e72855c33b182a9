// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"log"

	"github.com/oneconcern/hubgen/pkg/hub"
	"github.com/spf13/cobra"
)

// generateCmd is the command to generate a track hub from a directory tree.
var generateCmd = &cobra.Command{
	Use:   "generate <directory>",
	Short: "Generate a track hub",
	Long: `Generate a track hub from a directory tree of genome track files.

The directory is scanned recursively: subdirectories named *.multiwig, *.composite
or *.super become track containers of the corresponding kind, bigWig (.bw, .bigwig)
and bigBed (.bb, .bigbed) files become tracks. The trackDb configuration file and a
farm of symbolic links pointing back at the data files are written to the
destination directory.
`,
	Example: `% hubgen generate ./hg38 --destination /var/hubs/mylab/hg38
% hubgen generate ./hg38 --destination /var/hubs/mylab/hg38 --trackdb trackDb.chip.txt --start-index 100
% hubgen generate ./hg38 --destination /var/hubs/mylab/hg38 --url-prefix http://hubs.example.org/mylab/hg38/`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		source := args[0]
		DieIfNotAccessible(source)
		DieIfNotDirectory(source)

		trackDb := hubgenFlags.hub.TrackDb
		switch {
		case cmd.Flags().Changed(trackDbFilenameFlag):
			if trackDb == "" {
				wrapFatalln("please provide a file name for --"+trackDbFilenameFlag, nil)
				return
			}
		case trackDb == "":
			trackDb = config.TrackDb
		}

		h := newHub(source, hub.TrackDb(trackDb))
		err := h.Build(ctx)
		if err != nil {
			wrapFatalln("build hub", err)
			return
		}
		err = h.Publish(ctx)
		if err != nil {
			wrapFatalln("publish hub", err)
			return
		}
		log.Printf("Generated hub in %s (%d tracks, trackDb file: %s)",
			hubgenFlags.hub.Destination, len(h.Tracks()), trackDb)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	requireFlags(generateCmd, addDestinationFlag(generateCmd))
	addTrackDbFlag(generateCmd)
	addStartIndexFlag(generateCmd)
	addPostContentFlag(generateCmd)
	addURLPrefixFlag(generateCmd)
	addSkipDumpsFlag(generateCmd)
}
