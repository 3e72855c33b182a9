// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/hubgen/pkg/hub"
	"github.com/oneconcern/hubgen/pkg/model"
	"github.com/spf13/cobra"
)

// listCmd prints the resolved tracks as a flat table.
var listCmd = &cobra.Command{
	Use:   "list <directory>",
	Short: "List the resolved tracks",
	Long: `List every track resolved from a directory, in trackDb identifier order.

Sizes are read from the data files themselves; a file that cannot be examined
shows as "-".
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		source := args[0]
		DieIfNotAccessible(source)
		DieIfNotDirectory(source)

		h := newHub(source, hub.Dumps(false))
		err := h.Build(ctx)
		if err != nil {
			wrapFatalln("build hub", err)
			return
		}

		table := uitable.New()
		table.MaxColWidth = 80
		table.AddRow("TRACK", "TYPE", "COLOR", "SIZE", "PATH")
		for _, track := range h.Tracks() {
			trackType, _ := track.Attrs.Get(model.AttrType)
			trackColor, _ := track.Attrs.Get(model.AttrColor)
			size := "-"
			if info, serr := os.Stat(filepath.Join(h.Source(), track.Path)); serr == nil {
				size = units.HumanSize(float64(info.Size()))
			}
			table.AddRow(track.ID, trackType, trackColor, size, color.HiBlackString(track.Path))
		}
		fmt.Println(table)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addStartIndexFlag(listCmd)
}
