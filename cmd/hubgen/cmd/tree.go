// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/hubgen/pkg/hub"
	"github.com/spf13/cobra"
)

// treeCmd resolves a directory tree and prints the result without publishing anything.
var treeCmd = &cobra.Command{
	Use:   "tree <directory>",
	Short: "Print the resolved container tree",
	Long: `Print the resolved container tree for a directory, as a yaml document.

The tree is built exactly as for generate, including templates, tuning rules and
yaml overrides, but nothing is written to the input or the destination directory.
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
		buf, err := h.TreeYAML()
		if err != nil {
			wrapFatalln("serialize tree to yaml", err)
			return
		}
		logStdOut("%s", string(buf))
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addStartIndexFlag(treeCmd)
}
