// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/hubgen/pkg/rules"
	"github.com/spf13/cobra"
)

// rulesCmd prints the built-in rule tables.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the built-in naming rules",
	Long: `Print the built-in color and tuning rule tables, in declaration order.

Declaration order is the precedence order: track and container names are matched
against each table top to bottom and the first match wins.
`,
	Run: func(cmd *cobra.Command, args []string) {
		bold := color.New(color.Bold)

		fmt.Println(bold.Sprint("Track colors"))
		colors := uitable.New()
		colors.MaxColWidth = 60
		colors.AddRow("PATTERN", "COLOR")
		for _, rule := range rules.Colors {
			colors.AddRow(rule.Pattern, rule.Color)
		}
		fmt.Println(colors)

		fmt.Println()
		fmt.Println(bold.Sprint("bigWig tuning"))
		fmt.Println(tuningTable(rules.BigWigTuning))

		fmt.Println()
		fmt.Println(bold.Sprint("bigBed tuning"))
		fmt.Println(tuningTable(rules.BigBedTuning))
	},
}

func tuningTable(t rules.TuningTable) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 100
	table.AddRow("PATTERN", "OVERRIDES")
	for _, rule := range t {
		overrides := make([]string, 0, len(rule.Overrides))
		for _, attr := range rule.Overrides {
			overrides = append(overrides, attr.Key+"="+attr.Value)
		}
		table.AddRow(rule.Pattern, strings.Join(overrides, " "))
	}
	return table
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
