package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotter-app/jotter"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jotter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jotter version %s\n", strings.TrimSpace(jotter.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
