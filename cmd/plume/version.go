package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/plume"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of plume",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plume version %s\n", strings.TrimSpace(plume.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
