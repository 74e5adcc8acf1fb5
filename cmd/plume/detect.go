package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/plume/pkg/core"
)

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Detect text direction",
	Long:  `Print "rtl" if the file (or stdin with "-") contains right-to-left script characters, "ltr" otherwise.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var data []byte
		var err error
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			fatal("Error reading input", err)
		}

		fmt.Println(core.DetectDirection(string(data)))
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
