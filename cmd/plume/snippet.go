package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/plume/pkg/markdown"
)

var (
	snippetSelected string
	snippetJSON     bool
)

var snippetCmd = &cobra.Command{
	Use:   "snippet [action]",
	Short: "Build a toolbar insertion snippet",
	Long: `Print the markdown snippet and caret offset for a toolbar action
(bold, italic, strikethrough, heading1..3, unordered-item, ordered-item,
quote, link, image, inline-code). With --selected the snippet wraps the
given text and the caret lands after it; otherwise the caret lands inside
the delimiters.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		action := markdown.Action(args[0])
		snippet, offset := markdown.BuildInsertion(action, snippetSelected)
		if snippet == "" {
			fmt.Fprintf(os.Stderr, "unknown action %q; valid actions: %v\n", args[0], markdown.Actions())
			os.Exit(1)
		}

		if snippetJSON {
			encoder := json.NewEncoder(os.Stdout)
			if err := encoder.Encode(map[string]any{
				"snippet":       snippet,
				"cursor_offset": offset,
			}); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Printf("%s\t%d\n", snippet, offset)
	},
}

func init() {
	rootCmd.AddCommand(snippetCmd)
	snippetCmd.Flags().StringVar(&snippetSelected, "selected", "", "Selected text the snippet should wrap")
	snippetCmd.Flags().BoolVar(&snippetJSON, "json", false, "Output in JSON format")
}
