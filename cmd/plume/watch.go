package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/plume/pkg/adapters/fs"
	"github.com/aretw0/plume/pkg/core"
)

var (
	watchOut        string
	watchGlob       string
	watchStandalone bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-render documents on filesystem changes",
	Long: `Watch a directory of markdown documents and keep rendered HTML in
--out up to date. An initial full render runs before watching starts.
Stops on SIGINT/SIGTERM.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		if watchOut == "" {
			slog.Error("watch requires --out")
			os.Exit(1)
		}

		repo, err := fs.NewRepository(fs.Config{Root: root, Logger: slog.Default()})
		if err != nil {
			fatal("Error opening document root", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Full pass first, so the output directory reflects the current tree.
		docs, err := repo.Glob(ctx, watchGlob)
		if err != nil {
			fatal("Error listing documents", err)
		}
		for _, doc := range docs {
			if err := writeRendered(watchOut, doc.ID, renderDocument(doc, watchStandalone)); err != nil {
				fatal("Error writing output", err)
			}
		}
		slog.Info("initial render complete", "count", len(docs), "out", watchOut)

		events, err := repo.Watch(ctx, watchGlob)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		for e := range events {
			switch e.Type {
			case core.EventDelete:
				path := filepath.Join(watchOut, filepath.FromSlash(e.ID)+".html")
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					slog.Error("failed to remove output", "id", e.ID, "error", err)
					continue
				}
				slog.Info("removed", "id", e.ID)
			default:
				doc, err := repo.Get(ctx, e.ID)
				if err != nil {
					slog.Error("failed to load document", "id", e.ID, "error", err)
					continue
				}
				if err := writeRendered(watchOut, doc.ID, renderDocument(doc, watchStandalone)); err != nil {
					slog.Error("failed to write output", "id", e.ID, "error", err)
					continue
				}
				slog.Info("rendered", "id", e.ID)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Directory for rendered .html files (required)")
	watchCmd.Flags().StringVar(&watchGlob, "glob", "", "Glob pattern selecting documents")
	watchCmd.Flags().BoolVar(&watchStandalone, "standalone", false, "Wrap output in a full HTML page with dir attribute")
}
