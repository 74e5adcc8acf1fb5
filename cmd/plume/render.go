package main

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/plume/pkg/adapters/fs"
	"github.com/aretw0/plume/pkg/core"
	"github.com/aretw0/plume/pkg/markdown"
)

var (
	renderOut        string
	renderGlob       string
	renderStandalone bool
)

var renderCmd = &cobra.Command{
	Use:   "render [path]",
	Short: "Render markdown to HTML",
	Long: `Render a markdown file (or stdin with "-") to HTML.
When path is a directory, every markdown document under it is rendered
(--glob narrows the selection) and --out is required. With --standalone
the output is a full HTML page carrying the detected text direction and
the frontmatter title.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := "-"
		if len(args) == 1 {
			target = args[0]
		}

		if target == "-" {
			doc, err := fs.ParseDocument(os.Stdin)
			if err != nil {
				fatal("Error reading stdin", err)
			}
			fmt.Print(renderDocument(*doc, renderStandalone))
			return
		}

		info, err := os.Stat(target)
		if err != nil {
			fatal("Error reading path", err)
		}

		if !info.IsDir() {
			renderSingleFile(target)
			return
		}
		renderTree(target)
	},
}

func renderSingleFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		fatal("Error opening file", err)
	}
	doc, err := fs.ParseDocument(f)
	f.Close()
	if err != nil {
		fatal("Error parsing document", err)
	}
	doc.ID = strings.TrimSuffix(filepath.Base(path), ".md")

	out := renderDocument(*doc, renderStandalone)
	if renderOut == "" {
		fmt.Print(out)
		return
	}
	if err := writeRendered(renderOut, doc.ID, out); err != nil {
		fatal("Error writing output", err)
	}
}

func renderTree(root string) {
	if renderOut == "" {
		fmt.Fprintln(os.Stderr, "rendering a directory requires --out")
		os.Exit(1)
	}

	repo, err := fs.NewRepository(fs.Config{Root: root, Logger: slog.Default()})
	if err != nil {
		fatal("Error opening document root", err)
	}

	docs, err := repo.Glob(context.Background(), renderGlob)
	if err != nil {
		fatal("Error listing documents", err)
	}

	for _, doc := range docs {
		if err := writeRendered(renderOut, doc.ID, renderDocument(doc, renderStandalone)); err != nil {
			fatal("Error writing output", err)
		}
	}
	slog.Info("rendered documents", "count", len(docs), "out", renderOut)
}

func writeRendered(outDir, id, content string) error {
	path := filepath.Join(outDir, filepath.FromSlash(id)+".html")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// renderDocument converts a document to HTML; with standalone set, it wraps
// the body in a page whose dir attribute comes from the direction detector.
func renderDocument(doc core.Document, standalone bool) string {
	body := markdown.Render(doc.Content)
	if !standalone {
		return body
	}
	dir := core.DetectDirection(doc.Content)
	return fmt.Sprintf(pageTemplate, dir, html.EscapeString(doc.Title()), body)
}

const pageTemplate = `<!DOCTYPE html>
<html dir="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Directory for rendered .html files")
	renderCmd.Flags().StringVar(&renderGlob, "glob", "", "Glob pattern selecting documents (e.g. \"posts/**/*.md\")")
	renderCmd.Flags().BoolVar(&renderStandalone, "standalone", false, "Wrap output in a full HTML page with dir attribute")
}
