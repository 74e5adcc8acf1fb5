package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/plume/pkg/core"
)

// Config holds the filesystem adapter configuration.
type Config struct {
	// Root is the directory containing the markdown documents.
	Root string
	// Logger receives debug/error events. Defaults to slog.Default().
	Logger *slog.Logger
	// ErrorHandler, when set, receives per-document errors during batch
	// operations instead of aborting them.
	ErrorHandler func(error)
}

// Repository reads markdown documents from a directory tree.
// Document IDs are slash-separated paths relative to the root, without the
// .md extension.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// NewRepository creates a repository rooted at config.Root.
// The root must already exist.
func NewRepository(config Config) (*Repository, error) {
	info, err := os.Stat(config.Root)
	if err != nil {
		return nil, fmt.Errorf("document root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("document root %s is not a directory", config.Root)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{Path: config.Root, config: config}, nil
}

// Get loads and parses a single document by ID.
func (r *Repository) Get(ctx context.Context, id string) (core.Document, error) {
	if id == "" {
		return core.Document{}, errors.New("document ID cannot be empty")
	}
	f, err := os.Open(filepath.Join(r.Path, filepath.FromSlash(id)+".md"))
	if err != nil {
		return core.Document{}, err
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return core.Document{}, fmt.Errorf("parse %s: %w", id, err)
	}
	doc.ID = id
	return *doc, nil
}

// List returns every markdown document under the root, sorted by ID.
func (r *Repository) List(ctx context.Context) ([]core.Document, error) {
	return r.Glob(ctx, "")
}

// Glob returns the documents whose relative path matches pattern
// (doublestar syntax, e.g. "posts/**/*.md"). An empty pattern matches all.
func (r *Repository) Glob(ctx context.Context, pattern string) ([]core.Document, error) {
	var docs []core.Document
	err := filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		rel, rerr := filepath.Rel(r.Path, path)
		if rerr != nil {
			return rerr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if r.shouldIgnore(rel, pattern) {
			return nil
		}
		doc, gerr := r.Get(ctx, strings.TrimSuffix(rel, ".md"))
		if gerr != nil {
			if r.config.ErrorHandler != nil {
				r.config.ErrorHandler(gerr)
				return nil
			}
			return gerr
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Save writes a document (frontmatter + content) under the root, creating
// parent directories as needed.
func (r *Repository) Save(ctx context.Context, doc core.Document) error {
	if doc.ID == "" {
		return errors.New("document ID cannot be empty")
	}
	data, err := SerializeDocument(doc)
	if err != nil {
		return err
	}
	path := filepath.Join(r.Path, filepath.FromSlash(doc.ID)+".md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// resolveID maps an absolute file path back to a document ID.
func (r *Repository) resolveID(path string) (string, error) {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if filepath.Ext(rel) != ".md" {
		return "", fmt.Errorf("not a markdown file: %s", rel)
	}
	return strings.TrimSuffix(rel, ".md"), nil
}

// shouldIgnore filters non-markdown files, hidden path segments, and glob
// misses. rel is slash-separated and relative to the root.
func (r *Repository) shouldIgnore(rel, pattern string) bool {
	if filepath.Ext(rel) != ".md" {
		return true
	}
	for _, part := range strings.Split(rel, "/") {
		if isHidden(part) {
			return true
		}
	}
	if pattern == "" {
		return false
	}
	ok, err := doublestar.Match(pattern, rel)
	if err != nil {
		r.config.Logger.Debug("invalid glob pattern", "pattern", pattern, "error", err)
		return false
	}
	return !ok
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
