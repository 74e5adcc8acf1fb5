// Package plume is the Composition Root for the Plume editor engine.
//
// It connects the editor core (Domain Layer) with the rendering pipeline and
// the infrastructure adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Plume is a headless markdown editor engine. It owns the document buffer,
// its HTML rendering, and the text direction (LTR/RTL), and nothing else.
// Presentation is out of scope: the engine talks to its host exclusively
// through two injected callbacks (text-changed, direction-changed), so it
// can sit behind a web component, a TUI, or a batch CLI unchanged.
//
// Features:
//
//   - **Markdown Rendering**: an ordered, deterministic substitution
//     pipeline producing HTML (headings, emphasis, code, quotes, lists,
//     links, images).
//   - **Direction Awareness**: automatic RTL detection from Unicode script
//     ranges, with manual override and a configurable default.
//   - **Toolbar Insertions**: snippet + caret-offset helpers for editor
//     toolbars (bold, link, list item, ...).
//   - **Filesystem Adapter**: frontmatter-aware document loading, glob
//     selection, and debounced change watching for the CLI.
//
// Usage:
//
//	editor := plume.New(
//		plume.WithAutoDetect(true),
//		plume.WithOnTextChange(func(text, html string) {
//			// push html to the view
//		}),
//	)
//	editor.SetText("# Hello")
package plume
