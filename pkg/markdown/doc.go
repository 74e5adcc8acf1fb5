// Package markdown converts a small markdown subset into HTML.
//
// The renderer is an ordered pipeline of string substitutions over an
// immutable input: structural constructs (images, links) are protected by
// sentinel tokens before HTML escaping, then restored, then formatting
// rules run on the escaped text. The only stateful stage is the list
// grouper, a line scanner that tracks which list kind is currently open.
//
// The renderer is deliberately lenient: malformed or unterminated
// constructs fall through as literal text. It is not a CommonMark parser;
// nested blockquotes, nested lists, tables, footnotes, and raw inline HTML
// are out of scope.
package markdown
