package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reImage = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	reLink  = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

	// Most-specific first, so "###### x" never matches as <h1>.
	reHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^###### (.*)$`),
		regexp.MustCompile(`(?m)^##### (.*)$`),
		regexp.MustCompile(`(?m)^#### (.*)$`),
		regexp.MustCompile(`(?m)^### (.*)$`),
		regexp.MustCompile(`(?m)^## (.*)$`),
		regexp.MustCompile(`(?m)^# (.*)$`),
	}

	reBoldStars   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnders  = regexp.MustCompile(`__(.+?)__`)
	reItalicStar  = regexp.MustCompile(`\*(.+?)\*`)
	reItalicUnder = regexp.MustCompile(`_(.+?)_`)
	reStrike      = regexp.MustCompile(`~~(.+?)~~`)
	reFence       = regexp.MustCompile("```([^`]*)```")
	reInlineCode  = regexp.MustCompile("`([^`]+)`")

	// Blockquote markers have already been escaped by the time this runs.
	reBlockquote = regexp.MustCompile(`(?m)^&gt; (.*)$`)
	reHRule      = regexp.MustCompile(`(?m)^(?:---|\*\*\*)$`)

	reParaBefore = regexp.MustCompile(`<p>(<(?:h[1-6]|ul|ol|blockquote|pre|hr)>)`)
	reParaAfter  = regexp.MustCompile(`(</(?:h[1-6]|ul|ol|blockquote|pre)>|<hr>)</p>`)
)

// Render transforms markdown source into an HTML string. It is a pure
// function of its input: same text, byte-identical output.
func Render(text string) string {
	p := &placeholders{}
	s := p.protect(text)
	s = escapeHTML(s)
	s = p.restore(s)
	s = applyBlocks(s)
	s = groupLists(s)
	s = wrapParagraphs(s)
	return s
}

// placeholders shields images and links from the escaping pass. Images are
// captured first so an image-shaped sequence never matches as a plain link.
type placeholders struct {
	images [][]string
	links  [][]string
}

func (p *placeholders) protect(s string) string {
	s = reImage.ReplaceAllStringFunc(s, func(m string) string {
		p.images = append(p.images, reImage.FindStringSubmatch(m))
		return fmt.Sprintf("\x00img:%d\x00", len(p.images)-1)
	})
	s = reLink.ReplaceAllStringFunc(s, func(m string) string {
		p.links = append(p.links, reLink.FindStringSubmatch(m))
		return fmt.Sprintf("\x00lnk:%d\x00", len(p.links)-1)
	})
	return s
}

func (p *placeholders) restore(s string) string {
	for i, g := range p.images {
		tag := `<img src="` + g[2] + `" alt="` + g[1] + `">`
		s = strings.Replace(s, fmt.Sprintf("\x00img:%d\x00", i), tag, 1)
	}
	for i, g := range p.links {
		tag := `<a href="` + g[2] + `" target="_blank">` + g[1] + `</a>`
		s = strings.Replace(s, fmt.Sprintf("\x00lnk:%d\x00", i), tag, 1)
	}
	return s
}

// escapeHTML escapes the three markup-significant characters, ampersand
// first so already-produced entities are not escaped twice.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// applyBlocks runs the line- and span-level substitutions in fixed order.
// Bold runs before italic so ** is consumed before single-* matching; fences
// run before inline code so fence interiors do not leak into it.
func applyBlocks(s string) string {
	for i, re := range reHeadings {
		level := 6 - i
		s = re.ReplaceAllString(s, fmt.Sprintf("<h%d>$1</h%d>", level, level))
	}
	s = reBoldStars.ReplaceAllString(s, "<strong>$1</strong>")
	s = reBoldUnders.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalicStar.ReplaceAllString(s, "<em>$1</em>")
	s = reItalicUnder.ReplaceAllString(s, "<em>$1</em>")
	s = reStrike.ReplaceAllString(s, "<del>$1</del>")
	s = reFence.ReplaceAllString(s, "<pre><code>$1</code></pre>")
	s = reInlineCode.ReplaceAllString(s, "<code>$1</code>")
	s = reBlockquote.ReplaceAllString(s, "<blockquote>$1</blockquote>")
	s = reHRule.ReplaceAllString(s, "<hr>")
	return s
}

// wrapParagraphs collapses double newlines into paragraph breaks, wraps the
// whole result once, then strips paragraph tags that would wrap purely
// structural block elements.
func wrapParagraphs(s string) string {
	s = strings.ReplaceAll(s, "\n\n", "</p><p>")
	s = "<p>" + s + "</p>"
	s = reParaBefore.ReplaceAllString(s, "$1")
	s = reParaAfter.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "<p></p>", "")
	return s
}
