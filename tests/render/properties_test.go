package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/plume"
)

// Plain text renders to a single escaped paragraph, nothing more.
func TestPlainTextParagraph(t *testing.T) {
	samples := []string{
		"just words",
		"multiple words with   spaces",
		"unicode: café, 你好",
	}
	for _, s := range samples {
		assert.Equal(t, "<p>"+s+"</p>", plume.Render(s))
	}
}

func TestDetectionProperties(t *testing.T) {
	rtlSamples := []string{
		"שלום",
		"مرحبا",
		"mostly latin with one ש rune",
		"ﭐ",
		"ﹰ",
	}
	for _, s := range rtlSamples {
		assert.Equal(t, plume.RightToLeft, plume.Detect(s), "sample %q", s)
	}

	ltrSamples := []string{"", "hello", "1234 !?", "привет", "日本語"}
	for _, s := range ltrSamples {
		assert.Equal(t, plume.LeftToRight, plume.Detect(s), "sample %q", s)
	}
}

// Literal markup characters escape exactly once, even alongside a link.
func TestEscapingRoundTrip(t *testing.T) {
	got := plume.Render("x < y & y > z, see [ref](doc)")
	assert.Contains(t, got, "x &lt; y &amp; y &gt; z")
	assert.Contains(t, got, `<a href="doc" target="_blank">ref</a>`)
	assert.NotContains(t, got, "&amp;lt;")
	assert.NotContains(t, got, "&amp;amp;")
}

func TestListClosedBeforeParagraphBreak(t *testing.T) {
	got := plume.Render("- a\n- b\n\nc")
	ulEnd := strings.Index(got, "</ul>")
	pStart := strings.Index(got, "<p>c</p>")
	assert.GreaterOrEqual(t, ulEnd, 0, "list not closed: %q", got)
	assert.GreaterOrEqual(t, pStart, 0, "trailing paragraph missing: %q", got)
	assert.Less(t, ulEnd, pStart, "list must close before the paragraph: %q", got)
}

func TestHeadingPrecedence(t *testing.T) {
	assert.Equal(t, "<h6>x</h6>", plume.Render("###### x"))
}

func TestOffsetsLandInsideDelimiters(t *testing.T) {
	cases := map[plume.Action]int{
		plume.ActionBold:          2,
		plume.ActionItalic:        1,
		plume.ActionStrikethrough: 2,
		plume.ActionLink:          1,
		plume.ActionImage:         2,
		plume.ActionInlineCode:    1,
	}
	for action, want := range cases {
		_, offset := plume.BuildInsertion(action, "")
		assert.Equal(t, want, offset, "action %s", action)
	}
}
