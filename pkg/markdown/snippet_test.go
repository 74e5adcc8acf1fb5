package markdown

import "testing"

func TestBuildInsertion_NoSelection(t *testing.T) {
	cases := []struct {
		action  Action
		snippet string
		offset  int
	}{
		{ActionHeading1, "# ", 2},
		{ActionHeading2, "## ", 3},
		{ActionHeading3, "### ", 4},
		{ActionBold, "****", 2},
		{ActionItalic, "**", 1},
		{ActionStrikethrough, "~~~~", 2},
		{ActionUnorderedItem, "- ", 2},
		{ActionOrderedItem, "1. ", 3},
		{ActionQuote, "> ", 2},
		{ActionLink, "[]()", 1},
		{ActionImage, "![]()", 2},
		{ActionInlineCode, "``", 1},
	}
	for _, c := range cases {
		snippet, offset := BuildInsertion(c.action, "")
		if snippet != c.snippet || offset != c.offset {
			t.Errorf("BuildInsertion(%q, \"\") = (%q, %d), want (%q, %d)",
				c.action, snippet, offset, c.snippet, c.offset)
		}
	}
}

func TestBuildInsertion_WithSelection(t *testing.T) {
	cases := []struct {
		action  Action
		snippet string
	}{
		{ActionHeading2, "## words"},
		{ActionBold, "**words**"},
		{ActionItalic, "*words*"},
		{ActionLink, "[words]()"},
		{ActionImage, "![words]()"},
		{ActionInlineCode, "`words`"},
	}
	for _, c := range cases {
		snippet, offset := BuildInsertion(c.action, "words")
		if snippet != c.snippet {
			t.Errorf("BuildInsertion(%q) snippet = %q, want %q", c.action, snippet, c.snippet)
		}
		// Caret goes to the end of the full snippet so typing continues after it.
		if offset != len(snippet) {
			t.Errorf("BuildInsertion(%q) offset = %d, want %d", c.action, offset, len(snippet))
		}
	}
}

func TestBuildInsertion_UnknownAction(t *testing.T) {
	snippet, offset := BuildInsertion(Action("table"), "x")
	if snippet != "" || offset != 0 {
		t.Errorf("unknown action should yield empty snippet, got (%q, %d)", snippet, offset)
	}
}

func TestActions_AllRecognized(t *testing.T) {
	for _, a := range Actions() {
		if snippet, _ := BuildInsertion(a, ""); snippet == "" {
			t.Errorf("action %q listed but not recognized", a)
		}
	}
}
