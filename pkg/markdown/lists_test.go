package markdown

import "testing"

func TestGroupLists_Unordered(t *testing.T) {
	for _, marker := range []string{"- ", "* ", "+ "} {
		got := groupLists(marker + "a\n" + marker + "b")
		want := "<ul>\n<li>a</li>\n<li>b</li>\n</ul>"
		if got != want {
			t.Errorf("groupLists with marker %q = %q, want %q", marker, got, want)
		}
	}
}

func TestGroupLists_Ordered(t *testing.T) {
	got := groupLists("1. a\n2. b\n10. c")
	want := "<ol>\n<li>a</li>\n<li>b</li>\n<li>c</li>\n</ol>"
	if got != want {
		t.Errorf("groupLists = %q, want %q", got, want)
	}
}

func TestGroupLists_ClosesOnNonListLine(t *testing.T) {
	got := groupLists("- a\ntext")
	want := "<ul>\n<li>a</li>\n</ul>\ntext"
	if got != want {
		t.Errorf("groupLists = %q, want %q", got, want)
	}
}

func TestGroupLists_ClosesAtEndOfInput(t *testing.T) {
	got := groupLists("- a")
	want := "<ul>\n<li>a</li>\n</ul>"
	if got != want {
		t.Errorf("groupLists = %q, want %q", got, want)
	}
}

// A direct marker switch does not eagerly close the first list; both close
// at the next non-list line, unordered first. Pinned literal scanner
// behavior, not nesting.
func TestGroupLists_DirectMarkerSwitch(t *testing.T) {
	got := groupLists("- a\n1. b")
	want := "<ul>\n<li>a</li>\n<ol>\n<li>b</li>\n</ul>\n</ol>"
	if got != want {
		t.Errorf("groupLists = %q, want %q", got, want)
	}
}

func TestGroupLists_MarkerNeedsTrailingSpace(t *testing.T) {
	got := groupLists("-a\n1.b")
	want := "-a\n1.b"
	if got != want {
		t.Errorf("groupLists = %q, want %q", got, want)
	}
}
