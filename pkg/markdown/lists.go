package markdown

import (
	"regexp"
	"strings"
)

var (
	reUnorderedItem = regexp.MustCompile(`^[*+-] `)
	reOrderedItem   = regexp.MustCompile(`^\d+\. `)
)

// groupLists scans lines in order and wraps runs of list-marker lines in
// <ul>/<ol>. The two list kinds are tracked independently; an open list is
// closed on the next non-list line (or at end of input), not eagerly when
// the marker kind switches. Nested lists are not supported.
func groupLists(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	var inUnordered, inOrdered bool

	for _, line := range lines {
		switch {
		case reUnorderedItem.MatchString(line):
			if !inUnordered {
				out = append(out, "<ul>")
				inUnordered = true
			}
			out = append(out, "<li>"+reUnorderedItem.ReplaceAllString(line, "")+"</li>")
		case reOrderedItem.MatchString(line):
			if !inOrdered {
				out = append(out, "<ol>")
				inOrdered = true
			}
			out = append(out, "<li>"+reOrderedItem.ReplaceAllString(line, "")+"</li>")
		default:
			if inUnordered {
				out = append(out, "</ul>")
				inUnordered = false
			}
			if inOrdered {
				out = append(out, "</ol>")
				inOrdered = false
			}
			out = append(out, line)
		}
	}
	if inUnordered {
		out = append(out, "</ul>")
	}
	if inOrdered {
		out = append(out, "</ol>")
	}
	return strings.Join(out, "\n")
}
