package markdown

// Action identifies a toolbar insertion action.
type Action string

const (
	ActionHeading1      Action = "heading1"
	ActionHeading2      Action = "heading2"
	ActionHeading3      Action = "heading3"
	ActionBold          Action = "bold"
	ActionItalic        Action = "italic"
	ActionStrikethrough Action = "strikethrough"
	ActionUnorderedItem Action = "unordered-item"
	ActionOrderedItem   Action = "ordered-item"
	ActionQuote         Action = "quote"
	ActionLink          Action = "link"
	ActionImage         Action = "image"
	ActionInlineCode    Action = "inline-code"
)

// Actions lists every recognized insertion action.
func Actions() []Action {
	return []Action{
		ActionHeading1, ActionHeading2, ActionHeading3,
		ActionBold, ActionItalic, ActionStrikethrough,
		ActionUnorderedItem, ActionOrderedItem, ActionQuote,
		ActionLink, ActionImage, ActionInlineCode,
	}
}

// BuildInsertion produces the markdown snippet for an action, wrapping the
// selected text, plus the caret byte offset relative to the snippet start.
// With a selection the caret lands at the end of the snippet; without one it
// lands right after the opening delimiter so the user types the content
// immediately. An unrecognized action yields ("", 0).
func BuildInsertion(action Action, selected string) (string, int) {
	var prefix, suffix string
	switch action {
	case ActionHeading1:
		prefix = "# "
	case ActionHeading2:
		prefix = "## "
	case ActionHeading3:
		prefix = "### "
	case ActionBold:
		prefix, suffix = "**", "**"
	case ActionItalic:
		prefix, suffix = "*", "*"
	case ActionStrikethrough:
		prefix, suffix = "~~", "~~"
	case ActionUnorderedItem:
		prefix = "- "
	case ActionOrderedItem:
		prefix = "1. "
	case ActionQuote:
		prefix = "> "
	case ActionLink:
		prefix, suffix = "[", "]()"
	case ActionImage:
		prefix, suffix = "![", "]()"
	case ActionInlineCode:
		prefix, suffix = "`", "`"
	default:
		return "", 0
	}

	snippet := prefix + selected + suffix
	if selected != "" {
		return snippet, len(snippet)
	}
	return snippet, len(prefix)
}
