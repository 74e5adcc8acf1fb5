// Document is the central entity of the domain.
package core

// Metadata represents the flexible key-value pairs associated with a document,
// typically parsed from YAML frontmatter.
type Metadata map[string]any

// Document is a markdown source identified by an ID, plus its metadata.
// It is agnostic to where it came from (filesystem, editor buffer).
type Document struct {
	ID       string
	Content  string
	Metadata Metadata
}

// Title returns the "title" metadata entry, falling back to the ID.
func (d Document) Title() string {
	if t, ok := d.Metadata["title"].(string); ok && t != "" {
		return t
	}
	return d.ID
}

// EventType represents the type of change observed in a document source.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a watched document.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and lifecycle.Event).
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
