package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/plume"
)

// TestDirectionResolutionFlow walks the full override lifecycle through the
// public facade: default fallback, detection, manual pin, release.
func TestDirectionResolutionFlow(t *testing.T) {
	editor := plume.New(
		plume.WithAutoDetect(true),
		plume.WithDefaultDirection(plume.RightToLeft),
	)

	// 1. Empty buffer: detection has no signal, the default wins.
	require.Equal(t, plume.RightToLeft, editor.Direction())

	// 2. Latin content resolves LTR.
	editor.SetText("hello")
	require.Equal(t, plume.LeftToRight, editor.Direction())

	// 3. Manual toggle pins RTL and disables detection.
	editor.ToggleDirection()
	require.Equal(t, plume.RightToLeft, editor.Direction())
	require.False(t, editor.AutoDetect())

	// 4. The pin survives further edits.
	editor.SetText("hello again")
	require.Equal(t, plume.RightToLeft, editor.Direction())

	// 5. Re-enabling detection releases the pin.
	editor.SetAutoDetect(true)
	require.Equal(t, plume.LeftToRight, editor.Direction())
}

func TestNotificationsCarryRenderedHTML(t *testing.T) {
	type notification struct {
		text string
		html string
	}
	var notifications []notification
	var directions []plume.Direction

	editor := plume.New(
		plume.WithAutoDetect(true),
		plume.WithOnTextChange(func(text, html string) {
			notifications = append(notifications, notification{text, html})
		}),
		plume.WithOnDirectionChange(func(d plume.Direction) {
			directions = append(directions, d)
		}),
	)

	editor.SetText("# Title")
	editor.SetText("مرحبا")
	editor.SetText("مرحبا بالعالم")

	require.Len(t, notifications, 3)
	assert.Equal(t, notification{"# Title", "<h1>Title</h1>"}, notifications[0])
	assert.Equal(t, "<p>مرحبا</p>", notifications[1].html)

	// Direction changed exactly once: ltr -> rtl on the second edit.
	require.Len(t, directions, 1)
	assert.Equal(t, plume.RightToLeft, directions[0])
}

func TestClearResetsStateAndNotifies(t *testing.T) {
	var lastText, lastHTML string
	calls := 0

	editor := plume.New(
		plume.WithInitialText("# something"),
		plume.WithAutoDetect(true),
		plume.WithOnTextChange(func(text, html string) {
			calls++
			lastText, lastHTML = text, html
		}),
	)
	editor.ToggleDirection()

	editor.Clear()

	assert.Empty(t, editor.Text())
	assert.Empty(t, editor.HTML())
	require.Equal(t, 1, calls)
	assert.Empty(t, lastText)
	assert.Empty(t, lastHTML)
}

func TestInsertionSplicing(t *testing.T) {
	editor := plume.New()

	snippet, offset := editor.InsertMarkdown(plume.ActionBold, "")
	require.Equal(t, "****", snippet)
	require.Equal(t, 2, offset)

	// The caller splices and types at the caret position.
	spliced := snippet[:offset] + "words" + snippet[offset:]
	editor.SetText(spliced)
	assert.Equal(t, "<p><strong>words</strong></p>", editor.HTML())
}
