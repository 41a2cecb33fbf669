package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/dmitrijs2005/webdiary/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTerminal(strings.NewReader(input), &out), &out
}

func TestNewTerminal_Width(t *testing.T) {
	orig := getSize
	t.Cleanup(func() { getSize = orig })

	getSize = func(int) (int, int, error) { return 120, 40, nil }
	term, _ := newTestTerminal("")
	assert.Equal(t, 120, term.width)

	getSize = func(int) (int, int, error) { return 0, 0, errors.New("not a terminal") }
	term, _ = newTestTerminal("")
	assert.Equal(t, defaultWidth, term.width)
}

func TestTerminal_Dispatch(t *testing.T) {
	term, _ := newTestTerminal("")
	ctx := context.Background()

	var got []ui.Event
	term.OnClick(ui.ControlItem, func(_ context.Context, ev ui.Event) error {
		got = append(got, ev)
		return nil
	})
	term.OnChange(ui.ControlFile, func(_ context.Context, ev ui.Event) error {
		got = append(got, ev)
		return errors.New("rejected")
	})

	require.NoError(t, term.Click(ctx, ui.ControlItem, ui.Event{Key: "diary_1"}))
	require.EqualError(t, term.Change(ctx, ui.ControlFile, ui.Event{}), "rejected")
	assert.Equal(t, []ui.Event{
		{Target: ui.ControlItem, Key: "diary_1"},
		{Target: ui.ControlFile},
	}, got)

	require.ErrorIs(t, term.Click(ctx, ui.ControlSave, ui.Event{}), errNoHandler)
	require.ErrorIs(t, term.Change(ctx, ui.ControlSave, ui.Event{}), errNoHandler)
	require.ErrorIs(t, term.Load(ctx), errNoHandler)
	assert.True(t, term.Unload(ctx))

	loaded := false
	term.OnLoad(func(context.Context, ui.Event) error { loaded = true; return nil })
	term.OnUnload(func(context.Context) bool { return false })
	require.NoError(t, term.Load(ctx))
	assert.True(t, loaded)
	assert.False(t, term.Unload(ctx))
}

func TestTerminal_Dialogs(t *testing.T) {
	term, out := newTestTerminal("  needle \nYes\nno\n")

	answer, ok := term.Prompt("Enter a search keyword")
	assert.True(t, ok)
	assert.Equal(t, "needle", answer)

	assert.True(t, term.Confirm("Leave?"))
	assert.False(t, term.Confirm("Leave?"))

	// input exhausted
	_, ok = term.Prompt("again")
	assert.False(t, ok)
	assert.False(t, term.Confirm("Leave?"))

	term.Alert("Invalid keyword")
	plain := ansi.Strip(out.String())
	assert.Contains(t, plain, "Enter a search keyword\n> ")
	assert.Contains(t, plain, "Leave? [y/N]")
	assert.Contains(t, plain, "Invalid keyword\n")
}

func TestTerminal_ListState(t *testing.T) {
	term, _ := newTestTerminal("")
	items := []ui.ListItem{{Key: "diary_2"}, {Key: "diary_1"}}
	term.SetList(items)
	items[0].Key = "changed"

	key, ok := term.keyAt(1)
	assert.True(t, ok)
	assert.Equal(t, "diary_2", key)

	_, ok = term.keyAt(0)
	assert.False(t, ok)
	_, ok = term.keyAt(3)
	assert.False(t, ok)

	term.ScrollTo("diary_1")
	term.SetCloseVisible(true)
	assert.Equal(t, "diary_1", term.focus)
	assert.True(t, term.closeVisible)
}
