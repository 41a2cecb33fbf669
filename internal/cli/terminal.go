package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/webdiary/internal/ui"
	"golang.org/x/term"
)

const defaultWidth = 80

// getSize is a test seam for term.GetSize.
var getSize = term.GetSize

var errNoHandler = errors.New("no handler registered")

// Terminal is a ui.Surface that keeps the editor and list state in memory,
// reads dialog answers from in and writes everything else to out.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	width int

	title     string
	content   string
	writeDate string
	docTitle  string

	items        []ui.ListItem
	focus        string
	closeVisible bool

	clicks  map[ui.Control]ui.Handler
	changes map[ui.Control]ui.Handler
	load    ui.Handler
	unload  ui.UnloadHandler
}

var _ ui.Surface = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:      bufio.NewReader(in),
		out:     out,
		width:   termWidth(),
		clicks:  make(map[ui.Control]ui.Handler),
		changes: make(map[ui.Control]ui.Handler),
	}
}

func termWidth() int {
	if w, _, err := getSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func (t *Terminal) OnClick(target ui.Control, h ui.Handler)  { t.clicks[target] = h }
func (t *Terminal) OnChange(target ui.Control, h ui.Handler) { t.changes[target] = h }
func (t *Terminal) OnLoad(h ui.Handler)                      { t.load = h }
func (t *Terminal) OnUnload(h ui.UnloadHandler)              { t.unload = h }

// Click delivers a click on target.
func (t *Terminal) Click(ctx context.Context, target ui.Control, ev ui.Event) error {
	h, ok := t.clicks[target]
	if !ok {
		return fmt.Errorf("click %s: %w", target, errNoHandler)
	}
	ev.Target = target
	return h(ctx, ev)
}

// Change delivers a change of target.
func (t *Terminal) Change(ctx context.Context, target ui.Control, ev ui.Event) error {
	h, ok := t.changes[target]
	if !ok {
		return fmt.Errorf("change %s: %w", target, errNoHandler)
	}
	ev.Target = target
	return h(ctx, ev)
}

// Load fires the load event.
func (t *Terminal) Load(ctx context.Context) error {
	if t.load == nil {
		return fmt.Errorf("load: %w", errNoHandler)
	}
	return t.load(ctx, ui.Event{})
}

// Unload reports whether the terminal may be left. Without a handler it
// always may.
func (t *Terminal) Unload(ctx context.Context) bool {
	if t.unload == nil {
		return true
	}
	return t.unload(ctx)
}

func (t *Terminal) Title() string             { return t.title }
func (t *Terminal) SetTitle(title string)     { t.title = title }
func (t *Terminal) Content() string           { return t.content }
func (t *Terminal) SetContent(html string)    { t.content = html }
func (t *Terminal) SetWriteDate(text string)  { t.writeDate = text }
func (t *Terminal) SetDocumentTitle(s string) { t.docTitle = s }

func (t *Terminal) SetList(items []ui.ListItem) {
	t.items = append(t.items[:0], items...)
}

func (t *Terminal) ScrollTo(key string)          { t.focus = key }
func (t *Terminal) SetCloseVisible(visible bool) { t.closeVisible = visible }

func (t *Terminal) Alert(msg string) {
	fmt.Fprintln(t.out, styleAlert.Render(msg))
}

// Prompt reads one line. ok is false when input has ended.
func (t *Terminal) Prompt(msg string) (string, bool) {
	answer, err := GetSimpleText(t.in, msg, t.out)
	if err != nil {
		return "", false
	}
	return answer, true
}

// Confirm accepts y or yes in any case.
func (t *Terminal) Confirm(msg string) bool {
	answer, err := GetSimpleText(t.in, msg+" [y/N]", t.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// keyAt maps a 1-based list number onto a key.
func (t *Terminal) keyAt(n int) (string, bool) {
	if n < 1 || n > len(t.items) {
		return "", false
	}
	return t.items[n-1].Key, true
}
