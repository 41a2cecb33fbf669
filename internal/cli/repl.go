package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/webdiary/internal/dom"
	"github.com/dmitrijs2005/webdiary/internal/logging"
	"github.com/dmitrijs2005/webdiary/internal/ui"
)

const helpText = "Available commands: (l)ist, open <n>, new, save, delete, title <text>, write (replaces text, keeps attachments), attach <path>, show, search, close, info, exit"

// runREPL starts a simple read–eval–print loop over t.
//
// It reads a line from the terminal's input, parses the first token as the
// command, and dispatches it as an event on the terminal. Unknown commands
// are reported back to the user. The loop exits at end of input, or when the
// user types "exit" or "quit" and confirms leaving.
//
// Any errors returned by event handlers are logged at debug level and
// otherwise ignored; the controller reports failures to the user itself.
func runREPL(ctx context.Context, t *Terminal, md *markdown, log logging.Logger) {
	for {
		fmt.Fprint(t.out, "diary> ")
		line, readErr := t.in.ReadString('\n')
		if readErr != nil && (!errors.Is(readErr, io.EOF) || line == "") {
			fmt.Fprintln(t.out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			fmt.Fprintln(t.out, helpText)

		case "l", "list":
			renderList(t.out, t.items, t.closeVisible, t.width)

		case "open":
			key, ok := "", false
			if len(args) == 1 {
				if n, convErr := strconv.Atoi(args[0]); convErr == nil {
					key, ok = t.keyAt(n)
				}
			}
			if !ok {
				fmt.Fprintln(t.out, "Usage: open <n>, where n is a number from the list")
				continue
			}
			err = t.Click(ctx, ui.ControlItem, ui.Event{Key: key})
			renderEntry(t.out, t)

		case "new":
			err = t.Click(ctx, ui.ControlCreate, ui.Event{})
			renderList(t.out, t.items, t.closeVisible, t.width)

		case "save":
			err = t.Click(ctx, ui.ControlSave, ui.Event{})
			renderList(t.out, t.items, t.closeVisible, t.width)

		case "delete":
			err = t.Click(ctx, ui.ControlDelete, ui.Event{})
			renderList(t.out, t.items, t.closeVisible, t.width)

		case "search":
			err = t.Click(ctx, ui.ControlSearch, ui.Event{})
			renderList(t.out, t.items, t.closeVisible, t.width)

		case "close":
			if !t.closeVisible {
				fmt.Fprintln(t.out, "No search is active")
				continue
			}
			err = t.Click(ctx, ui.ControlClose, ui.Event{})
			renderList(t.out, t.items, t.closeVisible, t.width)

		case "info":
			err = t.Click(ctx, ui.ControlInfo, ui.Event{})

		case "title":
			t.SetTitle(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd)))

		case "write":
			text, inErr := GetMultiline(t.in, "Write the entry in markdown", t.out)
			if inErr != nil {
				err = inErr
				break
			}
			html, convErr := md.toHTML(text)
			if convErr != nil {
				err = convErr
				break
			}
			t.SetContent(keepMedia(t.Content(), html))

		case "attach":
			if len(args) == 0 {
				fmt.Fprintln(t.out, "Usage: attach <path>")
				continue
			}
			err = attach(ctx, t, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd)))

		case "show":
			renderEntry(t.out, t)

		case "exit", "quit":
			if !t.Unload(ctx) {
				continue
			}
			fmt.Fprintln(t.out, "Bye!")
			return

		default:
			fmt.Fprintln(t.out, "Unknown command:", cmd)
		}

		if err != nil {
			log.Debug(ctx, "command failed", "command", cmd, "error", err)
		}
	}
}

func attach(ctx context.Context, t *Terminal, path string) error {
	f, closer, err := openAttachment(path)
	if err != nil {
		t.Alert(err.Error())
		return err
	}
	defer closer.Close()
	return t.Change(ctx, ui.ControlFile, ui.Event{Files: []ui.File{f}})
}

// keepMedia returns text followed by the media elements of old, so rewriting
// the text never drops attachments.
func keepMedia(old, text string) string {
	prev, err := dom.ParseContent(old)
	if err != nil {
		return text
	}
	media := prev.Media()
	if len(media) == 0 {
		return text
	}
	next, err := dom.ParseContent(text)
	if err != nil {
		return text
	}
	for _, m := range media {
		next.Append(m)
	}
	return next.String()
}
