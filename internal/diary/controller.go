package diary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/webdiary/internal/common"
	"github.com/dmitrijs2005/webdiary/internal/dom"
	"github.com/dmitrijs2005/webdiary/internal/ui"
)

const (
	MsgSearchPrompt = "Enter a search keyword"
	MsgUnsupported  = "Unsupported file format"
	MsgLeave        = "Leave this page? Unsaved edits will be lost."
	MsgInfo         = "Web Diary\n\nWrite diary entries with a title, text and attached images, video or audio.\n" +
		"Entries are kept on this machine only. Use search to filter the list by a regular expression."
)

// Controller runs the diary operations against an Env. It is not safe for
// concurrent use; the surface delivers one event at a time.
type Controller struct {
	env *Env

	// current is the key save, delete and close act on.
	current string
	// recent holds the keys saved this session, most recent first.
	recent []string
	// items is the last computed list, in display order.
	items []ui.ListItem
}

func New(env *Env) *Controller {
	return &Controller{env: env}
}

// Current returns the key of the loaded entry, or "" before the first load.
func (c *Controller) Current() string {
	return c.current
}

// Items returns a copy of the list as last shown.
func (c *Controller) Items() []ui.ListItem {
	out := make([]ui.ListItem, len(c.items))
	copy(out, c.items)
	return out
}

// Register binds the controller's operations to the surface's events.
func (c *Controller) Register(ev ui.Events) {
	ev.OnLoad(func(ctx context.Context, _ ui.Event) error { return c.Start(ctx) })
	ev.OnClick(ui.ControlCreate, func(ctx context.Context, _ ui.Event) error { return c.Create(ctx) })
	ev.OnClick(ui.ControlSave, func(ctx context.Context, _ ui.Event) error { return c.Save(ctx, c.current) })
	ev.OnClick(ui.ControlDelete, func(ctx context.Context, _ ui.Event) error { return c.Remove(ctx, c.current) })
	ev.OnClick(ui.ControlSearch, func(ctx context.Context, _ ui.Event) error { return c.Search(ctx) })
	ev.OnClick(ui.ControlClose, func(ctx context.Context, _ ui.Event) error { return c.CloseSearch(ctx) })
	ev.OnClick(ui.ControlInfo, func(ctx context.Context, _ ui.Event) error { return c.Info(ctx) })
	ev.OnClick(ui.ControlItem, func(ctx context.Context, e ui.Event) error { return c.Load(ctx, e.Key) })
	ev.OnChange(ui.ControlFile, func(ctx context.Context, e ui.Event) error { return c.HandleFiles(ctx, e.Files) })
	ev.OnUnload(c.ConfirmUnload)
}

// Start builds the list from the store and loads the newest entry. Unreadable
// records are purged along the way. An empty store gets a fresh entry.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.refresh(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	c.env.Log.Debug(ctx, "diary started", "entries", len(c.items))
	if len(c.items) == 0 {
		return c.Create(ctx)
	}
	return c.Load(ctx, c.items[0].Key)
}

// Create clears the editor and saves the blank entry under a new key.
func (c *Controller) Create(ctx context.Context) error {
	s := c.env.Surface
	s.SetTitle("")
	content, err := dom.ParseContent(s.Content())
	if err != nil {
		s.SetContent("")
	} else {
		content.Clear()
		s.SetContent(content.String())
	}
	s.SetWriteDate("")

	key, err := c.mintKey(ctx)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return c.Save(ctx, key)
}

// mintKey returns an unused key for the current time, moving forward one
// millisecond at a time past keys already taken.
func (c *Controller) mintKey(ctx context.Context) (string, error) {
	t := c.env.Now()
	for {
		key := NewKey(t)
		data, err := c.env.Store.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("check key %s: %w", key, err)
		}
		if data == nil {
			return key, nil
		}
		t = t.Add(time.Millisecond)
	}
}

// Save stores the editor under key. A record already stored under key keeps
// its createdAt. If the store refuses the write, the error handler reports it
// and the editor falls back to the listed version of key, or to the first
// entry; the list itself is left as it was.
func (c *Controller) Save(ctx context.Context, key string) error {
	created, err := ParseKey(key)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	createdAt := c.env.format(created)
	if prev, err := c.read(ctx, key); err == nil && prev.CreatedAt != "" {
		createdAt = prev.CreatedAt
	}

	s := c.env.Surface
	rec := &Record{
		Title:     s.Title(),
		Content:   s.Content(),
		CreatedAt: createdAt,
		UpdatedAt: c.env.format(c.env.Now()),
	}
	data, err := rec.Encode()
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	if err := c.env.Store.Set(ctx, key, data); err != nil {
		c.env.Errors.Storage(ctx, err)
		c.rollback(ctx, key)
		return fmt.Errorf("save %s: %w", key, err)
	}

	c.touch(key)
	if err := c.refresh(ctx); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return c.Load(ctx, key)
}

func (c *Controller) rollback(ctx context.Context, key string) {
	target := ""
	if c.indexOf(key) >= 0 {
		target = key
	} else if len(c.items) > 0 {
		target = c.items[0].Key
	}
	if target == "" {
		return
	}
	if err := c.Load(ctx, target); err != nil {
		c.env.Log.Error(ctx, "reload after failed save", "key", target, "error", err)
	}
}

// Remove deletes key and selects the entry after it, else the one before it,
// else the last one. Removing the last entry creates a fresh one.
func (c *Controller) Remove(ctx context.Context, key string) error {
	if err := c.env.Store.Delete(ctx, key); err != nil {
		c.env.Errors.Storage(ctx, err)
		return fmt.Errorf("remove %s: %w", key, err)
	}
	c.forget(key)

	if err := c.reselect(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// reselect rebuilds the list after key has gone from it and loads the
// neighbour Remove promises.
func (c *Controller) reselect(ctx context.Context, key string) error {
	next := ""
	if i := c.indexOf(key); i >= 0 {
		switch {
		case i+1 < len(c.items):
			next = c.items[i+1].Key
		case i > 0:
			next = c.items[i-1].Key
		}
	}

	if err := c.refresh(ctx); err != nil {
		return err
	}
	if len(c.items) == 0 {
		c.current = ""
		return c.Create(ctx)
	}
	if next == "" || c.indexOf(next) < 0 {
		next = c.items[len(c.items)-1].Key
	}
	return c.Load(ctx, next)
}

// Load shows key in the editor and makes it the target of save, delete and
// close. Any active search is cleared. A record that is missing or cannot be
// decoded is purged with a warning instead, and dropped from the list even
// when the store refuses the delete.
func (c *Controller) Load(ctx context.Context, key string) error {
	s := c.env.Surface
	s.SetCloseVisible(false)

	rec, err := c.read(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) && !errors.Is(err, common.ErrorCorruptRecord) {
			return fmt.Errorf("load %s: %w", key, err)
		}
		c.purge(ctx, key, err)
		if err := c.reselect(ctx, key); err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		return nil
	}

	dom.Highlight(c.items, key)
	s.SetList(c.Items())
	s.ScrollTo(key)

	s.SetTitle(rec.Title)
	s.SetContent(rec.Content)
	s.SetWriteDate(rec.WriteDate())
	s.SetDocumentTitle(rec.DocumentTitle())

	c.current = key
	return nil
}

// ConfirmUnload asks whether the user may leave with unsaved edits.
func (c *Controller) ConfirmUnload(ctx context.Context) bool {
	return c.env.Surface.Confirm(MsgLeave)
}

// Info shows what the program is.
func (c *Controller) Info(ctx context.Context) error {
	c.env.Surface.Alert(MsgInfo)
	return nil
}
