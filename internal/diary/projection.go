package diary

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/webdiary/internal/dom"
	"github.com/dmitrijs2005/webdiary/internal/ui"
)

type entry struct {
	key     string
	created time.Time
	record  *Record
}

// snapshot reads every diary key from the store, oldest first. Records that
// cannot be decoded are deleted and reported with a warning; they never
// reach the caller.
func (c *Controller) snapshot(ctx context.Context) ([]entry, error) {
	keys, err := c.env.Store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	entries := make([]entry, 0, len(keys))
	for _, key := range keys {
		created, err := ParseKey(key)
		if err != nil {
			continue
		}
		entries = append(entries, entry{key: key, created: created})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return a.created.Compare(b.created)
	})

	valid := entries[:0]
	for _, e := range entries {
		rec, err := c.read(ctx, e.key)
		if err != nil {
			c.purge(ctx, e.key, err)
			continue
		}
		e.record = rec
		valid = append(valid, e)
	}
	return valid, nil
}

func (c *Controller) read(ctx context.Context, key string) (*Record, error) {
	data, err := c.env.Store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return DecodeRecord(data)
}

// purge drops an unreadable record. A failed delete is only logged: the
// record is left out of the list either way.
func (c *Controller) purge(ctx context.Context, key string, cause error) {
	c.env.Log.Warn(ctx, fmt.Sprintf("could not read %q", key), "error", cause)
	if err := c.env.Store.Delete(ctx, key); err != nil {
		c.env.Log.Error(ctx, "purge failed", "key", key, "error", err)
	}
	c.forget(key)
}

// order sorts entries for display: session saves first, most recent first,
// then the rest newest-created first.
func (c *Controller) order(entries []entry) {
	rank := make(map[string]int, len(c.recent))
	for i, k := range c.recent {
		rank[k] = i
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		ra, aRecent := rank[a.key]
		rb, bRecent := rank[b.key]
		switch {
		case aRecent && bRecent:
			return cmp.Compare(ra, rb)
		case aRecent:
			return -1
		case bRecent:
			return 1
		}
		if n := b.created.Compare(a.created); n != 0 {
			return n
		}
		return strings.Compare(b.key, a.key)
	})
}

// project builds the list item for one record.
func (c *Controller) project(e entry) ui.ListItem {
	item := ui.ListItem{
		Key:       e.key,
		Title:     displayTitle(e.record.Title),
		Text:      "No text",
		Thumbnail: ui.Thumbnail{Kind: ui.ThumbnailPlaceholder, Src: c.env.Options.PlaceholderImage},
		Visible:   true,
	}

	content, err := dom.ParseContent(e.record.Content)
	if err != nil {
		return item
	}
	if text := strings.TrimSpace(content.Text()); text != "" {
		item.Text = text
	}
	if src, ok := content.FirstSrc("video"); ok {
		item.Thumbnail = ui.Thumbnail{Kind: ui.ThumbnailVideo, Src: src}
	} else if src, ok := content.FirstSrc("img"); ok {
		item.Thumbnail = ui.Thumbnail{Kind: ui.ThumbnailImage, Src: src}
	}
	return item
}

// refresh recomputes the list from the store. The surface is updated by the
// caller, normally through Load.
func (c *Controller) refresh(ctx context.Context) error {
	entries, err := c.snapshot(ctx)
	if err != nil {
		return err
	}
	c.order(entries)

	items := make([]ui.ListItem, len(entries))
	for i, e := range entries {
		items[i] = c.project(e)
	}
	c.items = items
	return nil
}

func (c *Controller) indexOf(key string) int {
	return slices.IndexFunc(c.items, func(it ui.ListItem) bool { return it.Key == key })
}

// touch moves key to the front of the session order.
func (c *Controller) touch(key string) {
	c.forget(key)
	c.recent = slices.Insert(c.recent, 0, key)
}

func (c *Controller) forget(key string) {
	c.recent = slices.DeleteFunc(c.recent, func(k string) bool { return k == key })
}
