package diary

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/webdiary/internal/logging"
	"github.com/dmitrijs2005/webdiary/internal/storage"
	"github.com/dmitrijs2005/webdiary/internal/ui"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

type fakeSurface struct {
	title, content, writeDate, docTitle string

	list         []ui.ListItem
	setListCalls int
	scrolled     []string
	closeVisible bool

	alerts   []string
	prompts  []string
	answer   string
	answerOK bool
	confirms []string
	confirm  bool

	clicks  map[ui.Control]ui.Handler
	changes map[ui.Control]ui.Handler
	load    ui.Handler
	unload  ui.UnloadHandler
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		clicks:  map[ui.Control]ui.Handler{},
		changes: map[ui.Control]ui.Handler{},
	}
}

func (f *fakeSurface) OnClick(c ui.Control, h ui.Handler)  { f.clicks[c] = h }
func (f *fakeSurface) OnChange(c ui.Control, h ui.Handler) { f.changes[c] = h }
func (f *fakeSurface) OnLoad(h ui.Handler)                 { f.load = h }
func (f *fakeSurface) OnUnload(h ui.UnloadHandler)         { f.unload = h }

func (f *fakeSurface) Title() string                { return f.title }
func (f *fakeSurface) SetTitle(s string)            { f.title = s }
func (f *fakeSurface) Content() string              { return f.content }
func (f *fakeSurface) SetContent(s string)          { f.content = s }
func (f *fakeSurface) SetWriteDate(s string)        { f.writeDate = s }
func (f *fakeSurface) SetDocumentTitle(s string)    { f.docTitle = s }
func (f *fakeSurface) ScrollTo(key string)          { f.scrolled = append(f.scrolled, key) }
func (f *fakeSurface) SetCloseVisible(visible bool) { f.closeVisible = visible }
func (f *fakeSurface) Alert(msg string)             { f.alerts = append(f.alerts, msg) }

func (f *fakeSurface) SetList(items []ui.ListItem) {
	f.list = items
	f.setListCalls++
}

func (f *fakeSurface) Prompt(msg string) (string, bool) {
	f.prompts = append(f.prompts, msg)
	return f.answer, f.answerOK
}

func (f *fakeSurface) Confirm(msg string) bool {
	f.confirms = append(f.confirms, msg)
	return f.confirm
}

func (f *fakeSurface) keys() []string {
	out := make([]string, len(f.list))
	for i, it := range f.list {
		out[i] = it.Key
	}
	return out
}

func (f *fakeSurface) visibleKeys() []string {
	var out []string
	for _, it := range f.list {
		if it.Visible {
			out = append(out, it.Key)
		}
	}
	return out
}

func (f *fakeSurface) selected() []string {
	var out []string
	for _, it := range f.list {
		if it.Selected {
			out = append(out, it.Key)
		}
	}
	return out
}

// clock is a manually advanced time source.
type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) advance(d time.Duration) { c.now = c.now.Add(d) }

// faultyStore fails selected operations of an underlying store.
type faultyStore struct {
	storage.Store
	setErr    error
	deleteErr error
	keysErr   error
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func (f *faultyStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.Store.Delete(ctx, key)
}

func (f *faultyStore) Keys(ctx context.Context) ([]string, error) {
	if f.keysErr != nil {
		return nil, f.keysErr
	}
	return f.Store.Keys(ctx)
}

type fixture struct {
	ctx     context.Context
	store   storage.Store
	surface *fakeSurface
	clock   *clock
	logs    *bytes.Buffer
	env     *Env
	ctrl    *Controller
}

func openStore(t *testing.T, quota int64) *storage.SQLiteStore {
	t.Helper()
	s, err := storage.Open(context.Background(), ":memory:", storage.OpenOptions{QuotaBytes: quota})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newFixture(t *testing.T, store storage.Store) *fixture {
	t.Helper()
	if store == nil {
		store = openStore(t, 0)
	}

	var logs bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	surface := newFakeSurface()
	clk := &clock{now: t0}

	env := NewEnv(store, surface, log, Options{Location: time.UTC})
	env.Now = clk.Now

	return &fixture{
		ctx:     context.Background(),
		store:   store,
		surface: surface,
		clock:   clk,
		logs:    &logs,
		env:     env,
		ctrl:    New(env),
	}
}

// put stores a record created at ms directly, bypassing the controller.
func (fx *fixture) put(t *testing.T, ms int64, title, content string) string {
	t.Helper()
	key := NewKey(time.UnixMilli(ms))
	created := fx.env.format(time.UnixMilli(ms))
	data, err := json.Marshal(Record{Title: title, Content: content, CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)
	require.NoError(t, fx.store.Set(fx.ctx, key, data))
	return key
}

func (fx *fixture) stored(t *testing.T, key string) *Record {
	t.Helper()
	data, err := fx.store.Get(fx.ctx, key)
	require.NoError(t, err)
	rec, err := DecodeRecord(data)
	require.NoError(t, err)
	return rec
}

func (fx *fixture) storedKeys(t *testing.T) []string {
	t.Helper()
	keys, err := fx.store.Keys(fx.ctx)
	require.NoError(t, err)
	return keys
}
