package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/webdiary/internal/config"
	"github.com/dmitrijs2005/webdiary/internal/diary"
	"github.com/dmitrijs2005/webdiary/internal/logging"
	"github.com/dmitrijs2005/webdiary/internal/storage"
	"github.com/google/uuid"
)

type App struct {
	config   *config.Config
	store    *storage.SQLiteStore
	log      logging.Logger
	terminal *Terminal
	markdown *markdown
	ctrl     *diary.Controller
}

// NewApp opens the store named by c and wires the diary controller to a
// terminal on stdin/stdout. Logs go to stderr.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdin, os.Stdout, os.Stderr)
}

func newApp(c *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	ctx := context.Background()

	base, err := logging.New(logOut, c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := base.With("session", uuid.NewString())

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, c.DBPath, storage.OpenOptions{
		QuotaBytes: c.QuotaBytes,
		ReadOnly:   c.ReadOnly,
	})
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, fmt.Errorf("open store: %w", err)
	}

	t := NewTerminal(in, out)
	env := diary.NewEnv(store, t, log, diary.Options{
		Location:           loc,
		DateLayout:         c.DateLayout,
		MaxAttachmentBytes: c.MaxAttachmentBytes,
		PlaceholderImage:   c.PlaceholderImage,
	})
	ctrl := diary.New(env)
	ctrl.Register(t)

	return &App{
		config:   c,
		store:    store,
		log:      log,
		terminal: t,
		markdown: newMarkdown(),
		ctrl:     ctrl,
	}, nil
}

// Run blocks until the user leaves, then closes the store.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	return a.Root(ctx)
}

// Close releases the store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}
