package diary

import (
	"time"

	"github.com/dmitrijs2005/webdiary/internal/errhandler"
	"github.com/dmitrijs2005/webdiary/internal/logging"
	"github.com/dmitrijs2005/webdiary/internal/storage"
	"github.com/dmitrijs2005/webdiary/internal/ui"
)

const (
	DefaultDateLayout         = "2006/1/2 15:04:05"
	DefaultMaxAttachmentBytes = 1 << 20
	DefaultPlaceholderImage   = "./images/no-image.png"
)

// Options tune how entries are stamped, attached and summarised.
type Options struct {
	Location           *time.Location
	DateLayout         string
	MaxAttachmentBytes int64
	PlaceholderImage   string
}

func (o *Options) setDefaults() {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	if o.MaxAttachmentBytes <= 0 {
		o.MaxAttachmentBytes = DefaultMaxAttachmentBytes
	}
	if o.PlaceholderImage == "" {
		o.PlaceholderImage = DefaultPlaceholderImage
	}
}

// Env is everything a Controller works with. It is built once when the
// application starts; the store it references is owned and closed by the
// caller.
type Env struct {
	Store   storage.Store
	Surface ui.Surface
	Log     logging.Logger
	Errors  *errhandler.Handler
	Now     func() time.Time
	Options Options
}

// NewEnv wires an Env with the wall clock and an error handler that alerts
// through surface.
func NewEnv(store storage.Store, surface ui.Surface, log logging.Logger, opts Options) *Env {
	opts.setDefaults()
	return &Env{
		Store:   store,
		Surface: surface,
		Log:     log,
		Errors:  errhandler.New(surface, log),
		Now:     time.Now,
		Options: opts,
	}
}

func (e *Env) format(t time.Time) string {
	return t.In(e.Options.Location).Format(e.Options.DateLayout)
}
