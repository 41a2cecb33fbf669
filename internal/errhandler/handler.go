// Package errhandler turns search and storage failures into either a user
// alert or a diagnostic log line. It never retries and never fails itself.
package errhandler

import (
	"context"
	"errors"
	"regexp/syntax"

	"github.com/dmitrijs2005/webdiary/internal/logging"
	"github.com/dmitrijs2005/webdiary/internal/storage"
)

const (
	MsgInvalidKeyword = "Invalid keyword"
	MsgQuotaExceeded  = "Not enough free space in local storage"
	MsgNotSecure      = "operation is not secure"
)

// Alerter shows a modal message to the user.
type Alerter interface {
	Alert(msg string)
}

type Handler struct {
	alerter Alerter
	log     logging.Logger
}

func New(a Alerter, log logging.Logger) *Handler {
	return &Handler{alerter: a, log: log}
}

// Search handles a failure to compile a search keyword.
func (h *Handler) Search(ctx context.Context, err error) {
	if err == nil {
		return
	}
	var se *syntax.Error
	if errors.As(err, &se) {
		h.alerter.Alert(MsgInvalidKeyword)
		return
	}
	h.log.Error(ctx, "search failed", "error", err)
}

// Storage handles a failed write to the store.
func (h *Handler) Storage(ctx context.Context, err error) {
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrQuotaExceeded):
		h.alerter.Alert(MsgQuotaExceeded)
	case errors.Is(err, storage.ErrSecurity):
		h.log.Error(ctx, MsgNotSecure, "error", err)
	default:
		h.log.Error(ctx, "storage failed", "error", err)
	}
}
