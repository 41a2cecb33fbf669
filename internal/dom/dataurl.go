package dom

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/webdiary/internal/ui"
)

const fallbackType = "application/octet-stream"

// DataURLResult is the outcome of ReadDataURL.
type DataURLResult struct {
	URL string
	Err error
}

// ReadDataURL converts f to a base64 data URL in the background. The
// returned channel delivers exactly one result and is then closed. There is
// no progress reporting; ctx is checked once before reading starts.
func ReadDataURL(ctx context.Context, f ui.File) <-chan DataURLResult {
	out := make(chan DataURLResult, 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- DataURLResult{Err: err}
			return
		}
		url, err := EncodeDataURL(f)
		out <- DataURLResult{URL: url, Err: err}
	}()
	return out
}

// EncodeDataURL reads all of f and returns "data:<type>;base64,<payload>".
func EncodeDataURL(f ui.File) (string, error) {
	if f.Data == nil {
		return "", errors.New("file has no data")
	}
	data, err := io.ReadAll(f.Data)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name, err)
	}

	typ := f.Type
	if typ == "" {
		typ = fallbackType
	}

	var b strings.Builder
	b.Grow(len("data:;base64,") + len(typ) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(typ)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String(), nil
}
