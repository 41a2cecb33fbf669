package diary

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/webdiary/internal/dom"
	"github.com/dmitrijs2005/webdiary/internal/ui"
)

// HandleFiles attaches the first of files to the editor content as a video,
// audio or image element. Files at or above the size limit and files of any
// other type are refused with an alert.
func (c *Controller) HandleFiles(ctx context.Context, files []ui.File) error {
	if len(files) == 0 {
		return nil
	}
	f := files[0]
	s := c.env.Surface

	if f.Size >= c.env.Options.MaxAttachmentBytes {
		s.Alert(fmt.Sprintf("Only files smaller than %s can be attached", sizeLabel(c.env.Options.MaxAttachmentBytes)))
		return nil
	}
	kind, ok := dom.MediaKindOf(f.Type)
	if !ok {
		s.Alert(MsgUnsupported)
		return nil
	}

	var res dom.DataURLResult
	select {
	case res = <-dom.ReadDataURL(ctx, f):
	case <-ctx.Done():
		return ctx.Err()
	}
	if res.Err != nil {
		c.env.Log.Error(ctx, "attach failed", "file", f.Name, "error", res.Err)
		return fmt.Errorf("attach %s: %w", f.Name, res.Err)
	}

	content, err := dom.ParseContent(s.Content())
	if err != nil {
		return fmt.Errorf("attach %s: %w", f.Name, err)
	}
	content.Append(dom.Media{Kind: kind, Src: res.URL})
	s.SetContent(content.String())
	c.env.Log.Debug(ctx, "attached", "file", f.Name, "kind", kind, "bytes", f.Size)
	return nil
}

func sizeLabel(n int64) string {
	const mb = 1 << 20
	const kb = 1 << 10
	switch {
	case n%mb == 0:
		return fmt.Sprintf("%d MB", n/mb)
	case n%kb == 0:
		return fmt.Sprintf("%d KB", n/kb)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
