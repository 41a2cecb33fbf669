package diary

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/webdiary/internal/dom"
	"github.com/dmitrijs2005/webdiary/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(name, typ string, size int) ui.File {
	return ui.File{Name: name, Type: typ, Size: int64(size), Data: bytes.NewReader(make([]byte, size))}
}

func attachFixture(t *testing.T) *fixture {
	t.Helper()
	fx := newFixture(t, nil)
	require.NoError(t, fx.ctrl.Start(fx.ctx))
	fx.surface.content = "<p>note</p>"
	return fx
}

func TestHandleFiles_SizeLimit(t *testing.T) {
	fx := attachFixture(t)

	require.NoError(t, fx.ctrl.HandleFiles(fx.ctx, []ui.File{file("big.png", "image/png", 1<<20)}))

	assert.Equal(t, []string{"Only files smaller than 1 MB can be attached"}, fx.surface.alerts)
	assert.Equal(t, "<p>note</p>", fx.surface.content)
}

func TestHandleFiles_JustUnderLimitImage(t *testing.T) {
	fx := attachFixture(t)

	require.NoError(t, fx.ctrl.HandleFiles(fx.ctx, []ui.File{file("ok.png", "image/png", 1<<20-1)}))

	assert.Empty(t, fx.surface.alerts)
	assert.True(t, strings.HasPrefix(fx.surface.content, `<p>note</p><img src="data:image/png;base64,`))
	assert.True(t, strings.HasSuffix(fx.surface.content, `" contenteditable="false"/>`))

	c, err := dom.ParseContent(fx.surface.content)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count("img"))
}

func TestHandleFiles_MediaKinds(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"video/mp4", `<video src="data:video/mp4;base64,AAA=" controls="" contenteditable="false"></video>`},
		{"audio/mpeg", `<audio src="data:audio/mpeg;base64,AAA=" controls="" contenteditable="false"></audio>`},
		{"image/gif", `<img src="data:image/gif;base64,AAA=" contenteditable="false"/>`},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			fx := attachFixture(t)
			require.NoError(t, fx.ctrl.HandleFiles(fx.ctx, []ui.File{file("f", tt.typ, 2)}))
			assert.Equal(t, "<p>note</p>"+tt.want, fx.surface.content)
		})
	}
}

func TestHandleFiles_UnsupportedType(t *testing.T) {
	fx := attachFixture(t)

	require.NoError(t, fx.ctrl.HandleFiles(fx.ctx, []ui.File{file("doc.pdf", "application/pdf", 10)}))

	assert.Equal(t, []string{MsgUnsupported}, fx.surface.alerts)
	assert.Equal(t, "<p>note</p>", fx.surface.content)
}

func TestHandleFiles_OnlyFirstFile(t *testing.T) {
	fx := attachFixture(t)

	files := []ui.File{file("a.png", "image/png", 1), file("b.mp4", "video/mp4", 1)}
	require.NoError(t, fx.ctrl.HandleFiles(fx.ctx, files))

	c, err := dom.ParseContent(fx.surface.content)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count("img"))
	assert.Equal(t, 0, c.Count("video"))
}

func TestHandleFiles_NoFiles(t *testing.T) {
	fx := attachFixture(t)
	require.NoError(t, fx.ctrl.HandleFiles(fx.ctx, nil))
	assert.Equal(t, "<p>note</p>", fx.surface.content)
}

func TestHandleFiles_Cancelled(t *testing.T) {
	fx := attachFixture(t)
	ctx, cancel := context.WithCancel(fx.ctx)
	cancel()

	err := fx.ctrl.HandleFiles(ctx, []ui.File{file("a.png", "image/png", 1)})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "<p>note</p>", fx.surface.content)
}

func TestHandleFiles_AttachmentIsSaved(t *testing.T) {
	fx := attachFixture(t)
	require.NoError(t, fx.ctrl.HandleFiles(fx.ctx, []ui.File{file("a.png", "image/png", 1)}))
	require.NoError(t, fx.ctrl.Save(fx.ctx, fx.ctrl.Current()))

	items := fx.ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, ui.ThumbnailImage, items[0].Thumbnail.Kind)
	assert.Equal(t, "data:image/png;base64,AA==", items[0].Thumbnail.Src)
	assert.Equal(t, "note", items[0].Text)
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "1 MB", sizeLabel(1<<20))
	assert.Equal(t, "512 KB", sizeLabel(512<<10))
	assert.Equal(t, "1000 bytes", sizeLabel(1000))
}
