package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dmitrijs2005/webdiary/internal/dom"
	"github.com/dmitrijs2005/webdiary/internal/ui"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}
)

var (
	styleHeader   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleTitle    = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleSelected = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleMeta     = lipgloss.NewStyle().Foreground(colorDim)
	styleExcerpt  = lipgloss.NewStyle().Foreground(colorDim)
	styleAlert    = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	styleBody     = lipgloss.NewStyle().PaddingLeft(2)
)

func thumbnailBadge(th ui.Thumbnail) string {
	switch th.Kind {
	case ui.ThumbnailVideo:
		return "[video]"
	case ui.ThumbnailImage:
		return "[image]"
	default:
		return "[     ]"
	}
}

// renderList prints the visible items numbered by their position in the
// full list, so "open <n>" keeps working while a search hides some of them.
func renderList(w io.Writer, items []ui.ListItem, searching bool, width int) {
	shown := 0
	for i, it := range items {
		if !it.Visible {
			continue
		}
		shown++

		marker := "  "
		title := styleTitle.Render(it.Title)
		if it.Selected {
			marker = styleSelected.Render("> ")
			title = styleSelected.Render(it.Title)
		}
		prefix := fmt.Sprintf("%s%3d %s ", marker, i+1, styleMeta.Render(thumbnailBadge(it.Thumbnail)))
		fmt.Fprintln(w, prefix+title)

		excerpt := strings.Join(strings.Fields(it.Text), " ")
		if room := width - 6; room > 0 {
			excerpt = ansi.Truncate(excerpt, room, "…")
		}
		fmt.Fprintln(w, "      "+styleExcerpt.Render(excerpt))
	}

	if shown == 0 {
		fmt.Fprintln(w, styleMeta.Render("  (no matching entries)"))
	}
	if searching {
		fmt.Fprintln(w, styleMeta.Render(fmt.Sprintf("  %d of %d entries match; type 'close' to show all", shown, len(items))))
	}
}

// renderEntry prints the loaded entry: its text, then one line per
// attachment.
func renderEntry(w io.Writer, t *Terminal) {
	fmt.Fprintln(w, styleHeader.Render(t.docTitle))
	title := t.title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintln(w, styleTitle.Render(title))
	if t.writeDate != "" {
		fmt.Fprintln(w, styleMeta.Render(t.writeDate))
	}

	content, err := dom.ParseContent(t.content)
	if err != nil {
		fmt.Fprintln(w, styleAlert.Render(err.Error()))
		return
	}
	if text := strings.TrimSpace(content.Text()); text != "" {
		fmt.Fprintln(w, styleBody.Width(max(t.width-2, 20)).Render(text))
	}

	var media []string
	for _, tag := range []string{"img", "video", "audio"} {
		if n := content.Count(tag); n > 0 {
			media = append(media, fmt.Sprintf("%d %s", n, tag))
		}
	}
	if len(media) > 0 {
		fmt.Fprintln(w, styleMeta.Render("attachments: "+strings.Join(media, ", ")))
	}
}
