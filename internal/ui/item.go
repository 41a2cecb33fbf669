package ui

// ThumbnailKind says what a thumbnail shows.
type ThumbnailKind string

const (
	ThumbnailVideo       ThumbnailKind = "video"
	ThumbnailImage       ThumbnailKind = "image"
	ThumbnailPlaceholder ThumbnailKind = "placeholder"
)

// Thumbnail is the small preview shown next to a list entry. Video
// thumbnails play looped and muted.
type Thumbnail struct {
	Kind ThumbnailKind
	Src  string
}

// ListItem is the on-screen summary of one stored entry.
type ListItem struct {
	Key       string
	Thumbnail Thumbnail
	Title     string
	Text      string
	Visible   bool
	Selected  bool
}

// TextContent is what a search matches against: the title followed by the
// excerpt, as they appear on screen.
func (it ListItem) TextContent() string {
	return it.Title + it.Text
}
