// Package ui is the boundary between the diary controller and whatever
// presents it. A Surface exposes a small capability set for events
// (OnClick, OnChange, OnLoad, OnUnload), the editing area, the entry list
// and modal dialogs. The controller only ever talks to these interfaces, so
// it can be driven by the terminal front end or by a fake in tests.
package ui

import "context"

// Control names an interactive element of the surface.
type Control string

const (
	ControlCreate Control = "create"
	ControlSave   Control = "save"
	ControlDelete Control = "delete"
	ControlSearch Control = "search"
	ControlClose  Control = "close"
	ControlInfo   Control = "info"
	// ControlItem is a list entry; the clicked key travels in Event.Key.
	ControlItem Control = "item"
	// ControlFile is the attachment input; chosen files travel in Event.Files.
	ControlFile Control = "file"
)

// Event describes one user or lifecycle event.
type Event struct {
	Target Control
	Key    string
	Files  []File
}

// Handler reacts to an Event.
type Handler func(ctx context.Context, ev Event) error

// UnloadHandler decides whether the surface may go away.
type UnloadHandler func(ctx context.Context) bool

// Events is the capability set handlers are registered against.
type Events interface {
	OnClick(target Control, h Handler)
	OnChange(target Control, h Handler)
	OnLoad(h Handler)
	OnUnload(h UnloadHandler)
}

// Editor is the editing area for the selected entry.
type Editor interface {
	Title() string
	SetTitle(title string)
	// Content is HTML.
	Content() string
	SetContent(html string)
	SetWriteDate(text string)
	SetDocumentTitle(text string)
}

// List shows the projection of stored entries.
type List interface {
	// SetList replaces every item on screen, in display order.
	SetList(items []ListItem)
	ScrollTo(key string)
	// SetCloseVisible shows the control that dismisses an active search.
	SetCloseVisible(visible bool)
}

// Dialogs are modal interactions with the user.
type Dialogs interface {
	Alert(msg string)
	// Prompt returns ok=false when the user cancels.
	Prompt(msg string) (answer string, ok bool)
	Confirm(msg string) bool
}

// Surface is everything the controller needs from a front end.
type Surface interface {
	Events
	Editor
	List
	Dialogs
}
