package ui

import "io"

// File is an attachment chosen by the user.
type File struct {
	Name string
	// Size in bytes.
	Size int64
	// Type is a "major/minor" MIME type; may be empty when unknown.
	Type string
	Data io.Reader
}
