// Package cli provides the interactive diary client for the terminal.
//
// It wires configuration, the local sqlite store and the diary controller to
// a Terminal, which implements ui.Surface over stdin/stdout, and runs a
// read–eval–print loop on top of it.
//
// Commands:
//   - list / open <n>        show the entries, load one
//   - new / save / delete    create, save or delete the loaded entry
//   - title <text> / write   edit the title, write the text as markdown
//   - attach <path>          attach an image, video or audio file
//   - search / close         filter the list by a regular expression
//   - show / info / exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
