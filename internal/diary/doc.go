// Package diary is the controller of the diary editor.
//
// Entries are stored as JSON records under keys of the form
// "diary_<unix-epoch-ms>". The on-screen list is never edited directly: after
// every operation it is recomputed from the store (a snapshot), ordered, and
// handed to the surface as a whole. Records that cannot be read are purged
// wherever they are found and a warning is logged.
//
// List order: keys saved during the current session come first, most
// recently saved first; every other key follows by creation time, newest
// first.
package diary
