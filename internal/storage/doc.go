// Package storage is the diary's persistent key/value store.
//
// # Overview
//
// Store is a small synchronous contract (Get, Set, Delete, Keys) in the
// spirit of browser local storage: string keys, opaque values, and two
// well-known write failures:
//
//   - ErrQuotaExceeded: the write would push the total size of stored keys
//     and values past the configured quota, or the disk is full.
//   - ErrSecurity: the store refuses writes (read-only mode, permission or
//     authorization failure).
//
// SQLiteStore implements Store on a single sqlite table managed by goose
// migrations embedded in the binary (see the migrations subpackage).
//
// Typical Usage
//
//	store, err := storage.Open(ctx, "diary.db", storage.OpenOptions{QuotaBytes: 5 << 20})
//	_ = store.Set(ctx, "diary_1700000000000", data)
//	v, _ := store.Get(ctx, "diary_1700000000000") // nil, nil when absent
//	keys, _ := store.Keys(ctx)
//	_ = store.Delete(ctx, "diary_1700000000000")
//	_ = store.Close()
package storage
