// Package inmemorystore provides an ephemeral, in-memory implementation of
// library.Library.
//
// # Characteristics
//
//   - **Ephemeral:** Created fresh for each process, never persisted
//   - **Ordered:** Books are kept in insertion order; duplicate titles are allowed
//   - **Append/Filter only:** The sequence changes through AddBook (append) and
//     RemoveBook (filter by title). Stored books are never edited in place.
//
// # Concurrency Model
//
// The command loop drives the store from a single goroutine, but the store
// still guards its slice with a sync.RWMutex so it stays safe if it is ever
// shared.
package inmemorystore
