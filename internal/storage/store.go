// Package storage persists whole collections for the catalog and the
// favorites book. Every store saves and loads a complete slice.
package storage

// Store loads and saves one collection. Load returns an empty slice, not an
// error, when nothing has been saved yet.
type Store[T any] interface {
	Load() ([]T, error)
	Save(items []T) error
}
