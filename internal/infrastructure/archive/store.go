// Package archive keeps a durable copy of filed declarations in object
// storage, separate from the local export delivery.
package archive

import "context"

// Store archives export artifacts under a key.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// NopStore discards everything. Used when archiving is disabled.
type NopStore struct{}

// Put implements Store
func (NopStore) Put(context.Context, string, []byte, string) error {
	return nil
}
