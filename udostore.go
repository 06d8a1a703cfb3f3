// Package udostore persists a universal data object (UDO) to a local file.
//
// Example usage:
//
//	store := udostore.Open(udostore.DefaultPath())
//	u, err := store.Load(udostore.Udo{"visitor_id": id})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u["consent"] = "granted"
//	if err := store.Save(u); err != nil {
//	    log.Fatal(err)
//	}
//
// The sub-packages can be imported directly: pkg/udo for the mapping and its
// codecs, pkg/textstore for storage, pkg/persist for the coordinator.
package udostore

import (
	"github.com/bft-labs/udostore/pkg/persist"
	"github.com/bft-labs/udostore/pkg/udo"
)

// Udo is the persisted key-value mapping.
type Udo = udo.Udo

// Store is the coordinator that loads and saves a Udo.
type Store = persist.Coordinator

// Option configures a Store.
type Option = persist.Option

// Open returns a Store backed by the file at path.
func Open(path string, opts ...Option) *Store {
	return persist.Open(path, opts...)
}

// DefaultPath returns the location the udo CLI uses when none is configured.
func DefaultPath() string {
	return persist.DefaultPath()
}
