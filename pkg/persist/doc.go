// Package persist loads and saves a single UDO through a text storage
// location without ever failing the caller on storage problems.
//
// A [Coordinator] reads the stored text and tries its decoders in order
// (JSON first, then the legacy percent-encoding). When nothing can be
// decoded, because the location is missing, unreadable or corrupt, the
// caller's default is adopted and written back immediately. Writes always use
// the primary codec, so a file in the legacy format is upgraded the first
// time it is saved.
//
// Write faults are swallowed: the in-memory mapping stays usable when storage
// is not. The only error either call returns is a *udo.EncodeError, which
// means the mapping itself is invalid.
//
// # Usage
//
//	c := persist.Open(filepath.Join(home, ".udo", "udo.json"))
//
//	u, err := c.Load(udo.Udo{"visitor_id": newID()})
//	if err != nil {
//	    return err // mapping could not be encoded
//	}
//	u["last_seen"] = now
//	if err := c.Save(u); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// A Coordinator performs no locking. Two coordinators writing the same
// location race and the last writer wins.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package persist
