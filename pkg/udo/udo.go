package udo

import "sort"

// Udo is a universal data object: a mapping from text keys to text values.
// Keys are unique by construction; iteration order carries no meaning.
type Udo map[string]string

// Clone returns a shallow copy. A nil Udo clones to an empty, non-nil Udo.
func (u Udo) Clone() Udo {
	out := make(Udo, len(u))
	for k, v := range u {
		out[k] = v
	}
	return out
}

// Equal reports whether u and other hold the same keys and values.
// A nil Udo equals an empty one.
func (u Udo) Equal(other Udo) bool {
	if len(u) != len(other) {
		return false
	}
	for k, v := range u {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Keys returns the keys in ascending order.
func (u Udo) Keys() []string {
	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
