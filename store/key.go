package store

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DiagramTag, RewriteTag and ConeTag are never instantiated; they only
// exist to keep Key[DiagramTag], Key[RewriteTag] and Key[ConeTag] distinct
// types, mirroring the phantom-typed Key<K> the original serialiser uses
// to stop a diagram key and a rewrite key from being interchanged by
// accident.
type (
	DiagramTag struct{}
	RewriteTag struct{}
	ConeTag    struct{}
)

// Key is a 128-bit content hash of a serialised record, tagged with the
// kind of record it addresses. Two records with identical serialised form
// always produce the same Key; distinct records collide only as likely as
// the underlying 128 bits allow.
type Key[K any] struct {
	Hi, Lo uint64
}

func (k Key[K]) String() string {
	return fmt.Sprintf("%016x%016x", k.Hi, k.Lo)
}

// MarshalYAML renders a Key as its hex string, since a struct key is
// awkward as a YAML mapping key; Document flattens the Store's maps to
// key/value entry lists for the same reason (see document.go).
func (k Key[K]) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML parses a Key back from its hex string.
func (k *Key[K]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if len(s) != 32 {
		return wrapf(ErrCorrupt, "key %q: want 32 hex characters, got %d", s, len(s))
	}
	hi, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return wrapf(ErrCorrupt, "key %q: %v", s, err)
	}
	lo, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return wrapf(ErrCorrupt, "key %q: %v", s, err)
	}
	k.Hi, k.Lo = hi, lo
	return nil
}
