// Package store implements content-addressed serialisation of diagrams,
// rewrites and cones, and the outer versioned document that bundles a
// Store with a signature and workspace. See SPEC_FULL.md §4.7, §6.
package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the store package.
var (
	// ErrMissingKey indicates Unpack* was asked for a key absent from the
	// store.
	ErrMissingKey = errors.New("store: missing key")

	// ErrUnknownKind indicates Pack* was given a Diagram/Rewrite whose
	// concrete type this package does not recognise.
	ErrUnknownKind = errors.New("store: unrecognised diagram or rewrite kind")

	// ErrCorrupt indicates a serialised record's Kind tag did not match any
	// case this package knows how to unpack.
	ErrCorrupt = errors.New("store: corrupt serialised record")

	// ErrVersionMismatch names an unsupported Document version tag. No
	// function in this package returns it: Migrate reports unrecognised
	// versions, newer ones included, as ErrLegacyImportRequired.
	ErrVersionMismatch = errors.New("store: unsupported document version")

	// ErrLegacyImportRequired is returned by Migrate for any version tag it
	// cannot bring forward automatically, which covers document shapes old
	// enough to need a dedicated legacy importer (out of scope here).
	ErrLegacyImportRequired = errors.New("store: document requires legacy import")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
