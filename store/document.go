package store

import (
	"gopkg.in/yaml.v3"

	"github.com/globular-io/globular/common"
)

// CurrentVersion is the version tag NewDocument stamps on every new
// Document.
const CurrentVersion = "0.1.3"

// GeneratorEntry names one generator in a Document's signature: its
// identity, a display name, and the key of the diagram it denotes.
// Mirrors the original serialiser's GeneratorData.
type GeneratorEntry struct {
	Generator common.Generator `yaml:"generator"`
	Name      string           `yaml:"name"`
	Diagram   Key[DiagramTag]  `yaml:"diagram"`
}

// Workspace records the diagram currently open for editing and the slice
// path navigated to reach the view presently shown.
type Workspace struct {
	Diagram Key[DiagramTag]     `yaml:"diagram"`
	Path    []common.SliceIndex `yaml:"path"`
}

// Metadata is free-form document annotation (title, author, timestamps);
// unconstrained by this package, carried through unchanged.
type Metadata map[string]string

// Document is the outer, versioned record persisted to disk: a version
// tag, a Store of packed diagrams/rewrites/cones, the named generators
// that give those diagrams meaning, an optional open workspace, and
// metadata. It is the unit Marshal/Unmarshal and Migrate operate on.
type Document struct {
	Version   string           `yaml:"version"`
	Store     *Store           `yaml:"store"`
	Signature []GeneratorEntry `yaml:"signature"`
	Workspace *Workspace       `yaml:"workspace,omitempty"`
	Metadata  Metadata         `yaml:"metadata,omitempty"`
}

// NewDocument returns an empty, current-version Document with a fresh
// Store.
func NewDocument() *Document {
	return &Document{
		Version: CurrentVersion,
		Store:   New(),
	}
}

// storeDoc is Store's own YAML shape: the three content-addressed maps
// flattened to sorted key/value entry lists, since a struct-typed map key
// doesn't round-trip through YAML mappings the way the original
// serialiser's BTreeMap<Key, _> does through MessagePack.
type storeDoc struct {
	Diagrams []diagramEntry `yaml:"diagrams"`
	Rewrites []rewriteEntry `yaml:"rewrites"`
	Cones    []coneEntry    `yaml:"cones"`
}

type diagramEntry struct {
	Key Key[DiagramTag] `yaml:"key"`
	Ser DiagramSer      `yaml:"ser"`
}

type rewriteEntry struct {
	Key Key[RewriteTag] `yaml:"key"`
	Ser RewriteSer      `yaml:"ser"`
}

type coneEntry struct {
	Key Key[ConeTag] `yaml:"key"`
	Ser ConeSer      `yaml:"ser"`
}

// MarshalYAML flattens Store's maps into sorted entry lists so the
// encoding is deterministic byte-for-byte across repeated marshals of the
// same content.
func (s *Store) MarshalYAML() (any, error) {
	doc := storeDoc{
		Diagrams: make([]diagramEntry, 0, len(s.Diagrams)),
		Rewrites: make([]rewriteEntry, 0, len(s.Rewrites)),
		Cones:    make([]coneEntry, 0, len(s.Cones)),
	}
	for k, v := range s.Diagrams {
		doc.Diagrams = append(doc.Diagrams, diagramEntry{Key: k, Ser: v})
	}
	for k, v := range s.Rewrites {
		doc.Rewrites = append(doc.Rewrites, rewriteEntry{Key: k, Ser: v})
	}
	for k, v := range s.Cones {
		doc.Cones = append(doc.Cones, coneEntry{Key: k, Ser: v})
	}
	sortByKeyString(doc.Diagrams, func(e diagramEntry) string { return e.Key.String() })
	sortByKeyString(doc.Rewrites, func(e rewriteEntry) string { return e.Key.String() })
	sortByKeyString(doc.Cones, func(e coneEntry) string { return e.Key.String() })
	return doc, nil
}

func sortByKeyString[T any](s []T, keyOf func(T) string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && keyOf(s[j-1]) > keyOf(s[j]); j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// UnmarshalYAML rebuilds Store's maps from the flattened entry lists.
func (s *Store) UnmarshalYAML(node *yaml.Node) error {
	var doc storeDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	s.Diagrams = make(map[Key[DiagramTag]]DiagramSer, len(doc.Diagrams))
	for _, e := range doc.Diagrams {
		s.Diagrams[e.Key] = e.Ser
	}
	s.Rewrites = make(map[Key[RewriteTag]]RewriteSer, len(doc.Rewrites))
	for _, e := range doc.Rewrites {
		s.Rewrites[e.Key] = e.Ser
	}
	s.Cones = make(map[Key[ConeTag]]ConeSer, len(doc.Cones))
	for _, e := range doc.Cones {
		s.Cones[e.Key] = e.Ser
	}
	return nil
}

// Migrate brings a Document parsed from an older on-disk version forward
// to CurrentVersion. Versions predating the signature/workspace split
// this package carries (anything before "0.1.0") cannot be migrated
// automatically and require the legacy importer the spec places out of
// scope. Migrate reports every version tag it does not recognise, older
// or newer, as ErrLegacyImportRequired.
func Migrate(d *Document) error {
	switch d.Version {
	case CurrentVersion:
		return nil
	case "0.1.0", "0.1.1", "0.1.2":
		d.Version = CurrentVersion
		if d.Metadata == nil {
			d.Metadata = Metadata{}
		}
		return nil
	default:
		return wrapf(ErrLegacyImportRequired, "document version %q", d.Version)
	}
}
