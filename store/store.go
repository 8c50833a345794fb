package store

import (
	"github.com/globular-io/globular/diagram"
)

// Store holds three content-addressed maps: serialised diagrams,
// rewrites and cones, each keyed by the hash of its own serialised form.
// Packing the same diagram, rewrite or cone twice (by content, not by Go
// value identity) produces the same key and simply re-stores the same
// entry; Store carries no separate "already seen this exact Go value"
// cache, since content-addressing already makes Pack idempotent without
// one.
//
// A Store is an explicitly-passed, owned value: nothing in this package
// reaches for a global store or protects access with a mutex, matching
// the single-threaded-per-call model the rest of this module assumes.
type Store struct {
	Diagrams map[Key[DiagramTag]]DiagramSer
	Rewrites map[Key[RewriteTag]]RewriteSer
	Cones    map[Key[ConeTag]]ConeSer
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		Diagrams: make(map[Key[DiagramTag]]DiagramSer),
		Rewrites: make(map[Key[RewriteTag]]RewriteSer),
		Cones:    make(map[Key[ConeTag]]ConeSer),
	}
}

// PackDiagram serialises d (recursively packing its source and cospans
// first, for DiagramN) and returns its key.
func (s *Store) PackDiagram(d diagram.Diagram) (Key[DiagramTag], error) {
	switch v := d.(type) {
	case diagram.Diagram0:
		ser := DiagramSer{Kind: D0Ser, Generator: v.Generator}
		key := hashDiagramSer(ser)
		s.Diagrams[key] = ser
		return key, nil

	case diagram.DiagramN:
		srcKey, err := s.PackDiagram(v.Source())
		if err != nil {
			return Key[DiagramTag]{}, err
		}
		cospans := make([]CospanSer, len(v.Cospans()))
		for i, c := range v.Cospans() {
			fk, err := s.PackRewrite(c.Forward)
			if err != nil {
				return Key[DiagramTag]{}, wrapf(ErrUnknownKind, "pack_diagram: cospan %d forward: %v", i, err)
			}
			bk, err := s.PackRewrite(c.Backward)
			if err != nil {
				return Key[DiagramTag]{}, wrapf(ErrUnknownKind, "pack_diagram: cospan %d backward: %v", i, err)
			}
			cospans[i] = CospanSer{Forward: fk, Backward: bk}
		}
		ser := DiagramSer{Kind: DnSer, Dimension: v.Dimension(), Source: srcKey, Cospans: cospans}
		key := hashDiagramSer(ser)
		s.Diagrams[key] = ser
		return key, nil

	default:
		return Key[DiagramTag]{}, wrapf(ErrUnknownKind, "pack_diagram: unrecognised diagram type %T", d)
	}
}

// PackRewrite serialises r (recursively packing its cones, for RewriteN)
// and returns its key.
func (s *Store) PackRewrite(r diagram.Rewrite) (Key[RewriteTag], error) {
	switch v := r.(type) {
	case diagram.Rewrite0:
		ser := RewriteSer{Kind: R0Ser}
		if src, tgt, ok := v.Endpoints(); ok {
			ser.Source, ser.Target = &src, &tgt
		}
		key := hashRewriteSer(ser)
		s.Rewrites[key] = ser
		return key, nil

	case diagram.RewriteN:
		cones := make([]ConeWithIndexSer, len(v.Cones()))
		for i, c := range v.Cones() {
			cw, err := s.packCone(c)
			if err != nil {
				return Key[RewriteTag]{}, wrapf(ErrUnknownKind, "pack_rewrite: cone %d: %v", i, err)
			}
			cones[i] = cw
		}
		ser := RewriteSer{Kind: RnSer, Dimension: v.Dimension(), Cones: cones}
		key := hashRewriteSer(ser)
		s.Rewrites[key] = ser
		return key, nil

	default:
		return Key[RewriteTag]{}, wrapf(ErrUnknownKind, "pack_rewrite: unrecognised rewrite type %T", r)
	}
}

func (s *Store) packCone(c diagram.Cone) (ConeWithIndexSer, error) {
	source := make([]CospanSer, len(c.Source))
	for i, cs := range c.Source {
		fk, err := s.PackRewrite(cs.Forward)
		if err != nil {
			return ConeWithIndexSer{}, err
		}
		bk, err := s.PackRewrite(cs.Backward)
		if err != nil {
			return ConeWithIndexSer{}, err
		}
		source[i] = CospanSer{Forward: fk, Backward: bk}
	}

	tfk, err := s.PackRewrite(c.Target.Forward)
	if err != nil {
		return ConeWithIndexSer{}, err
	}
	tbk, err := s.PackRewrite(c.Target.Backward)
	if err != nil {
		return ConeWithIndexSer{}, err
	}

	slices := make([]Key[RewriteTag], len(c.SingularSlices))
	for i, sl := range c.SingularSlices {
		k, err := s.PackRewrite(sl)
		if err != nil {
			return ConeWithIndexSer{}, err
		}
		slices[i] = k
	}

	ser := ConeSer{Source: source, Target: CospanSer{Forward: tfk, Backward: tbk}, Slices: slices}
	key := hashConeSer(ser)
	s.Cones[key] = ser
	return ConeWithIndexSer{Index: c.Index, Cone: key}, nil
}

// UnpackDiagram is the inverse of PackDiagram.
func (s *Store) UnpackDiagram(key Key[DiagramTag]) (diagram.Diagram, error) {
	ser, ok := s.Diagrams[key]
	if !ok {
		return nil, wrapf(ErrMissingKey, "diagram %s", key)
	}
	switch ser.Kind {
	case D0Ser:
		return diagram.NewDiagram0(ser.Generator), nil
	case DnSer:
		source, err := s.UnpackDiagram(ser.Source)
		if err != nil {
			return nil, err
		}
		cospans := make([]diagram.Cospan, len(ser.Cospans))
		for i, cs := range ser.Cospans {
			f, err := s.UnpackRewrite(cs.Forward)
			if err != nil {
				return nil, wrapf(ErrMissingKey, "diagram %s: cospan %d forward: %v", key, i, err)
			}
			b, err := s.UnpackRewrite(cs.Backward)
			if err != nil {
				return nil, wrapf(ErrMissingKey, "diagram %s: cospan %d backward: %v", key, i, err)
			}
			cospans[i] = diagram.Cospan{Forward: f, Backward: b}
		}
		return diagram.NewDiagramNUnsafe(source, cospans), nil
	default:
		return nil, wrapf(ErrCorrupt, "diagram %s: unknown kind %d", key, ser.Kind)
	}
}

// UnpackRewrite is the inverse of PackRewrite.
func (s *Store) UnpackRewrite(key Key[RewriteTag]) (diagram.Rewrite, error) {
	ser, ok := s.Rewrites[key]
	if !ok {
		return nil, wrapf(ErrMissingKey, "rewrite %s", key)
	}
	switch ser.Kind {
	case R0Ser:
		if ser.Source == nil || ser.Target == nil {
			return diagram.IdentityRewrite0(), nil
		}
		return diagram.NewRewrite0(*ser.Source, *ser.Target, nil), nil
	case RnSer:
		cones := make([]diagram.Cone, len(ser.Cones))
		for i, cw := range ser.Cones {
			cone, err := s.unpackCone(cw)
			if err != nil {
				return nil, wrapf(ErrMissingKey, "rewrite %s: cone %d: %v", key, i, err)
			}
			cones[i] = cone
		}
		return diagram.NewRewriteNUnsafe(ser.Dimension, cones), nil
	default:
		return nil, wrapf(ErrCorrupt, "rewrite %s: unknown kind %d", key, ser.Kind)
	}
}

func (s *Store) unpackCone(cw ConeWithIndexSer) (diagram.Cone, error) {
	ser, ok := s.Cones[cw.Cone]
	if !ok {
		return diagram.Cone{}, wrapf(ErrMissingKey, "cone %s", cw.Cone)
	}

	source := make([]diagram.Cospan, len(ser.Source))
	for i, cs := range ser.Source {
		f, err := s.UnpackRewrite(cs.Forward)
		if err != nil {
			return diagram.Cone{}, err
		}
		b, err := s.UnpackRewrite(cs.Backward)
		if err != nil {
			return diagram.Cone{}, err
		}
		source[i] = diagram.Cospan{Forward: f, Backward: b}
	}

	tf, err := s.UnpackRewrite(ser.Target.Forward)
	if err != nil {
		return diagram.Cone{}, err
	}
	tb, err := s.UnpackRewrite(ser.Target.Backward)
	if err != nil {
		return diagram.Cone{}, err
	}

	singular := make([]diagram.Rewrite, len(ser.Slices))
	for i, sk := range ser.Slices {
		sl, err := s.UnpackRewrite(sk)
		if err != nil {
			return diagram.Cone{}, err
		}
		singular[i] = sl
	}

	// RegularSlices is not stored: it is implied by Source and
	// SingularSlices, so it is recomputed here the same way
	// contract/assemble.go builds it, whatever RegularSlices the packed
	// Cone carried.
	var regular []diagram.Rewrite
	if len(singular) > 0 {
		regular = make([]diagram.Rewrite, len(singular)+1)
		for i := 0; i < len(singular); i++ {
			rk, err := diagram.Compose(source[i].Forward, singular[i])
			if err != nil {
				return diagram.Cone{}, err
			}
			regular[i] = rk
		}
		last, err := diagram.Compose(source[len(singular)-1].Backward, singular[len(singular)-1])
		if err != nil {
			return diagram.Cone{}, err
		}
		regular[len(singular)] = last
	}

	return diagram.Cone{
		Index:          cw.Index,
		Source:         source,
		Target:         diagram.Cospan{Forward: tf, Backward: tb},
		RegularSlices:  regular,
		SingularSlices: singular,
	}, nil
}
