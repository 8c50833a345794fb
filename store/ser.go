package store

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/globular-io/globular/common"
)

// DiagramSerKind distinguishes the two serialised diagram shapes.
type DiagramSerKind int

const (
	D0Ser DiagramSerKind = iota
	DnSer
)

// DiagramSer is the serialisable form of a diagram.Diagram: a generator
// for Diagram0, or a dimension plus packed source and cospans for
// DiagramN.
type DiagramSer struct {
	Kind      DiagramSerKind  `yaml:"kind"`
	Generator common.Generator `yaml:"generator,omitempty"`
	Dimension int             `yaml:"dimension,omitempty"`
	Source    Key[DiagramTag] `yaml:"source,omitempty"`
	Cospans   []CospanSer     `yaml:"cospans,omitempty"`
}

// CospanSer is a Cospan with its rewrites replaced by their keys.
type CospanSer struct {
	Forward  Key[RewriteTag] `yaml:"forward"`
	Backward Key[RewriteTag] `yaml:"backward"`
}

// RewriteSerKind distinguishes the two serialised rewrite shapes.
type RewriteSerKind int

const (
	R0Ser RewriteSerKind = iota
	RnSer
)

// RewriteSer is the serialisable form of a diagram.Rewrite: an optional
// (source, target) generator pair for Rewrite0 (absent on both sides for
// the no-generator identity placeholder), or a dimension plus packed cones
// for RewriteN.
type RewriteSer struct {
	Kind      RewriteSerKind    `yaml:"kind"`
	Source    *common.Generator `yaml:"source,omitempty"`
	Target    *common.Generator `yaml:"target,omitempty"`
	Dimension int               `yaml:"dimension,omitempty"`
	Cones     []ConeWithIndexSer `yaml:"cones,omitempty"`
}

// ConeWithIndexSer pairs a cone's source height with the key of its
// packed, potentially-shared body.
type ConeWithIndexSer struct {
	Index int          `yaml:"index"`
	Cone  Key[ConeTag] `yaml:"cone"`
}

// ConeSer is the serialisable form of a diagram.Cone's body (everything
// but the Index, which lives alongside the key in ConeWithIndexSer so
// structurally identical cone bodies at different positions share one
// stored record).
type ConeSer struct {
	Source  []CospanSer     `yaml:"source"`
	Target  CospanSer       `yaml:"target"`
	Slices  []Key[RewriteTag] `yaml:"slices"`
}

// The following append* helpers build a canonical byte encoding of a
// serialised record for hashing: fixed-width little-endian integers in
// field-declaration order, with no length-prefix ambiguity since every
// slice is itself preceded by its length.

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendInt(buf []byte, v int) []byte { return appendUint64(buf, uint64(v)) }

func appendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

func appendGenerator(buf []byte, g common.Generator) []byte {
	buf = appendInt(buf, g.ID)
	buf = appendInt(buf, g.Dimension)
	return buf
}

func appendKey[K any](buf []byte, k Key[K]) []byte {
	buf = appendUint64(buf, k.Hi)
	buf = appendUint64(buf, k.Lo)
	return buf
}

func appendCospanSer(buf []byte, c CospanSer) []byte {
	buf = appendKey(buf, c.Forward)
	buf = appendKey(buf, c.Backward)
	return buf
}

// keyFromBytes derives a Key from canonical bytes using two differently
// domain-separated xxhash digests folded into 128 bits: xxhash itself
// fixes its seed, so the second half is taken over the same bytes
// prefixed with a marker rather than over a second seed.
func keyFromBytes[K any](b []byte) Key[K] {
	hi := xxhash.Sum64(b)
	sep := make([]byte, len(b)+1)
	sep[0] = 0x5a
	copy(sep[1:], b)
	lo := xxhash.Sum64(sep)
	return Key[K]{Hi: hi, Lo: lo}
}

func hashDiagramSer(ser DiagramSer) Key[DiagramTag] {
	var buf []byte
	buf = appendInt(buf, int(ser.Kind))
	switch ser.Kind {
	case D0Ser:
		buf = appendGenerator(buf, ser.Generator)
	case DnSer:
		buf = appendInt(buf, ser.Dimension)
		buf = appendKey(buf, ser.Source)
		buf = appendInt(buf, len(ser.Cospans))
		for _, c := range ser.Cospans {
			buf = appendCospanSer(buf, c)
		}
	}
	return keyFromBytes[DiagramTag](buf)
}

func hashRewriteSer(ser RewriteSer) Key[RewriteTag] {
	var buf []byte
	buf = appendInt(buf, int(ser.Kind))
	switch ser.Kind {
	case R0Ser:
		buf = appendBool(buf, ser.Source != nil)
		if ser.Source != nil {
			buf = appendGenerator(buf, *ser.Source)
		}
		buf = appendBool(buf, ser.Target != nil)
		if ser.Target != nil {
			buf = appendGenerator(buf, *ser.Target)
		}
	case RnSer:
		buf = appendInt(buf, ser.Dimension)
		buf = appendInt(buf, len(ser.Cones))
		for _, c := range ser.Cones {
			buf = appendInt(buf, c.Index)
			buf = appendKey(buf, c.Cone)
		}
	}
	return keyFromBytes[RewriteTag](buf)
}

func hashConeSer(ser ConeSer) Key[ConeTag] {
	var buf []byte
	buf = appendInt(buf, len(ser.Source))
	for _, c := range ser.Source {
		buf = appendCospanSer(buf, c)
	}
	buf = appendCospanSer(buf, ser.Target)
	buf = appendInt(buf, len(ser.Slices))
	for _, k := range ser.Slices {
		buf = appendKey(buf, k)
	}
	return keyFromBytes[ConeTag](buf)
}
