// Package globular implements the algebraic core of a finitely-presented
// globular n-category proof assistant: an inductive diagram/rewrite model,
// a rewrite composition and factorisation algebra, a contraction engine,
// a graph-explosion operator over slices of a diagram, and content-
// addressed structural serialisation.
//
// The module is organized as a flat set of packages, each one dependency
// layer on the last:
//
//	idx/        — typed dense-integer indices and arena storage
//	common/     — shared vocabulary: generators, boundaries, heights, slices
//	diagram/    — the inductive Diagram/Rewrite model and its operations
//	check/      — well-formedness validation
//	monotone/   — lazy monotone-function enumeration
//	factor/     — lazy rewrite factorisation
//	contract/   — the contraction (colimit) engine
//	slicegraph/ — SliceGraph and the explosion operator
//	store/      — content-addressed serialisation and the document format
//	signature/  — named-generator surface API
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full
// specification and the grounding of each package's design.
package globular
