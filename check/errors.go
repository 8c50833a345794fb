// Package check implements well-formedness checking for diagrams and
// rewrites: CheckDiagram and CheckRewrite walk a value's structure
// (caching each diagram's and rewrite's result for the length of one call)
// assembling an accumulating error tree rather than stopping at the first
// problem found.
package check

import (
	"fmt"

	"github.com/globular-io/globular/common"
)

// MalformedDiagram is one node of the error tree CheckDiagram returns.
type MalformedDiagram interface {
	error
	isMalformedDiagram()
}

// SliceMalformed reports that the slice at Height failed its own
// (recursive) check.
type SliceMalformed struct {
	Height common.Height
	Errors []MalformedDiagram
}

func (SliceMalformed) isMalformedDiagram() {}
func (e SliceMalformed) Error() string {
	return fmt.Sprintf("slice %s is malformed: %v", e.Height, e.Errors)
}

// RewriteMalformed reports that the cospan rewrite at Index, in
// Direction, failed its own (recursive) check.
type RewriteMalformed struct {
	Index     int
	Direction common.Direction
	Errors    []MalformedRewrite
}

func (RewriteMalformed) isMalformedDiagram() {}
func (e RewriteMalformed) Error() string {
	return fmt.Sprintf("rewrite %d in direction %s is malformed: %v", e.Index, e.Direction, e.Errors)
}

// IncompatibleMalformed reports that the cospan rewrite at Index, in
// Direction, does not apply to the slice it was asked to act on.
type IncompatibleMalformed struct {
	Index     int
	Direction common.Direction
	Err       error
}

func (IncompatibleMalformed) isMalformedDiagram() {}
func (e IncompatibleMalformed) Error() string {
	return fmt.Sprintf("rewrite %d in direction %s is incompatible with its source: %v", e.Index, e.Direction, e.Err)
}

// MalformedRewrite is one node of the error tree CheckRewrite returns.
type MalformedRewrite interface {
	error
	isMalformedRewrite()
}

// ConeMalformed reports that the cone at Index failed its own check.
type ConeMalformed struct {
	Index  int
	Errors []MalformedCone
}

func (ConeMalformed) isMalformedRewrite() {}
func (e ConeMalformed) Error() string {
	return fmt.Sprintf("cone %d is malformed: %v", e.Index, e.Errors)
}

// TrivialConeMalformed reports that the cone at Index is the identity,
// which is never a meaningful cone (it should simply be absent).
type TrivialConeMalformed struct {
	Index int
}

func (TrivialConeMalformed) isMalformedRewrite() {}
func (e TrivialConeMalformed) Error() string {
	return fmt.Sprintf("cone %d is trivial", e.Index)
}

// NotOrderedMalformed reports that a rewrite's cones are not sorted in
// ascending Index order.
type NotOrderedMalformed struct{}

func (NotOrderedMalformed) isMalformedRewrite() {}
func (NotOrderedMalformed) Error() string       { return "cones are not ordered correctly" }

// MalformedCone is one node of the error tree Cone checking returns.
type MalformedCone interface {
	error
	isMalformedCone()
}

// CompositionMalformed wraps a failure composing two of a cone's own
// slices while checking commutativity.
type CompositionMalformed struct {
	Err error
}

func (CompositionMalformed) isMalformedCone() {}
func (e CompositionMalformed) Error() string  { return e.Err.Error() }
func (e CompositionMalformed) Unwrap() error  { return e.Err }

// SourceMalformed reports that the source cospan at Index failed its own
// check.
type SourceMalformed struct {
	Index  int
	Errors []MalformedRewrite
}

func (SourceMalformed) isMalformedCone() {}
func (e SourceMalformed) Error() string {
	return fmt.Sprintf("source %d is malformed: %v", e.Index, e.Errors)
}

// TargetMalformed reports that a cone's target cospan failed its own
// check.
type TargetMalformed struct {
	Errors []MalformedRewrite
}

func (TargetMalformed) isMalformedCone() {}
func (e TargetMalformed) Error() string {
	return fmt.Sprintf("target is malformed: %v", e.Errors)
}

// RegularSliceMalformed reports that the regular slice at Index failed
// its own check.
type RegularSliceMalformed struct {
	Index  int
	Errors []MalformedRewrite
}

func (RegularSliceMalformed) isMalformedCone() {}
func (e RegularSliceMalformed) Error() string {
	return fmt.Sprintf("regular slice %d is malformed: %v", e.Index, e.Errors)
}

// SingularSliceMalformed reports that the singular slice at Index failed
// its own check.
type SingularSliceMalformed struct {
	Index  int
	Errors []MalformedRewrite
}

func (SingularSliceMalformed) isMalformedCone() {}
func (e SingularSliceMalformed) Error() string {
	return fmt.Sprintf("singular slice %d is malformed: %v", e.Index, e.Errors)
}

// NotCommutativeMalformed reports that a cone fails to commute at the
// given regular height.
type NotCommutativeMalformed struct {
	Height int
}

func (NotCommutativeMalformed) isMalformedCone() {}
func (e NotCommutativeMalformed) Error() string {
	return fmt.Sprintf("cone fails to be commutative at regular height %d", e.Height)
}
