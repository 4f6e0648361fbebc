package sanitizer

import "reflect"

// SentinelCircular replaces a composite value that was re-encountered
// during the traversal that is already walking it.
const SentinelCircular = "[CIRCULAR_REFERENCE]"

// containerRef identifies a composite value by identity, not structural
// equality: the pointer to its backing storage plus its kind, so a map and
// a slice that happen to share an address never collide.
type containerRef struct {
	ptr  uintptr
	kind reflect.Kind
}

// visitedSet tracks the composite values on the current traversal path. A
// fresh set is allocated per top-level call and threaded explicitly
// through the recursion, so concurrent callers never share state.
type visitedSet struct {
	refs map[containerRef]struct{}
}

func newVisitedSet() *visitedSet {
	return &visitedSet{refs: make(map[containerRef]struct{})}
}

// identify returns the identity of v when v is a kind that can participate
// in a reference cycle. Plain structs and scalars have no stable identity
// and cannot self-reference without going through one of these kinds.
func identify(v reflect.Value) (containerRef, bool) {
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return containerRef{}, false
		}
		return containerRef{ptr: v.Pointer(), kind: v.Kind()}, true
	default:
		return containerRef{}, false
	}
}

// seen reports whether v is already on the current traversal path.
func (s *visitedSet) seen(v reflect.Value) bool {
	ref, ok := identify(v)
	if !ok {
		return false
	}
	_, found := s.refs[ref]
	return found
}

// mark records v as being traversed. Call unmark on the way back out so
// the same container may legitimately appear again in a sibling branch.
func (s *visitedSet) mark(v reflect.Value) {
	if ref, ok := identify(v); ok {
		s.refs[ref] = struct{}{}
	}
}

func (s *visitedSet) unmark(v reflect.Value) {
	if ref, ok := identify(v); ok {
		delete(s.refs, ref)
	}
}
