package sanitizer

import (
	"fmt"
	"reflect"
)

// Sentinel values substituted in place of further recursion. Traversal
// safety faults degrade into marked placeholders instead of errors, so one
// pathological substructure never aborts sanitization of a whole entry.
const (
	SentinelHalted   = "[SANITIZATION_HALTED]"
	SentinelMaxDepth = "MAX_DEPTH_REACHED"
)

// Mappable lets composite domain types control their own map view instead
// of being walked by reflection. Types that implement it are sanitized
// through the returned map.
type Mappable interface {
	ToMap() map[string]any
}

// valueKind is the closed classification the sanitizer dispatches on.
type valueKind int

const (
	kindNil valueKind = iota
	kindString
	kindMap
	kindList
	kindObject
	kindPointer
	kindScalar
)

// classify maps a runtime value onto the closed kind enumeration. The
// reflect value must already have interfaces unwrapped.
func classify(rv reflect.Value) valueKind {
	if !rv.IsValid() {
		return kindNil
	}
	// Nil pointers must hit the pointer nil guard even when their type
	// implements Mappable with a pointer receiver; a ToMap call on a nil
	// receiver would panic.
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return kindPointer
	}
	if rv.CanInterface() {
		if _, ok := rv.Interface().(Mappable); ok {
			return kindObject
		}
	}
	switch rv.Kind() {
	case reflect.String:
		return kindString
	case reflect.Map:
		return kindMap
	case reflect.Slice, reflect.Array:
		return kindList
	case reflect.Struct:
		return kindObject
	case reflect.Pointer:
		return kindPointer
	default:
		return kindScalar
	}
}

// unwrap peels interface wrappers so classification sees the dynamic value.
func unwrap(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv
}

func depthSentinel() map[string]any {
	return map[string]any{SentinelHalted: SentinelMaxDepth}
}

// sanitizeValue is the recursive worker behind Sanitize. depth is the depth
// of the value itself, with the top-level value at depth 1. The visited set
// tracks only the current path: containers are marked on entry and
// unmarked on exit, so a container shared between sibling branches is not
// mistaken for a cycle.
func (s *Service) sanitizeValue(rv reflect.Value, depth int, maskToken string, seen *visitedSet) any {
	rv = unwrap(rv)

	switch classify(rv) {
	case kindNil:
		return nil

	case kindString:
		return s.sanitizeStringValue(rv.String(), maskToken)

	case kindPointer:
		if rv.IsNil() {
			return nil
		}
		if seen.seen(rv) {
			return SentinelCircular
		}
		seen.mark(rv)
		defer seen.unmark(rv)
		if rv.Elem().Kind() == reflect.Struct {
			return s.sanitizeObject(rv, depth, maskToken, seen)
		}
		return s.sanitizeValue(rv.Elem(), depth, maskToken, seen)

	case kindMap:
		if rv.IsNil() {
			return nil
		}
		if seen.seen(rv) {
			return SentinelCircular
		}
		if depth > s.maxDepth {
			return depthSentinel()
		}
		seen.mark(rv)
		defer seen.unmark(rv)
		return s.walkMap(rv, depth, maskToken, seen)

	case kindList:
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return nil
			}
			if seen.seen(rv) {
				return SentinelCircular
			}
		}
		if depth > s.maxDepth {
			return depthSentinel()
		}
		seen.mark(rv)
		defer seen.unmark(rv)
		return s.walkList(rv, depth, maskToken, seen)

	case kindObject:
		return s.sanitizeObject(rv, depth, maskToken, seen)

	default:
		return rv.Interface()
	}
}

// sanitizeObject converts an object to its map view (Mappable first,
// reflection over exported fields otherwise) and walks the view with the
// same masking rules as a plain map. Errors are rendered through the
// string pipeline instead of being field-walked: most error types carry
// their content only in the Error() message, and reflecting over their
// unexported fields would drop it. A fmt.Stringer gets the same
// treatment when its struct exposes no exported fields.
func (s *Service) sanitizeObject(rv reflect.Value, depth int, maskToken string, seen *visitedSet) any {
	if depth > s.maxDepth {
		return depthSentinel()
	}
	if m, ok := mappableOf(rv); ok {
		view := m.ToMap()
		if view == nil {
			return rv.Interface()
		}
		return s.walkMap(reflect.ValueOf(view), depth, maskToken, seen)
	}
	if msg, ok := errorMessage(rv); ok {
		return s.sanitizeStringValue(msg, maskToken)
	}
	view := structView(rv)
	if view == nil {
		return rv.Interface()
	}
	if len(view) == 0 {
		if text, ok := stringerText(rv); ok {
			return s.sanitizeStringValue(text, maskToken)
		}
	}
	return s.walkMap(reflect.ValueOf(view), depth, maskToken, seen)
}

// walkMap applies the per-entry masking rules to a map-kind value. The
// caller has already run the cycle and depth guards for the map itself.
func (s *Service) walkMap(rv reflect.Value, depth int, maskToken string, seen *visitedSet) map[string]any {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		name := keyString(iter.Key())
		if s.keys.IsSensitiveKey(name) {
			out[name] = maskToken
			continue
		}
		out[name] = s.sanitizeValue(iter.Value(), depth+1, maskToken, seen)
	}
	return out
}

func (s *Service) walkList(rv reflect.Value, depth int, maskToken string, seen *visitedSet) []any {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = s.sanitizeValue(rv.Index(i), depth+1, maskToken, seen)
	}
	return out
}

// sanitizeStringValue applies the masked-token check before the regular
// string pipeline, so a value that already equals the mask token becomes a
// distinguishable marker instead of being silently re-masked. The check
// runs on the normalized value; surrounding whitespace or compatibility
// forms must not hide that the input was the token itself.
func (s *Service) sanitizeStringValue(value, maskToken string) string {
	value = Normalize(value)
	if value == maskToken {
		return maskedOriginalMarker(maskToken)
	}
	return s.sanitizeString(value, maskToken)
}

// mappableOf reports whether the value honours the Mappable contract. Nil
// pointers never qualify: invoking ToMap through a nil pointer receiver
// would panic, so they stay on the nil-pointer path.
func mappableOf(rv reflect.Value) (Mappable, bool) {
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	if !rv.CanInterface() {
		return nil, false
	}
	m, ok := rv.Interface().(Mappable)
	return m, ok
}

func errorMessage(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}
	if err, ok := rv.Interface().(error); ok {
		return err.Error(), true
	}
	return "", false
}

func stringerText(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}
	if str, ok := rv.Interface().(fmt.Stringer); ok {
		return str.String(), true
	}
	return "", false
}

// structView builds the associative view over the exported fields of a
// struct (or pointer to struct). Returns nil for values that have no
// walkable view.
func structView(rv reflect.Value) map[string]any {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	t := rv.Type()
	view := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		view[field.Name] = rv.Field(i).Interface()
	}
	return view
}

// keyString renders a map key for the sensitivity check. Non-string key
// kinds are rendered with fmt.Sprint; the sanitized view is always keyed
// by strings.
func keyString(rv reflect.Value) string {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return "<nil>"
	}
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(rv.Interface())
}

// isSensitiveValue mirrors sanitizeValue for the observational IsSensitive
// query. Past a cycle or the depth bound it answers false: the guards keep
// the query total, they do not classify the guard itself as sensitive.
func (s *Service) isSensitiveValue(rv reflect.Value, depth int, seen *visitedSet) bool {
	rv = unwrap(rv)

	switch classify(rv) {
	case kindString:
		value := rv.String()
		return s.patterns.Matches(value) || s.keys.IsSensitiveKey(value)

	case kindPointer:
		if rv.IsNil() || seen.seen(rv) {
			return false
		}
		seen.mark(rv)
		defer seen.unmark(rv)
		if rv.Elem().Kind() == reflect.Struct {
			return s.isSensitiveObject(rv, depth, seen)
		}
		return s.isSensitiveValue(rv.Elem(), depth, seen)

	case kindMap:
		if rv.IsNil() || seen.seen(rv) || depth > s.maxDepth {
			return false
		}
		seen.mark(rv)
		defer seen.unmark(rv)
		iter := rv.MapRange()
		for iter.Next() {
			if s.keys.IsSensitiveKey(keyString(iter.Key())) {
				return true
			}
			if s.isSensitiveValue(iter.Value(), depth+1, seen) {
				return true
			}
		}
		return false

	case kindList:
		if rv.Kind() == reflect.Slice && (rv.IsNil() || seen.seen(rv)) {
			return false
		}
		if depth > s.maxDepth {
			return false
		}
		seen.mark(rv)
		defer seen.unmark(rv)
		for i := 0; i < rv.Len(); i++ {
			if s.isSensitiveValue(rv.Index(i), depth+1, seen) {
				return true
			}
		}
		return false

	case kindObject:
		return s.isSensitiveObject(rv, depth, seen)

	default:
		return false
	}
}

func (s *Service) isSensitiveObject(rv reflect.Value, depth int, seen *visitedSet) bool {
	if depth > s.maxDepth {
		return false
	}
	var view map[string]any
	if m, ok := mappableOf(rv); ok {
		view = m.ToMap()
	} else if msg, ok := errorMessage(rv); ok {
		return s.patterns.Matches(msg) || s.keys.IsSensitiveKey(msg)
	} else {
		view = structView(rv)
		if len(view) == 0 {
			if text, ok := stringerText(rv); ok {
				return s.patterns.Matches(text) || s.keys.IsSensitiveKey(text)
			}
		}
	}
	if view == nil {
		return false
	}
	for name, value := range view {
		if s.keys.IsSensitiveKey(name) {
			return true
		}
		if s.isSensitiveValue(reflect.ValueOf(value), depth+1, seen) {
			return true
		}
	}
	return false
}
