// Package docpath provides generic get/set/remove over a nested document
// tree (maps and slices as decoded from JSON) addressed by structural path.
package docpath

import (
	"fmt"
	"strconv"
	"strings"
)

// PathError is returned when a traversal step expects a container but finds
// a scalar, or when an index step is out of range for a list.
type PathError struct {
	Pointer string
	Segment string
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path error at %q (segment %q): %s", e.Pointer, e.Segment, e.Message)
}

// Join builds a pointer from individual segments.
func Join(segments ...string) string {
	return "/" + strings.Join(segments, "/")
}

// split breaks a pointer into its segments. Leading and trailing slashes are
// tolerated; an empty pointer addresses the document root.
func split(pointer string) []string {
	trimmed := strings.Trim(pointer, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Get resolves a pointer against a document. The second return value is
// false when any step of the path is absent; Get never returns an error.
func Get(doc any, pointer string) (any, bool) {
	current := doc
	for _, seg := range split(pointer) {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// Set assigns value at pointer and returns a new document. Every ancestor
// container along the path is cloned; siblings are shared with the input.
// Missing intermediate maps are created; missing list indices are an error.
func Set(doc any, pointer string, value any) (any, error) {
	segments := split(pointer)
	if len(segments) == 0 {
		return value, nil
	}
	return assign(doc, segments, pointer, value)
}

func assign(node any, segments []string, pointer string, value any) (any, error) {
	seg := segments[0]

	switch container := node.(type) {
	case map[string]any:
		clone := make(map[string]any, len(container)+1)
		for k, v := range container {
			clone[k] = v
		}
		if len(segments) == 1 {
			clone[seg] = value
			return clone, nil
		}
		child, ok := container[seg]
		if !ok {
			child = map[string]any{}
		}
		updated, err := assign(child, segments[1:], pointer, value)
		if err != nil {
			return nil, err
		}
		clone[seg] = updated
		return clone, nil

	case []any:
		idx, err := strconv.Atoi(seg)
		if err != nil {
			return nil, &PathError{Pointer: pointer, Segment: seg, Message: "non-numeric index into list"}
		}
		if idx < 0 || idx > len(container) {
			return nil, &PathError{Pointer: pointer, Segment: seg, Message: "index out of range"}
		}
		clone := make([]any, len(container), len(container)+1)
		copy(clone, container)
		if idx == len(container) {
			// Appending one past the end grows the list.
			clone = append(clone, nil)
		}
		if len(segments) == 1 {
			clone[idx] = value
			return clone, nil
		}
		updated, err := assign(clone[idx], segments[1:], pointer, value)
		if err != nil {
			return nil, err
		}
		clone[idx] = updated
		return clone, nil

	case nil:
		// Materialize a map for a path that dead-ends in nothing.
		created := map[string]any{}
		return assign(created, segments, pointer, value)

	default:
		return nil, &PathError{Pointer: pointer, Segment: seg, Message: "cannot descend into scalar"}
	}
}

// Remove deletes the value at pointer and returns a new document. Removing a
// list index shifts subsequent elements down; there are no holes. Removing
// an absent path is a no-op that returns an equivalent document.
func Remove(doc any, pointer string) (any, error) {
	segments := split(pointer)
	if len(segments) == 0 {
		return doc, nil
	}
	return detach(doc, segments, pointer)
}

func detach(node any, segments []string, pointer string) (any, error) {
	seg := segments[0]

	switch container := node.(type) {
	case map[string]any:
		clone := make(map[string]any, len(container))
		for k, v := range container {
			clone[k] = v
		}
		if len(segments) == 1 {
			delete(clone, seg)
			return clone, nil
		}
		child, ok := container[seg]
		if !ok {
			return clone, nil
		}
		updated, err := detach(child, segments[1:], pointer)
		if err != nil {
			return nil, err
		}
		clone[seg] = updated
		return clone, nil

	case []any:
		idx, err := strconv.Atoi(seg)
		if err != nil {
			return nil, &PathError{Pointer: pointer, Segment: seg, Message: "non-numeric index into list"}
		}
		if idx < 0 || idx >= len(container) {
			// Absent index, nothing to remove.
			clone := make([]any, len(container))
			copy(clone, container)
			return clone, nil
		}
		if len(segments) == 1 {
			clone := make([]any, 0, len(container)-1)
			clone = append(clone, container[:idx]...)
			clone = append(clone, container[idx+1:]...)
			return clone, nil
		}
		clone := make([]any, len(container))
		copy(clone, container)
		updated, err := detach(clone[idx], segments[1:], pointer)
		if err != nil {
			return nil, err
		}
		clone[idx] = updated
		return clone, nil

	case nil:
		return nil, nil

	default:
		return nil, &PathError{Pointer: pointer, Segment: seg, Message: "cannot descend into scalar"}
	}
}
