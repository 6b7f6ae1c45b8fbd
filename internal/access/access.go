// Package access binds the OS accessibility / UI-automation tree. It is the
// non-destructive acquisition path: querying the focused element's selected
// text never touches the clipboard.
//
// Attribute lookups against the tree are dynamically typed, so every query
// reports a tagged outcome instead of an optional cast: the element or
// attribute was found with the expected type, was absent, or was present with
// the wrong runtime type. MapQuery translates those outcomes into the shared
// error taxonomy.
package access

import "go.klb.dev/grasp/internal/selection"

// Query is the tagged outcome of the focused-selected-text lookup.
type Query int

const (
	// QueryFound means the focused element reported selected text.
	QueryFound Query = iota
	// QueryNoFocus means no UI element has focus.
	QueryNoFocus
	// QueryFocusWrongType means the focus attribute held a value that is not
	// a UI element.
	QueryFocusWrongType
	// QueryNoSelection means the focused element reports no selection
	// attribute.
	QueryNoSelection
	// QuerySelectionWrongType means the selection attribute held a value that
	// is not a string.
	QuerySelectionWrongType
)

func (q Query) String() string {
	switch q {
	case QueryFound:
		return "found"
	case QueryNoFocus:
		return "no-focus"
	case QueryFocusWrongType:
		return "focus-wrong-type"
	case QueryNoSelection:
		return "no-selection"
	case QuerySelectionWrongType:
		return "selection-wrong-type"
	default:
		return "invalid"
	}
}

// MapQuery converts a non-Found query outcome to its taxonomy error. A value
// of the wrong runtime type is reported the same as an absent one, but stays
// a distinct Query so callers and tests can observe which case occurred.
func MapQuery(q Query) error {
	switch q {
	case QueryFound:
		return nil
	case QueryNoFocus, QueryFocusWrongType:
		return selection.ErrNoFocusedElement
	default:
		return selection.ErrNoSelectedContent
	}
}
