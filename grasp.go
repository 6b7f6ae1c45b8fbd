// Package grasp retrieves the end user's current selection (highlighted
// text, a selected file, or image data) behind one unified result type,
// regardless of which OS facility produced it.
//
// Acquisition prefers the platform's accessibility / UI-automation tree,
// which never touches shared OS state, and falls back to a clipboard-based
// simulated copy that snapshots the clipboard beforehand and restores it on
// every exit path. Selections are plain value objects; nothing is persisted
// and no selection-change events are delivered.
//
//	text, err := grasp.GetText()
//
// Calls are synchronous and block the calling goroutine for up to the
// simulated-copy wait when the fallback runs. A caller needing a deadline
// must wrap the call externally and accept that clipboard restoration may
// still be in flight when the wrapper gives up.
package grasp

import (
	"go.klb.dev/grasp/internal/selection"
	"go.klb.dev/grasp/internal/selector"
)

// Selection is the unified selection result.
type Selection = selection.Selection

// Kind tags a Selection's content.
type Kind = selection.Kind

const (
	KindText  = selection.KindText
	KindImage = selection.KindImage
	KindFile  = selection.KindFile
	KindOther = selection.KindOther
)

// Selection constructors, mainly useful to consumers building fakes.
var (
	NewText  = selection.NewText
	NewImage = selection.NewImage
	NewFile  = selection.NewFile
	NewOther = selection.NewOther
)

// Error is the shared error taxonomy; Code classifies it.
type (
	Error = selection.Error
	Code  = selection.Code
)

const (
	CodeOther               = selection.CodeOther
	CodeNoFocusedElement    = selection.CodeNoFocusedElement
	CodeNoSelectedContent   = selection.CodeNoSelectedContent
	CodeUnsupportedPlatform = selection.CodeUnsupportedPlatform
	CodeInvalidContentType  = selection.CodeInvalidContentType
	CodeScript              = selection.CodeScript
	CodeAccessibility       = selection.CodeAccessibility
	CodeClipboard           = selection.CodeClipboard
	CodeIO                  = selection.CodeIO
	CodeEncoding            = selection.CodeEncoding
)

// Sentinels for errors.Is matching.
var (
	ErrNoFocusedElement    = selection.ErrNoFocusedElement
	ErrNoSelectedContent   = selection.ErrNoSelectedContent
	ErrUnsupportedPlatform = selection.ErrUnsupportedPlatform
)

// CodeOf extracts the taxonomy code from an error returned by this module.
func CodeOf(err error) Code { return selection.CodeOf(err) }

// Selector retrieves the current selection on one platform. New returns the
// implementation for the running OS; tests substitute fakes.
type Selector = selector.Selector

// Config tunes the invasive clipboard path.
type Config = selector.Config

// New returns the selector for the running platform.
func New() Selector { return selector.New() }

// NewWith returns the selector for the running platform with explicit tuning.
func NewWith(cfg Config) Selector { return selector.NewWith(cfg) }

// GetSelection retrieves the current selection using the best available
// method for the running platform.
func GetSelection() (Selection, error) {
	return New().GetSelection()
}

// GetText retrieves the current selection and returns it as text, failing
// with an invalid-content-type error when the selection is something else.
func GetText() (string, error) {
	return selector.Text(New())
}
