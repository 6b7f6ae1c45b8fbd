// Package clip is the real clipboard capability provider, backed by
// golang.design/x/clipboard. Platform files supply the change counter:
//
//	counter_darwin.go   — NSPasteboard changeCount via cgo
//	counter_windows.go  — GetClipboardSequenceNumber via golang.org/x/sys
//	counter_other.go    — content digest where no OS counter exists
package clip

import (
	"golang.design/x/clipboard"

	"go.klb.dev/grasp/internal/runonce"
	"go.klb.dev/grasp/internal/selection"
)

// Device is a handle on the system clipboard. The underlying subsystem is
// initialized on first use through a run-once gate; an init failure is
// remembered and replayed to every later call instead of retried.
type Device struct {
	init runonce.Guard
}

// New returns an uninitialized Device. Initialization is deferred to first
// use so constructing a selector on a headless system does not fail until a
// clipboard method actually runs.
func New() *Device { return &Device{} }

func (d *Device) ensure() error {
	return d.init.Do(func() error {
		if err := clipboard.Init(); err != nil {
			return selection.WrapError(selection.CodeClipboard, "clipboard unavailable", err)
		}
		return nil
	})
}

// Text returns the clipboard's text bytes, nil when no text is present.
func (d *Device) Text() ([]byte, error) {
	if err := d.ensure(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtText), nil
}

// Image returns the clipboard's PNG image bytes, nil when no image is present.
func (d *Device) Image() ([]byte, error) {
	if err := d.ensure(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtImage), nil
}

func (d *Device) SetText(data []byte) error {
	if err := d.ensure(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func (d *Device) SetImage(data []byte) error {
	if err := d.ensure(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

// Clear empties the clipboard. The backing library has no explicit clear, so
// an empty text write drops whatever was held.
func (d *Device) Clear() error {
	if err := d.ensure(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, nil)
	return nil
}

// ChangeCount returns a token that differs after every clipboard write.
func (d *Device) ChangeCount() (uint64, error) {
	if err := d.ensure(); err != nil {
		return 0, err
	}
	return d.changeCount()
}
