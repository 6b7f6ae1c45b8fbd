package safecopy

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"go.klb.dev/grasp/internal/selection"
)

// fakeClipboard is an in-memory clipboard with a change counter that bumps on
// every write, mirroring the OS counters the real providers expose.
type fakeClipboard struct {
	text  []byte
	image []byte
	count uint64

	textErr    error // returned by Text
	imageErr   error // returned by Image
	setErr     error // returned by SetText/SetImage/Clear
	readsAfter int   // Text calls so far; lets tests fail only the post-copy read
	failReadAt int   // fail the Nth Text call (1-based), 0 = never
}

func (f *fakeClipboard) Text() ([]byte, error) {
	f.readsAfter++
	if f.failReadAt != 0 && f.readsAfter == f.failReadAt {
		return nil, errors.New("injected read failure")
	}
	if f.textErr != nil {
		return nil, f.textErr
	}
	return f.text, nil
}

func (f *fakeClipboard) Image() ([]byte, error) {
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	return f.image, nil
}

func (f *fakeClipboard) SetText(data []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.text = append([]byte(nil), data...)
	f.image = nil
	f.count++
	return nil
}

func (f *fakeClipboard) SetImage(data []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.image = append([]byte(nil), data...)
	f.text = nil
	f.count++
	return nil
}

func (f *fakeClipboard) Clear() error {
	if f.setErr != nil {
		return f.setErr
	}
	f.text = nil
	f.image = nil
	f.count++
	return nil
}

func (f *fakeClipboard) ChangeCount() (uint64, error) { return f.count, nil }

// fakeKeys optionally lands content on the clipboard when the gesture fires,
// standing in for the target application's copy handler.
type fakeKeys struct {
	cb        *fakeClipboard
	deliver   []byte // text placed on the clipboard by the gesture, nil = no-op
	released  bool
	copyCalls int
	copyErr   error
}

func (k *fakeKeys) ReleaseModifiers() error {
	k.released = true
	return nil
}

func (k *fakeKeys) Copy() error {
	k.copyCalls++
	if k.copyErr != nil {
		return k.copyErr
	}
	if k.deliver != nil {
		k.cb.text = append([]byte(nil), k.deliver...)
		k.cb.image = nil
		k.cb.count++
	}
	return nil
}

func newProtocol(cb *fakeClipboard, keys Keystroker) *Protocol {
	return &Protocol{Clipboard: cb, Keys: keys, Wait: 20 * time.Millisecond, Poll: time.Millisecond}
}

func TestCaptureSuccessRestoresOldText(t *testing.T) {
	cb := &fakeClipboard{text: []byte("OLD"), count: 7}
	keys := &fakeKeys{cb: cb, deliver: []byte("NEW")}
	sel, err := newProtocol(cb, keys).Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	got, ok := sel.AsText()
	if !ok || got != "NEW" {
		t.Errorf("selection = %q, %v, want NEW", got, ok)
	}
	if !bytes.Equal(cb.text, []byte("OLD")) {
		t.Errorf("clipboard after capture = %q, want restored OLD", cb.text)
	}
	if !keys.released {
		t.Error("stuck modifiers were not released before the gesture")
	}
}

func TestCaptureUnchangedClipboardReportsNoSelection(t *testing.T) {
	cb := &fakeClipboard{text: []byte("OLD"), count: 3}
	keys := &fakeKeys{cb: cb} // gesture lands nothing
	_, err := newProtocol(cb, keys).Capture()
	if !errors.Is(err, selection.ErrNoSelectedContent) {
		t.Fatalf("err = %v, want no-selected-content", err)
	}
	if !bytes.Equal(cb.text, []byte("OLD")) {
		t.Errorf("clipboard after failed capture = %q, want OLD", cb.text)
	}
}

func TestCaptureRestoresAfterReadFailure(t *testing.T) {
	cb := &fakeClipboard{text: []byte("OLD")}
	// Text call 1 is the snapshot, call 2 is READ_NEW.
	cb.failReadAt = 2
	keys := &fakeKeys{cb: cb, deliver: []byte("NEW")}
	_, err := newProtocol(cb, keys).Capture()
	if selection.CodeOf(err) != selection.CodeClipboard {
		t.Fatalf("err = %v, want clipboard code", err)
	}
	if !bytes.Equal(cb.text, []byte("OLD")) {
		t.Errorf("clipboard after read failure = %q, want restored OLD", cb.text)
	}
}

func TestCaptureRestoresImageSnapshot(t *testing.T) {
	img := []byte{0x89, 'P', 'N', 'G'}
	cb := &fakeClipboard{image: append([]byte(nil), img...)}
	keys := &fakeKeys{cb: cb, deliver: []byte("copied")}
	sel, err := newProtocol(cb, keys).Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got, _ := sel.AsText(); got != "copied" {
		t.Errorf("selection = %q", got)
	}
	if !bytes.Equal(cb.image, img) {
		t.Errorf("image not restored: %v", cb.image)
	}
	if cb.text != nil {
		t.Errorf("text present after image restore: %q", cb.text)
	}
}

func TestCaptureClearsWhenSnapshotWasEmpty(t *testing.T) {
	cb := &fakeClipboard{}
	keys := &fakeKeys{cb: cb, deliver: []byte("NEW")}
	sel, err := newProtocol(cb, keys).Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got, _ := sel.AsText(); got != "NEW" {
		t.Errorf("selection = %q", got)
	}
	// Empty snapshot restores as an explicit clear, not stale copied content.
	if cb.text != nil || cb.image != nil {
		t.Errorf("clipboard not cleared: text=%q image=%v", cb.text, cb.image)
	}
}

func TestCaptureSnapshotFailureIsTerminal(t *testing.T) {
	cb := &fakeClipboard{textErr: errors.New("cannot open clipboard")}
	keys := &fakeKeys{cb: cb}
	_, err := newProtocol(cb, keys).Capture()
	if selection.CodeOf(err) != selection.CodeClipboard {
		t.Fatalf("err = %v, want clipboard code", err)
	}
	if keys.copyCalls != 0 {
		t.Error("gesture fired even though the snapshot failed")
	}
}

func TestCaptureGestureFailure(t *testing.T) {
	cb := &fakeClipboard{text: []byte("OLD")}
	keys := &fakeKeys{cb: cb, copyErr: errors.New("no input device")}
	_, err := newProtocol(cb, keys).Capture()
	if selection.CodeOf(err) != selection.CodeClipboard {
		t.Fatalf("err = %v, want clipboard code", err)
	}
	if !bytes.Equal(cb.text, []byte("OLD")) {
		t.Errorf("clipboard = %q, want OLD restored", cb.text)
	}
}

func TestCapturePicksImageWhenNoText(t *testing.T) {
	cb := &fakeClipboard{text: []byte("OLD")}
	img := []byte{1, 2, 3}
	// Copy handler that places an image instead of text.
	sel, err := newProtocol(cb, &imageKeys{cb: cb, image: img}).Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if sel.Kind() != selection.KindImage || sel.Format() != "png" {
		t.Errorf("kind = %s", sel.ContentType())
	}
	if !bytes.Equal(sel.Data(), img) {
		t.Errorf("data = %v", sel.Data())
	}
	if !bytes.Equal(cb.text, []byte("OLD")) {
		t.Errorf("clipboard = %q, want OLD restored", cb.text)
	}
}

type imageKeys struct {
	cb    *fakeClipboard
	image []byte
}

func (k *imageKeys) ReleaseModifiers() error { return nil }

func (k *imageKeys) Copy() error {
	k.cb.image = append([]byte(nil), k.image...)
	k.cb.text = nil
	k.cb.count++
	return nil
}

func TestCaptureTrimsCopiedText(t *testing.T) {
	cb := &fakeClipboard{}
	keys := &fakeKeys{cb: cb, deliver: []byte("  padded\n")}
	sel, err := newProtocol(cb, keys).Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got, _ := sel.AsText(); got != "padded" {
		t.Errorf("selection = %q, want padded", got)
	}
}
