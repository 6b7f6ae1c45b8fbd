// Package safecopy implements the clipboard-safe-copy protocol: snapshot the
// clipboard, simulate the user's copy gesture, detect whether the clipboard
// actually changed, read the new content, and restore the snapshot on every
// exit path after the gesture.
//
// The protocol mutates a process-external, system-wide resource. Its
// correctness rests on two ordering guarantees that must never be relaxed:
// SNAPSHOT strictly precedes SIMULATE_COPY, and RESTORE runs unconditionally
// once the gesture has been issued, including when change detection or the
// post-copy read fails. A process-wide lock serializes the whole
// SNAPSHOT→RESTORE window; concurrent captures would corrupt each other's
// restoration.
package safecopy

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.klb.dev/grasp/internal/selection"
)

// Clipboard is the narrow clipboard contract the protocol drives. A nil slice
// from Text or Image means that format is absent from the clipboard, as
// opposed to present but empty.
type Clipboard interface {
	// Text returns the clipboard's text content, nil if none.
	Text() ([]byte, error)
	// Image returns the clipboard's image content (PNG), nil if none.
	Image() ([]byte, error)
	SetText(data []byte) error
	SetImage(data []byte) error
	// Clear empties the clipboard so a restored "nothing" does not leak
	// stale content.
	Clear() error
	// ChangeCount returns a token that differs after every clipboard write.
	// On platforms with a native change counter it is that counter; elsewhere
	// a content digest serves the same comparison.
	ChangeCount() (uint64, error)
}

// Keystroker simulates the copy gesture.
type Keystroker interface {
	// ReleaseModifiers lifts any logically stuck modifier keys. A previous
	// aborted gesture may have left Control/Alt/Shift/Meta pressed.
	ReleaseModifiers() error
	// Copy issues press-modifier, tap copy key, release-modifier.
	Copy() error
}

// Defaults for the change-detection wait. Tuning constants, not correctness
// bounds: the wait-compare-act ordering is what matters.
const (
	DefaultWait = 150 * time.Millisecond
	DefaultPoll = 25 * time.Millisecond
)

// captureMu serializes every capture in the process. The OS clipboard is one
// global resource; two interleaved SNAPSHOT→RESTORE windows would restore
// each other's transient state.
var captureMu sync.Mutex

// Protocol runs the safe-copy state machine against a clipboard and a
// keystroke simulator.
type Protocol struct {
	Clipboard Clipboard
	Keys      Keystroker

	// Wait is the total budget for the target application's copy handler to
	// run; Poll is how often the change token is re-checked inside that
	// budget. Zero values take the defaults.
	Wait time.Duration
	Poll time.Duration
}

// snapshot holds the clipboard content captured before the gesture. It is
// owned exclusively by the in-flight capture and consumed exactly once.
type snapshot struct {
	text  []byte // nil: no text on the clipboard
	image []byte // nil: no image on the clipboard
}

// Capture runs the protocol once and returns the newly copied selection.
// Text is authoritative; an image is returned only when no text appeared.
// An unchanged clipboard after the gesture reports no selected content.
func (p *Protocol) Capture() (selection.Selection, error) {
	captureMu.Lock()
	defer captureMu.Unlock()

	// SNAPSHOT. Failure here is terminal and needs no restoration; nothing
	// has been mutated yet.
	snap, err := p.takeSnapshot()
	if err != nil {
		return selection.Selection{}, selection.WrapError(selection.CodeClipboard, "snapshot clipboard", err)
	}
	before, err := p.Clipboard.ChangeCount()
	if err != nil {
		return selection.Selection{}, selection.WrapError(selection.CodeClipboard, "read clipboard change count", err)
	}

	sel, err := p.copyAndRead(before)

	// RESTORE runs on every path once the gesture may have fired. A restore
	// failure is escalated as a clipboard error in the log but never
	// suppresses the already-determined primary outcome.
	if rerr := p.restore(snap); rerr != nil {
		slog.Warn("clipboard restore failed",
			"err", selection.WrapError(selection.CodeClipboard, "restore clipboard", rerr))
	}
	return sel, err
}

func (p *Protocol) takeSnapshot() (snapshot, error) {
	text, err := p.Clipboard.Text()
	if err != nil {
		return snapshot{}, err
	}
	image, err := p.Clipboard.Image()
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{text: text, image: image}, nil
}

// copyAndRead covers SIMULATE_COPY → AWAIT_CHANGE → READ_NEW. The caller owns
// restoration.
func (p *Protocol) copyAndRead(before uint64) (selection.Selection, error) {
	if err := p.Keys.ReleaseModifiers(); err != nil {
		return selection.Selection{}, selection.WrapError(selection.CodeClipboard, "release modifier keys", err)
	}
	if err := p.Keys.Copy(); err != nil {
		return selection.Selection{}, selection.WrapError(selection.CodeClipboard, "copy gesture", err)
	}

	if !p.awaitChange(before) {
		// Nothing was selected, or the target application ignored the gesture.
		return selection.Selection{}, selection.Errorf(selection.CodeNoSelectedContent,
			"clipboard unchanged after copy gesture")
	}

	// READ_NEW: text wins; image is the secondary content kind.
	text, err := p.Clipboard.Text()
	if err != nil {
		return selection.Selection{}, selection.WrapError(selection.CodeClipboard, "read clipboard after copy", err)
	}
	if trimmed := strings.TrimSpace(string(text)); trimmed != "" {
		return selection.NewText(trimmed), nil
	}
	image, err := p.Clipboard.Image()
	if err != nil {
		return selection.Selection{}, selection.WrapError(selection.CodeClipboard, "read clipboard image after copy", err)
	}
	if len(image) > 0 {
		return selection.NewImage("png", image), nil
	}
	return selection.Selection{}, selection.Errorf(selection.CodeNoSelectedContent,
		"clipboard changed but holds no usable content")
}

// awaitChange polls the change token inside the wait budget instead of taking
// a single fixed sleep, so slow copy handlers are detected as soon as they
// land. Returns whether the clipboard changed.
func (p *Protocol) awaitChange(before uint64) bool {
	wait := p.Wait
	if wait <= 0 {
		wait = DefaultWait
	}
	poll := p.Poll
	if poll <= 0 {
		poll = DefaultPoll
	}
	deadline := time.Now().Add(wait)
	for {
		time.Sleep(poll)
		if now, err := p.Clipboard.ChangeCount(); err == nil && now != before {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
	}
}

// restore writes the snapshot back verbatim: original text if present, else
// original image, else an explicit clear.
func (p *Protocol) restore(snap snapshot) error {
	switch {
	case snap.text != nil:
		return p.Clipboard.SetText(snap.text)
	case snap.image != nil:
		return p.Clipboard.SetImage(snap.image)
	default:
		return p.Clipboard.Clear()
	}
}
