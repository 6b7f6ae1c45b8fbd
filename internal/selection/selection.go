// Package selection defines the unified result type returned by every
// acquisition method, plus the error taxonomy shared across platforms.
//
// A Selection is an immutable value object: constructed once by a platform
// strategy, handed to the caller, and discarded. There is no caching and no
// identity.
package selection

import "unicode/utf8"

// Kind tags the content a Selection carries.
type Kind uint8

const (
	KindText Kind = iota
	KindImage
	KindFile
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// Selection is the user's current selection, whatever OS facility produced it.
type Selection struct {
	kind   Kind
	format string // short lowercase token for KindImage / KindOther, e.g. "png"
	data   []byte
}

// NewText returns a text selection. The string is stored as its UTF-8 bytes.
func NewText(text string) Selection {
	return Selection{kind: KindText, data: []byte(text)}
}

// NewImage returns an image selection with its format token ("png", "jpg", ...).
// The data is kept verbatim.
func NewImage(format string, data []byte) Selection {
	return Selection{kind: KindImage, format: format, data: data}
}

// NewFile returns a file-path selection.
func NewFile(path string) Selection {
	return Selection{kind: KindFile, data: []byte(path)}
}

// NewOther returns a selection of some other content type with its format token.
func NewOther(format string, data []byte) Selection {
	return Selection{kind: KindOther, format: format, data: data}
}

// Kind returns the content-kind tag.
func (s Selection) Kind() Kind { return s.kind }

// Format returns the format token for image/other selections, "" otherwise.
func (s Selection) Format() string { return s.format }

// Data returns the raw payload.
func (s Selection) Data() []byte { return s.data }

// ContentType renders the kind as a short descriptor: "text", "image/png",
// "file", "other/custom".
func (s Selection) ContentType() string {
	switch s.kind {
	case KindImage, KindOther:
		return s.kind.String() + "/" + s.format
	default:
		return s.kind.String()
	}
}

// IsEmpty reports whether the payload has zero length, independent of kind.
func (s Selection) IsEmpty() bool { return len(s.data) == 0 }

// AsText returns the payload decoded as UTF-8. The second return is false
// unless the kind is KindText and the payload is valid UTF-8. A mismatched
// kind or a broken encoding yields no value, never a fabricated string.
func (s Selection) AsText() (string, bool) {
	if s.kind != KindText || !utf8.Valid(s.data) {
		return "", false
	}
	return string(s.data), true
}

// AsFilePath is the KindFile counterpart of AsText.
func (s Selection) AsFilePath() (string, bool) {
	if s.kind != KindFile || !utf8.Valid(s.data) {
		return "", false
	}
	return string(s.data), true
}
