// Package script wraps the OS scripting shell used as a capability provider
// on macOS. The copy snippet below is the fixed script body the clipboard
// strategy executes: it snapshots the pasteboard, sends the copy keystroke to
// the focused application, waits briefly, reads the result, restores the
// snapshot when the pasteboard actually changed, and prints the payload.
package script

import (
	"strings"

	"go.klb.dev/grasp/internal/selection"
)

// Runner executes a script source and returns its stdout.
type Runner interface {
	Run(src string) (string, error)
}

// FileMarker prefixes a payload that is a file path rather than literal text.
// It exists only on this channel; nothing else in the module emits it.
const FileMarker = "[FILE]"

// CopySnippet is the embedded AppleScript body for the simulated-copy
// protocol. The 0.1s delay matches the fixed post-gesture wait the protocol
// relies on.
const CopySnippet = `
use AppleScript version "2.4"
use scripting additions
use framework "Foundation"
use framework "AppKit"

set initialClipboard to the clipboard

tell application "System Events"
    keystroke "c" using {command down}
end tell
delay 0.1

set copiedText to the clipboard

if copiedText is not initialClipboard and copiedText is not "" then
    set the clipboard to initialClipboard
end if

copiedText
`

// ParsePayload converts the script's stdout into a Selection. A FileMarker
// prefix tags a file path; everything else is literal text. The single
// trailing newline the scripting shell appends is stripped.
func ParsePayload(out string) selection.Selection {
	out = strings.TrimSuffix(out, "\n")
	if rest, ok := strings.CutPrefix(out, FileMarker); ok {
		return selection.NewFile(rest)
	}
	return selection.NewText(out)
}
