//go:build windows

package clip

import "golang.org/x/sys/windows"

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetClipboardSequenceNumber = user32.NewProc("GetClipboardSequenceNumber")
)

// changeCount returns the Windows clipboard sequence number, incremented on
// every clipboard write in the session.
func (d *Device) changeCount() (uint64, error) {
	n, _, _ := procGetClipboardSequenceNumber.Call()
	return uint64(uint32(n)), nil
}
