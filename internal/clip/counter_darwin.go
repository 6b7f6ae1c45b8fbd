//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger grasp_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

// changeCount returns NSPasteboard's native change counter, incremented by
// the OS on every pasteboard write from any process.
func (d *Device) changeCount() (uint64, error) {
	return uint64(C.grasp_changeCount()), nil
}
