//go:build darwin

package access

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework ApplicationServices -framework Foundation
// #include <stdlib.h>
// #include <ApplicationServices/ApplicationServices.h>
//
// // grasp_selected_text copies the focused element's selected text into *out
// // (caller frees). Returns 0 on success, 1 no focused element, 2 focus
// // attribute not an element, 3 no selection attribute, 4 selection attribute
// // not a string, 5 conversion failure.
// static int grasp_selected_text(char **out) {
//     AXUIElementRef sys = AXUIElementCreateSystemWide();
//     CFTypeRef focused = NULL;
//     AXError err = AXUIElementCopyAttributeValue(sys, kAXFocusedUIElementAttribute, &focused);
//     CFRelease(sys);
//     if (err != kAXErrorSuccess || focused == NULL) {
//         return 1;
//     }
//     if (CFGetTypeID(focused) != AXUIElementGetTypeID()) {
//         CFRelease(focused);
//         return 2;
//     }
//     CFTypeRef text = NULL;
//     err = AXUIElementCopyAttributeValue((AXUIElementRef)focused, kAXSelectedTextAttribute, &text);
//     CFRelease(focused);
//     if (err != kAXErrorSuccess || text == NULL) {
//         return 3;
//     }
//     if (CFGetTypeID(text) != CFStringGetTypeID()) {
//         CFRelease(text);
//         return 4;
//     }
//     CFIndex len = CFStringGetLength((CFStringRef)text);
//     CFIndex max = CFStringGetMaximumSizeForEncoding(len, kCFStringEncodingUTF8) + 1;
//     char *buf = malloc(max);
//     if (buf == NULL || !CFStringGetCString((CFStringRef)text, buf, max, kCFStringEncodingUTF8)) {
//         free(buf);
//         CFRelease(text);
//         return 5;
//     }
//     CFRelease(text);
//     *out = buf;
//     return 0;
// }
import "C"

import (
	"unsafe"

	"go.klb.dev/grasp/internal/selection"
)

// Provider queries the macOS accessibility tree.
type Provider struct{}

// SelectedText asks the system-wide accessibility element for the focused
// element's kAXSelectedText value. The Query reports which stage failed when
// no text comes back; err is non-nil only for conversion failures inside the
// accessibility call itself.
func (Provider) SelectedText() (string, Query, error) {
	var out *C.char
	switch rc := C.grasp_selected_text(&out); rc {
	case 0:
		defer C.free(unsafe.Pointer(out))
		return C.GoString(out), QueryFound, nil
	case 1:
		return "", QueryNoFocus, nil
	case 2:
		return "", QueryFocusWrongType, nil
	case 3:
		return "", QueryNoSelection, nil
	case 4:
		return "", QuerySelectionWrongType, nil
	default:
		return "", QueryNoSelection, selection.NewError(selection.CodeAccessibility, "selected text conversion failed")
	}
}
