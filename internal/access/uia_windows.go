//go:build windows

package access

import (
	"strings"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"go.klb.dev/grasp/internal/selection"
)

// Raw COM binding for the UI Automation client API. go-ole carries the COM
// runtime plumbing (CoCreateInstance, GUIDs, BSTR helpers); the UIA vtables
// themselves are not wrapped by any maintained Go package, so the handful of
// slots we need are called directly.

var (
	clsidCUIAutomation = ole.NewGUID("{FF48DBA4-60EF-4201-AA87-54103EEF594E}")
	iidIUIAutomation   = ole.NewGUID("{30CBE57D-D9D0-452A-AB13-7AC5AC4825EE}")
	iidIUIATextPattern = ole.NewGUID("{32EBA289-3583-42C9-9C59-3B6D9A1E9B6A}")
)

// Vtable slots, counted from QueryInterface = 0.
const (
	slotAutomationGetFocusedElement = 8  // IUIAutomation::GetFocusedElement
	slotElementGetCurrentPatternAs  = 14 // IUIAutomationElement::GetCurrentPatternAs
	slotTextPatternGetSelection     = 5  // IUIAutomationTextPattern::GetSelection
	slotRangeArrayLength            = 3  // IUIAutomationTextRangeArray::get_Length
	slotRangeArrayGetElement        = 4  // IUIAutomationTextRangeArray::GetElement
	slotRangeGetText                = 12 // IUIAutomationTextRange::GetText
)

const uiaTextPatternID = 10014

// maxRangeChars caps GetText per range; selections larger than this are
// truncated rather than marshalled whole.
const maxRangeChars = 1024

func vcall(obj unsafe.Pointer, slot uintptr, args ...uintptr) uintptr {
	vtbl := *(**[64]uintptr)(obj)
	callArgs := append([]uintptr{uintptr(obj)}, args...)
	r, _, _ := syscall.SyscallN(vtbl[slot], callArgs...)
	return r
}

func comRelease(obj unsafe.Pointer) {
	const slotRelease = 2
	vcall(obj, slotRelease)
}

func hrFailed(r uintptr) bool { return int32(r) < 0 }

// Provider queries the Windows UI Automation tree. COM must already be
// initialized on the calling thread; the selector owns that via its init
// context.
type Provider struct{}

// SelectedText reads the focused element's TextPattern selection. The Query
// reports which stage produced nothing; err is non-nil for COM-level
// failures, surfaced as accessibility errors.
func (Provider) SelectedText() (string, Query, error) {
	unk, err := ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
	if err != nil {
		return "", QueryNoFocus, selection.WrapError(selection.CodeAccessibility, "create UI Automation instance", err)
	}
	auto := unsafe.Pointer(unk)
	defer comRelease(auto)

	var element unsafe.Pointer
	if r := vcall(auto, slotAutomationGetFocusedElement, uintptr(unsafe.Pointer(&element))); hrFailed(r) || element == nil {
		return "", QueryNoFocus, nil
	}
	defer comRelease(element)

	var pattern unsafe.Pointer
	r := vcall(element, slotElementGetCurrentPatternAs,
		uintptr(uiaTextPatternID),
		uintptr(unsafe.Pointer(iidIUIATextPattern)),
		uintptr(unsafe.Pointer(&pattern)))
	if hrFailed(r) || pattern == nil {
		// Focused element exposes no text pattern: nothing is selectable there.
		return "", QueryNoSelection, nil
	}
	defer comRelease(pattern)

	var ranges unsafe.Pointer
	if r := vcall(pattern, slotTextPatternGetSelection, uintptr(unsafe.Pointer(&ranges))); hrFailed(r) || ranges == nil {
		return "", QueryNoSelection, nil
	}
	defer comRelease(ranges)

	var length int32
	if r := vcall(ranges, slotRangeArrayLength, uintptr(unsafe.Pointer(&length))); hrFailed(r) {
		return "", QueryNoSelection, selection.NewError(selection.CodeAccessibility, "read selection range count")
	}
	if length == 0 {
		return "", QueryNoSelection, nil
	}

	var sb strings.Builder
	for i := int32(0); i < length; i++ {
		var rng unsafe.Pointer
		if r := vcall(ranges, slotRangeArrayGetElement, uintptr(i), uintptr(unsafe.Pointer(&rng))); hrFailed(r) || rng == nil {
			return "", QuerySelectionWrongType, nil
		}
		var bstr uintptr
		r := vcall(rng, slotRangeGetText, uintptr(maxRangeChars), uintptr(unsafe.Pointer(&bstr)))
		comRelease(rng)
		if hrFailed(r) {
			return "", QueryNoSelection, selection.NewError(selection.CodeAccessibility, "read text range")
		}
		if bstr != 0 {
			sb.WriteString(ole.BstrToString((*uint16)(unsafe.Pointer(bstr))))
			ole.SysFreeString((*int16)(unsafe.Pointer(bstr)))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", QueryNoSelection, nil
	}
	return text, QueryFound, nil
}
