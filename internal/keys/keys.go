// Package keys simulates the user's copy gesture through the system input
// facility. Only the Windows strategy drives it; macOS routes the gesture
// through its scripting shell and Linux reads the primary selection without
// one.
package keys
