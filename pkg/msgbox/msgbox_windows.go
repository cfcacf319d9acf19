//go:build windows

// pkg/msgbox/msgbox_windows.go - blocking modal message boxes.

package msgbox

import "github.com/gonutz/w32"

// Show displays a blocking modal message box and returns when the
// operator dismisses it.
func Show(title, text string) {
	w32.MessageBox(0, text, title, w32.MB_OK|w32.MB_ICONEXCLAMATION|w32.MB_TOPMOST)
}
