//go:build !windows

package msgbox

import (
	"fmt"
	"os"
)

// Show prints the message to stderr; there is no native message box to
// block on outside Windows.
func Show(title, text string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, text)
}
