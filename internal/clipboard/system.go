// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System writes to the desktop clipboard (xclip/xsel/wl-copy on Linux,
// pbcopy on macOS, the Win32 API on Windows).
type System struct{}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard unsupported on this host")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}
