// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package banner holds the startup banner printed when the framework starts.
package banner

import (
	"fmt"
	"io"
)

// Lines are the banner lines, in print order.
var Lines = [...]string{
	"🚀 MoneyWorks AI Accountant Framework",
	"📊 Initializing business intelligence layer...",
}

// Print writes each banner line to w, newline-terminated.
func Print(w io.Writer) error {
	for _, line := range Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing banner: %w", err)
		}
	}
	return nil
}
