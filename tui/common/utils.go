package common

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate cuts s to width terminal cells, adding an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// FirstLine returns the first non-blank line of s, trimmed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// Percent formats a 0..1 probability with the given decimals, e.g. "87.50%".
func Percent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v*100)
}

// FormatCount abbreviates large counts: 1.2K, 3.4M.
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}

// Clamp bounds i to [lo, hi]. hi < lo yields lo.
func Clamp(i, lo, hi int) int {
	if i > hi {
		i = hi
	}
	if i < lo {
		i = lo
	}
	return i
}
