package common

import (
	"fmt"
	"strings"
)

// ColorPrimary is the embed color for tickets (Discord blurple)
const ColorPrimary = 0x5865F2

// FormatNumber renders a drawn number with two digits
func FormatNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

// FormatNumbers renders numbers as inline code badges: `05` `08` `21`
func FormatNumbers(numbers []int) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, "`"+FormatNumber(n)+"`")
	}
	return strings.Join(parts, " ")
}
