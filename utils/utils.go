package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%d ms", duration.Milliseconds())
	}

	if duration < time.Minute {
		return fmt.Sprintf("%.1f sec", duration.Seconds())
	}

	return fmt.Sprintf("%.1f min", duration.Minutes())
}

func FormatNumber(num int) string {
	if num < 1000 {
		return strconv.Itoa(num)
	}

	if num < 1000000 {
		return fmt.Sprintf("%.1fK", float64(num)/1000.0)
	}

	return fmt.Sprintf("%.1fM", float64(num)/1000000.0)
}

// FormatKB renders a byte count the way the file list shows it: "12.34 KB"
func FormatKB(size int64) string {
	return fmt.Sprintf("%.2f KB", float64(size)/1024.0)
}

func ParseCommaSeparatedList(input string) []string {
	if input == "" {
		return nil
	}

	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// TruncateString shortens s to at most maxLength runes, marking the cut with "..."
func TruncateString(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}

	return string(runes[:maxLength-3]) + "..."
}

// Plural returns "s" unless n is exactly one
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// CollapseWhitespace joins all whitespace runs into single spaces
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
