//go:build windows

package runner

import "regexp"

// Commands that are completely blocked from running
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(format|diskpart)\b`),  // disk operations
	regexp.MustCompile(`(?i)\b(shutdown|restart)\b`), // system power
	regexp.MustCompile(`(?i)\bdel\s+/[sq]`),          // recursive/quiet delete
}
