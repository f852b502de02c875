//go:build !windows

package runner

import "regexp"

// Commands that are completely blocked from running
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(format|mkfs)\b`),              // disk format
	regexp.MustCompile(`\bdd\s+if=`),                     // dd
	regexp.MustCompile(`>\s*/dev/sd`),                    // write to disk
	regexp.MustCompile(`\b(shutdown|reboot|poweroff)\b`), // system power
	regexp.MustCompile(`:\(\)\s*\{.*\};\s*:`),            // fork bomb
}
