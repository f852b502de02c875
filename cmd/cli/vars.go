// Package cli holds small helpers shared by the cmdrun subcommands.
package cli

import (
	"fmt"
	"strings"
)

// ParseVars turns repeated --var NAME=VALUE flags into a map.
func ParseVars(flags []string) (map[string]string, error) {
	vars := make(map[string]string, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable %q, expected NAME=VALUE", f)
		}
		vars[name] = value
	}
	return vars, nil
}

// Line joins the positional arguments back into one command line.
func Line(args []string) string {
	return strings.Join(args, " ")
}
