package text

import (
	"fmt"
	"slices"
	"strings"
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func join(s string, args []string) (string, error) {
	sep := ""
	if len(args) > 0 {
		sep = args[0]
	}
	return strings.Join(strings.Fields(s), sep), nil
}

func replace(s string, args []string) (string, error) {
	if args[0] == "" {
		return "", fmt.Errorf("search string is empty")
	}
	return strings.ReplaceAll(s, args[0], args[1]), nil
}

// splitLines splits on \n and drops the \r of CRLF endings.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func dropBlankLines(s string) string {
	var kept []string
	for _, l := range splitLines(s) {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

func sortLines(s string) string {
	lines := splitLines(s)
	slices.Sort(lines)
	return strings.Join(lines, "\n")
}

func uniqueLines(s string) string {
	seen := make(map[string]bool)
	var kept []string
	for _, l := range splitLines(s) {
		if seen[l] {
			continue
		}
		seen[l] = true
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}
