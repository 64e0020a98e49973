package engine

import (
	"strconv"
	"strings"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0, or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// parsePoint parses "row,col". Whitespace around either number is allowed;
// negative numbers are accepted so callers can probe off-board squares.
func parsePoint(s string) (row, col int, ok bool) {
	r, c, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return 0, 0, false
	}
	col, err = strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}
