package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a route :id parameter.
func ParseID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// FullName joins the name parts, tolerating blanks on either side.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
