package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIndex reads a filtered entry index from a command argument.
func ParseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: expected a number", arg)
	}
	if i < 0 {
		return 0, fmt.Errorf("invalid index %d: must not be negative", i)
	}
	return i, nil
}
