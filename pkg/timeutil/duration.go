package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitMap       = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseDayOffset parses a signed day offset such as "3", "-1", "+2d" or
// "1w2d" and returns the number of days.
func ParseDayOffset(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, fmt.Errorf("empty day offset")
	}

	sign := 1
	switch trimmed[0] {
	case '-':
		sign = -1
		trimmed = trimmed[1:]
	case '+':
		trimmed = trimmed[1:]
	}
	if strings.TrimSpace(trimmed) == "" {
		return 0, fmt.Errorf("invalid day offset %q", input)
	}

	remaining := trimmed
	total := 0
	for len(strings.TrimSpace(remaining)) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid day offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid day offset value %q: %w", matches[1], err)
		}
		days, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported day offset unit %q", matches[2])
		}
		total += value * days

		remaining = remaining[len(matches[0]):]
	}

	return sign * total, nil
}

// FormatDayOffset renders days with a sign using week/day tokens.
func FormatDayOffset(days int) string {
	if days == 0 {
		return "0d"
	}
	sign := "+"
	if days < 0 {
		sign = "-"
		days = -days
	}

	var parts []string
	if w := days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return sign + strings.Join(parts, "")
}
