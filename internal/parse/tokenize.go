// Package parse reads a Rover problem description and produces the
// initial core.State and core.Goal.
package parse

import (
	"strconv"
	"strings"
)

// tokenize splits a line into words, treating "(" and ")" as their own
// tokens. Grounded on the reference parser's paren-aware tokenizer.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// stripParens removes one layer of enclosing "(" ... ")" if present.
func stripParens(tokens []string) []string {
	if len(tokens) >= 2 && tokens[0] == "(" && tokens[len(tokens)-1] == ")" {
		return tokens[1 : len(tokens)-1]
	}
	return tokens
}

// objectNumber extracts the trailing integer from an object's name, e.g.
// "waypoint7" -> 7. Returns -1 if the name carries no trailing digits.
func objectNumber(name string) int {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return -1
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return -1
	}
	return n
}

// modeIndex maps a mode's fixed PDDL name to its index. Returns -1 if
// unknown.
func modeIndex(name string) int {
	switch name {
	case "colour":
		return 0
	case "high_res":
		return 1
	case "low_res":
		return 2
	default:
		return -1
	}
}
