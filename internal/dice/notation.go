package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrTooManyDice indicates a notation expression expands past the request cap.
var ErrTooManyDice = errors.New("too many dice in one request")

// ErrBadNotation indicates a dice expression could not be parsed.
var ErrBadNotation = errors.New("cannot parse dice notation")

// maxNotationDice caps how many dice a single expression may expand to.
const maxNotationDice = 100

var notationRe = regexp.MustCompile(`^(?:([0-9]+))?(d[0-9]+)$`)

// ParseNotation expands dice notation such as "2d6 d20" into an ordered die
// type sequence. Terms are separated by whitespace, "+" or ",". A term
// without a count rolls one die.
func ParseNotation(expr string) ([]DieType, error) {
	fields := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '+' || r == ','
	})
	if len(fields) == 0 {
		return nil, ErrNoDice
	}

	var dice []DieType
	for _, field := range fields {
		match := notationRe.FindStringSubmatch(field)
		if match == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNotation, field)
		}
		count := 1
		if match[1] != "" {
			parsed, err := strconv.Atoi(match[1])
			if err != nil || parsed < 1 {
				return nil, fmt.Errorf("%w: %q", ErrBadNotation, field)
			}
			count = parsed
		}
		die, err := ParseDieType(match[2])
		if err != nil {
			return nil, err
		}
		if len(dice)+count > maxNotationDice {
			return nil, ErrTooManyDice
		}
		for i := 0; i < count; i++ {
			dice = append(dice, die)
		}
	}
	return dice, nil
}

// FormatNotation renders a die type sequence back into compact notation,
// grouping consecutive runs of the same die, e.g. "2d6 d20".
func FormatNotation(dice []DieType) string {
	if len(dice) == 0 {
		return ""
	}
	var terms []string
	run := 1
	for i := 1; i <= len(dice); i++ {
		if i < len(dice) && dice[i] == dice[i-1] {
			run++
			continue
		}
		if run == 1 {
			terms = append(terms, dice[i-1].String())
		} else {
			terms = append(terms, fmt.Sprintf("%d%s", run, dice[i-1]))
		}
		run = 1
	}
	return strings.Join(terms, " ")
}
