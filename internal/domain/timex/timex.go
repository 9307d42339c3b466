// Package timex implements the in-match clock notation used across the
// timeline: a base minute with an optional stoppage-time extra, rendered
// as "45" or "45+2".
package timex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/matchline/internal/domain/status"
)

// Expression is a parsed in-match clock value. Extra is zero for values
// inside the nominal period length.
type Expression struct {
	Base  int
	Extra int
}

// Sentinel is returned for unparsable input. It sorts before every valid
// expression and never matches a range test.
var Sentinel = Expression{Base: -1, Extra: -1}

var exprRe = regexp.MustCompile(`^(\d+)(?:\+(\d+))?`)

// Parse reads a clock expression from raw text. A leading integer with an
// optional "+integer" suffix is accepted; anything else yields Sentinel.
func Parse(raw string) Expression {
	if raw == "" {
		return Sentinel
	}
	m := exprRe.FindStringSubmatch(raw)
	if m == nil {
		return Sentinel
	}
	base, _ := strconv.Atoi(m[1])
	extra := 0
	if m[2] != "" {
		extra, _ = strconv.Atoi(m[2])
	}
	return Expression{Base: base, Extra: extra}
}

// Valid reports whether e holds a parsed value rather than the sentinel.
func (e Expression) Valid() bool {
	return e.Base >= 0
}

// String renders the expression in display form.
func (e Expression) String() string {
	if e.Extra > 0 {
		return fmt.Sprintf("%d+%d", e.Base, e.Extra)
	}
	return strconv.Itoa(e.Base)
}

// Less orders expressions ascending by (base, extra). The sentinel sorts
// before all valid values.
func (e Expression) Less(other Expression) bool {
	if e.Base != other.Base {
		return e.Base < other.Base
	}
	return e.Extra < other.Extra
}

// InRange reports whether the base minute falls inside the inclusive
// [start, end] window. Stoppage extras are ignored so "45+3" still belongs
// to the first-half window. The sentinel never matches.
func (e Expression) InRange(start, end int) bool {
	return e.Base >= start && e.Base <= end
}

// periodBase maps an in-play status code to the nominal length of the
// period it belongs to. Statuses outside this table have no base and the
// current-minute computation falls through to the plain minutes+1 form.
var periodBase = map[status.Code]int{
	status.FirstHalf:       45,
	status.SecondHalf:      90,
	status.ExtraTimeFirst:  105,
	status.ExtraTimeSecond: 120,
}

// Current computes the displayed current minute from the feed's raw
// elapsed counter, a "minutes:seconds" shaped string. The counter is
// zero-based, so the displayed minute adds one; once the nominal period
// length is exceeded the value switches to "base+extra" stoppage form.
// An absent or zero counter yields ("", false).
func Current(code status.Code, elapsed string) (string, bool) {
	if elapsed == "" || elapsed == "0" {
		return "", false
	}
	minuteText, _, _ := strings.Cut(elapsed, ":")
	minutes, err := strconv.Atoi(strings.TrimSpace(minuteText))
	if err != nil {
		return "", false
	}
	base, ok := periodBase[code]
	if ok && minutes >= base {
		return Expression{Base: base, Extra: minutes - base + 1}.String(), true
	}
	return strconv.Itoa(minutes + 1), true
}
