// Package amount extracts the trailing monetary amount from a statement line.
//
// Credit-card exports embed the amount at the end of a free-form line, in
// Norwegian notation: optional minus sign, space-grouped thousands, comma
// decimal separator ("1 234,50", "-49,00", "12345,67"). There are no column
// boundaries, so the scanner walks the line right to left and decides from
// local group-size evidence whether a space separates thousands groups or
// ends the number.
package amount

import (
	"fmt"
	"strings"
)

// GroupSeparatorMode selects how space characters inside a number are
// interpreted.
type GroupSeparatorMode string

const (
	// GroupSeparatorAuto treats a space as a thousands separator when it
	// follows a complete 3-digit group, and additionally accepts a single
	// ungrouped run of more than 3 digits ("12345,67").
	GroupSeparatorAuto GroupSeparatorMode = "auto"
	// GroupSeparatorSpace is the strict variant: groups must be exactly
	// 3 digits (except the leftmost), and an over-long run is discarded
	// rather than accepted as a literal.
	GroupSeparatorSpace GroupSeparatorMode = "space"
	// GroupSeparatorNone never treats a space as a separator; the first
	// space always ends the number.
	GroupSeparatorNone GroupSeparatorMode = "none"
)

// Options control the extraction policy.
type Options struct {
	// GroupSeparator selects the thousands-grouping variant. Empty means
	// GroupSeparatorAuto.
	GroupSeparator GroupSeparatorMode
	// RequireIntegerPart rejects decimal-only amounts such as ",50" when
	// set. When unset they parse as 0.50.
	RequireIntegerPart bool
}

// Token is the extracted amount: its normalized parts plus the byte offset
// in the original line where the amount text begins. Start is tracked during
// the scan, so line[Start:] reproduces the matched amount text verbatim,
// including its original internal spacing.
type Token struct {
	Integer  string
	Fraction string
	Negative bool
	Start    int

	valid bool
}

// Valid reports whether the token holds a usable amount under the policy it
// was extracted with.
func (t Token) Valid() bool { return t.valid }

// Normalized returns the amount as "[-]integer.[fraction]". The fraction may
// be empty ("150.") and, unless RequireIntegerPart is set, the integer may be
// too (".50").
func (t Token) Normalized() string {
	n := t.Integer + "." + t.Fraction
	if t.Negative {
		return "-" + n
	}
	return n
}

// Extractor scans lines for trailing amounts under a fixed policy.
type Extractor struct {
	opts Options
}

// NewExtractor validates opts and returns an Extractor.
func NewExtractor(opts Options) (*Extractor, error) {
	switch opts.GroupSeparator {
	case "", GroupSeparatorAuto:
		opts.GroupSeparator = GroupSeparatorAuto
	case GroupSeparatorSpace, GroupSeparatorNone:
	default:
		return nil, fmt.Errorf("unknown group separator mode %q", opts.GroupSeparator)
	}
	return &Extractor{opts: opts}, nil
}

// MustExtractor is NewExtractor for known-good options.
func MustExtractor(opts Options) *Extractor {
	e, err := NewExtractor(opts)
	if err != nil {
		panic(err)
	}
	return e
}

// scanState is the phase of the right-to-left scan.
type scanState int

const (
	// scanFraction: no decimal comma seen yet; accumulated digits may
	// still turn out to be the fraction.
	scanFraction scanState = iota
	// scanInteger: the decimal comma has been consumed; accumulated
	// digits belong to the integer part.
	scanInteger
	scanDone
)

// Extract scans line from the end and returns the trailing amount. It never
// fails: a line with no trailing number yields an empty, invalid Token whose
// Start points past the last non-space byte.
//
// The scan is a single reverse pass with one digit accumulator and a list of
// confirmed 3-digit groups. Per character class:
//
//	digit  accumulate
//	comma  first one captures the accumulator as the fraction;
//	       a second comma ends the number
//	minus  sign of the number if the accumulator is a valid leftmost
//	       group (<=3 digits); otherwise ends the number unconsumed
//	space  separator if the accumulator is exactly 3 digits,
//	       otherwise ends the number (see GroupSeparatorMode)
//	other  ends the number
//
// Offsets are byte offsets; any non-ASCII byte falls into the "other" class,
// which is correct because the number itself is plain ASCII.
func (e *Extractor) Extract(line string) Token {
	end := len(line)
	for end > 0 && isSpace(line[end-1]) {
		end--
	}

	var (
		acc      []byte   // current digit run, rightmost digit first
		groups   []string // confirmed groups, rightmost group first
		accLeft  int      // offset of the leftmost digit in acc
		sawGroup bool     // a space-confirmed 3-digit group exists
		state    = scanFraction
		tok      = Token{Start: end}
	)

	// commit marks offset i as part of the matched amount text.
	commit := func(i int) {
		if i < tok.Start {
			tok.Start = i
		}
	}

	// confirm moves the accumulator into the group list.
	confirm := func() {
		groups = append(groups, reverseDigits(acc))
		commit(accLeft)
		acc = acc[:0]
	}

	// boundary ends the number at the current position. An accumulator of
	// more than 3 digits is only acceptable as a single ungrouped run in
	// auto mode, and only when no space group was confirmed before it.
	boundary := func() {
		switch {
		case len(acc) == 0:
		case len(acc) <= 3:
			confirm()
		case e.opts.GroupSeparator == GroupSeparatorSpace:
			acc = acc[:0]
		case e.opts.GroupSeparator == GroupSeparatorAuto && sawGroup:
			acc = acc[:0]
		default:
			confirm()
		}
		state = scanDone
	}

	for i := end - 1; i >= 0 && state != scanDone; i-- {
		switch c := line[i]; {
		case c >= '0' && c <= '9':
			acc = append(acc, c)
			accLeft = i
		case c == ',':
			if state != scanFraction {
				boundary()
				break
			}
			tok.Fraction = reverseDigits(acc)
			acc = acc[:0]
			commit(i)
			state = scanInteger
		case c == '-':
			if len(acc) > 3 {
				boundary()
				break
			}
			if len(acc) > 0 {
				confirm()
			}
			tok.Negative = true
			commit(i)
			state = scanDone
		case c == ' ':
			switch {
			case e.opts.GroupSeparator == GroupSeparatorNone:
				boundary()
			case len(acc) == 0:
				// stray space left of a consumed separator; the
				// next character decides whether the number
				// continues
			case len(acc) == 3:
				confirm()
				sawGroup = true
			default:
				boundary()
			}
		default:
			boundary()
		}
	}
	if state != scanDone {
		boundary()
	}

	// Groups were confirmed right to left; reassemble in reading order.
	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
	}
	tok.Integer = b.String()
	tok.valid = tok.Integer != "" || (!e.opts.RequireIntegerPart && tok.Fraction != "")
	return tok
}

func reverseDigits(acc []byte) string {
	b := make([]byte, len(acc))
	for i, c := range acc {
		b[len(acc)-1-i] = c
	}
	return string(b)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
