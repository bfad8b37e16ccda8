// Package cell provides a closed variant type for spreadsheet cell values.
// Source columns carry no fixed type, so every cell is one of: text, number,
// boolean, timestamp, or null.
package cell

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Text
	Number
	Bool
	Time
)

// Value is an immutable spreadsheet cell value. The zero Value is null.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
	t    time.Time
}

func NewText(s string) Value { return Value{kind: Text, text: s} }

func NewNumber(f float64) Value { return Value{kind: Number, num: f} }

func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

func NewTime(t time.Time) Value { return Value{kind: Time, t: t} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == Null }

// String renders the value the way it appears in the output workbook.
// Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case Text:
		return v.text
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(v.b)
	case Time:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

// Native returns the value as the type excelize expects when writing a row.
// Null maps to nil, which leaves the cell empty.
func (v Value) Native() any {
	switch v.kind {
	case Text:
		return v.text
	case Number:
		return v.num
	case Bool:
		return v.b
	case Time:
		return v.t
	default:
		return nil
	}
}

// Encode produces a kind-tagged representation that is stable across runs,
// used to build duplicate-detection keys. Values of different kinds never
// encode equal even when they render the same (text "1" vs number 1).
func (v Value) Encode() string {
	switch v.kind {
	case Text:
		return "s:" + v.text
	case Number:
		return "n:" + strconv.FormatFloat(v.num, 'f', -1, 64)
	case Bool:
		return "b:" + strconv.FormatBool(v.b)
	case Time:
		return "t:" + strconv.FormatInt(v.t.UnixNano(), 10)
	default:
		return "z"
	}
}

// Compare orders two values; nulls sort after everything else. Values of
// different non-null kinds order by kind. Returns -1, 0 or 1.
func Compare(a, b Value) int {
	if a.kind == Null || b.kind == Null {
		switch {
		case a.kind == Null && b.kind == Null:
			return 0
		case a.kind == Null:
			return 1
		default:
			return -1
		}
	}
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case Text:
		return strings.Compare(a.text, b.text)
	case Number:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case Bool:
		switch {
		case !a.b && b.b:
			return -1
		case a.b && !b.b:
			return 1
		}
		return 0
	case Time:
		switch {
		case a.t.Before(b.t):
			return -1
		case a.t.After(b.t):
			return 1
		}
		return 0
	}
	return 0
}
