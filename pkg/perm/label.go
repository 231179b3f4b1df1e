package perm

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/swaplab/swapplan/pkg/errors"
)

// Label is a concrete slot label for serialization boundaries.
//
// The planner itself is generic over any comparable type; Label exists for
// places where orderings cross a process boundary (CLI arguments, plan
// documents, HTTP requests) and labels must keep their integer-or-string
// identity through JSON. An integer label and a string label with the same
// digits are distinct: Int(2) != Str("2").
//
// The zero value is the empty string label.
type Label struct {
	str   string
	num   int64
	isNum bool
}

// Int returns an integer label.
func Int(n int) Label {
	return Label{num: int64(n), isNum: true}
}

// Str returns a string label.
func Str(s string) Label {
	return Label{str: s}
}

// Parse interprets a textual token as a label: tokens that parse as base-10
// integers become integer labels, everything else string labels. This is the
// convention used for CLI input, where "4,2,0" and "c,3,a" both describe
// label sets.
func Parse(tok string) Label {
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Label{num: n, isNum: true}
	}
	return Label{str: tok}
}

// IsInt reports whether the label is an integer label.
func (l Label) IsInt() bool { return l.isNum }

// Int returns the integer value and true for integer labels, 0 and false
// otherwise.
func (l Label) Int() (int64, bool) {
	return l.num, l.isNum
}

// String renders the label for display. Integer and string labels with the
// same digits render identically; use the JSON form where the distinction
// matters.
func (l Label) String() string {
	if l.isNum {
		return strconv.FormatInt(l.num, 10)
	}
	return l.str
}

// MarshalJSON encodes integer labels as JSON numbers and string labels as
// JSON strings.
func (l Label) MarshalJSON() ([]byte, error) {
	if l.isNum {
		return strconv.AppendInt(nil, l.num, 10), nil
	}
	return json.Marshal(l.str)
}

// UnmarshalJSON accepts a JSON number (integer) or JSON string. Anything
// else, including fractional numbers, is rejected with INVALID_LABEL.
func (l *Label) UnmarshalJSON(data []byte) error {
	d := bytes.TrimSpace(data)
	if len(d) == 0 {
		return errors.New(errors.ErrCodeInvalidLabel, "empty label")
	}

	if d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLabel, err, "decode string label")
		}
		*l = Label{str: s}
		return nil
	}

	n, err := strconv.ParseInt(string(d), 10, 64)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidLabel,
			"label must be an integer or a string, got %s", string(d))
	}
	*l = Label{num: n, isNum: true}
	return nil
}

// ParseAll converts a list of textual tokens into labels via [Parse].
func ParseAll(toks []string) []Label {
	out := make([]Label, len(toks))
	for i, t := range toks {
		out[i] = Parse(t)
	}
	return out
}
