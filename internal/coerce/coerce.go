// Package coerce converts loosely-typed spreadsheet cells and form values
// into the typed fields of a daily log record. Nothing here returns an
// error: malformed input degrades to the field's default (or nil for
// floats), and only an unparseable date signals failure, via the ok bool.
package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ranjidha/myHealth/internal/model"
)

// Int interprets value as an integer. Nil, blank, whitespace-only, and
// the literal "nan" (any case) mean "use def". Decimal text is truncated
// toward zero, so "24.0" becomes 24. Anything else malformed yields def.
func Int(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return int(v)
	case float32:
		return Int(float64(v), def)
	case json.Number:
		return Int(string(v), def)
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "nan") {
			return def
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f)
		}
		return def
	default:
		return def
	}
}

// Float interprets value as a floating-point number. Nil, blank,
// whitespace-only, "nan", and malformed input all yield nil, the
// "not measured" sentinel. NaN and infinities are never returned.
func Float(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		f := v
		return &f
	case float32:
		return Float(float64(v))
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		return Float(string(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "nan") {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Text stringifies value with "" for nil. Strings pass through untrimmed;
// trimming user input is the caller's job at the form boundary.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
}

// Day parses a date-like value into a calendar day. Unlike the other
// coercions there is no default: ok reports whether the value parsed,
// and callers drop the whole row when it did not.
func Day(value any) (model.Date, bool) {
	switch v := value.(type) {
	case nil:
		return model.Date{}, false
	case model.Date:
		if v.IsZero() {
			return model.Date{}, false
		}
		return v, true
	case time.Time:
		if v.IsZero() {
			return model.Date{}, false
		}
		return model.DateOf(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "nan") {
			return model.Date{}, false
		}
		for _, layout := range dayLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return model.DateOf(t), true
			}
		}
		return model.Date{}, false
	default:
		return model.Date{}, false
	}
}
