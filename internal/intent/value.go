package intent

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the shapes an extracted parameter can take.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a closed union of the parameter types the extractor produces.
// The zero Value is an empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
	list []string
}

func String(s string) Value { return Value{kind: KindString, s: s} }
func Int(i int64) Value { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload; ok is false for other kinds.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Int returns the integer payload; ok is false for other kinds.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the numeric payload. Integers are widened.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }
func (v Value) Time() (time.Time, bool) { return v.t, v.kind == KindTime }

// List returns a copy of the list payload.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindTime:
		return v.t.Equal(o.t)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(TimeLayout)
	case KindList:
		return strings.Join(v.list, ", ")
	default:
		return v.s
	}
}

// MarshalJSON renders the payload as its natural JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindBool:
		return json.Marshal(v.b)
	case KindTime:
		return json.Marshal(v.t.Format(TimeLayout))
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return json.Marshal(v.s)
	}
}

// TimeLayout is how time parameters are rendered (microsecond precision).
const TimeLayout = "2006-01-02T15:04:05.999999"

// Params maps parameter names to extracted values for one (task, intent).
type Params map[string]Value

// Has reports whether key was extracted.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
