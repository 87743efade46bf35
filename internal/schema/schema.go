// Package schema declares the expected shapes of upstream payloads and
// exposes one validating parse operation per entity type. A parse
// returns a typed record together with the list of field-level
// violations found; the record is only usable when the list is empty.
// No fallback or normalization happens here; that is the normalizer's
// job.
package schema

import (
	"fmt"
	"strconv"
)

// Violation describes a single schema mismatch at a field path.
type Violation struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Reason
	}
	return v.Path + ": " + v.Reason
}

type collector struct {
	violations []Violation
}

func (c *collector) add(path, reason string) {
	c.violations = append(c.violations, Violation{Path: path, Reason: reason})
}

// object wraps a decoded JSON object and records violations for every
// accessor that does not find what it expects. Accessors return zero
// values on mismatch so parsing can continue and report all problems
// in one pass.
type object struct {
	fields map[string]any
	path   string
	c      *collector
}

func asObject(value any, path string, c *collector) (object, bool) {
	m, ok := value.(map[string]any)
	if !ok {
		c.add(path, "expected object")
		return object{}, false
	}
	return object{fields: m, path: path, c: c}, true
}

// hasString reports whether the field is present with a string value.
// Used by enum checks so a present-but-invalid value (including "") is
// flagged without doubling up on the missing-field violation.
func (o object) hasString(name string) bool {
	_, ok := o.fields[name].(string)
	return ok
}

func (o object) key(name string) string {
	if o.path == "" {
		return name
	}
	return o.path + "." + name
}

func indexPath(base string, i int) string {
	return base + "." + strconv.Itoa(i)
}

func (o object) str(name string) string {
	v, ok := o.fields[name]
	if !ok || v == nil {
		o.c.add(o.key(name), "required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.c.add(o.key(name), "expected string")
		return ""
	}
	return s
}

func (o object) optStr(name string) string {
	v, ok := o.fields[name]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.c.add(o.key(name), "expected string")
		return ""
	}
	return s
}

func (o object) nullableStr(name string) *string {
	v, ok := o.fields[name]
	if !ok {
		o.c.add(o.key(name), "required")
		return nil
	}
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		o.c.add(o.key(name), "expected string or null")
		return nil
	}
	return &s
}

func (o object) num(name string) float64 {
	v, ok := o.fields[name]
	if !ok || v == nil {
		o.c.add(o.key(name), "required")
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		o.c.add(o.key(name), "expected number")
		return 0
	}
	return f
}

func (o object) nullableNum(name string) *float64 {
	v, ok := o.fields[name]
	if !ok {
		o.c.add(o.key(name), "required")
		return nil
	}
	if v == nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		o.c.add(o.key(name), "expected number or null")
		return nil
	}
	return &f
}

func (o object) integer(name string) int64 {
	return int64(o.num(name))
}

func (o object) count(name string) int {
	return int(o.num(name))
}

func (o object) nullableInt(name string) *int64 {
	f := o.nullableNum(name)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

func (o object) boolean(name string) bool {
	v, ok := o.fields[name]
	if !ok || v == nil {
		o.c.add(o.key(name), "required")
		return false
	}
	b, ok := v.(bool)
	if !ok {
		o.c.add(o.key(name), "expected boolean")
		return false
	}
	return b
}

func (o object) array(name string) []any {
	v, ok := o.fields[name]
	if !ok || v == nil {
		o.c.add(o.key(name), "required")
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		o.c.add(o.key(name), "expected array")
		return nil
	}
	return arr
}

func (o object) strArray(name string) []string {
	arr := o.array(name)
	out := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			o.c.add(indexPath(o.key(name), i), "expected string")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (o object) child(name string) (object, bool) {
	v, ok := o.fields[name]
	if !ok || v == nil {
		o.c.add(o.key(name), "required")
		return object{c: o.c}, false
	}
	return asObject(v, o.key(name), o.c)
}

// numberMapOrNull matches the union record<string, number> | null.
func (o object) numberMapOrNull(name string) map[string]float64 {
	v, ok := o.fields[name]
	if !ok {
		o.c.add(o.key(name), "required")
		return nil
	}
	if v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.c.add(o.key(name), "expected object or null")
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, el := range m {
		f, ok := el.(float64)
		if !ok {
			o.c.add(o.key(name)+"."+k, "expected number")
			continue
		}
		out[k] = f
	}
	return out
}

// optStringMap matches an optional record<string, string>.
func (o object) optStringMap(name string) map[string]string {
	v, ok := o.fields[name]
	if !ok || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.c.add(o.key(name), "expected object")
		return nil
	}
	out := make(map[string]string, len(m))
	for k, el := range m {
		s, ok := el.(string)
		if !ok {
			o.c.add(o.key(name)+"."+k, "expected string")
			continue
		}
		out[k] = s
	}
	return out
}

func enumViolation(value string) string {
	return fmt.Sprintf("invalid enum value %q", value)
}
