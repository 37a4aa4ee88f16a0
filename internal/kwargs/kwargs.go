// Package kwargs implements a loosely typed keyword argument bag.
//
// Keys are compared after normalization: "BarStd", "bar_std" and
// "barstd" are the same key. Every value taken from a Bag is marked as
// used; Unused lists the rest.
package kwargs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// Key returns the normalized form of a keyword.
func Key(s string) string {
	return strings.ReplaceAll(strcase.ToSnake(strings.TrimSpace(s)), "_", "")
}

// Bag holds keyword arguments by normalized key.
type Bag struct {
	vals     map[string]any
	names    map[string]string // normalized key -> key as given
	used     map[string]bool
	warnings []string
}

// New returns a bag with the arguments in m. The aliases map
// alternative keywords to their canonical keyword. If several given
// keys end up as the same canonical key the alphabetically first one
// wins and a warning is recorded.
func New(m map[string]any, aliases map[string]string) *Bag {
	b := &Bag{
		vals:  make(map[string]any, len(m)),
		names: make(map[string]string, len(m)),
		used:  make(map[string]bool),
	}
	alias := make(map[string]string, len(aliases))
	for from, to := range aliases {
		alias[Key(from)] = Key(to)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		nk := Key(k)
		if to, ok := alias[nk]; ok {
			nk = to
		}
		if m[k] == nil {
			continue
		}
		if prev, ok := b.names[nk]; ok {
			b.warnings = append(b.warnings,
				fmt.Sprintf("Got conflicting or duplicate keyword arguments %s=%v and %s=%v. Using the first one.", prev, b.vals[nk], k, m[k]))
			continue
		}
		b.vals[nk] = m[k]
		b.names[nk] = k
	}
	return b
}

// Warnings returns the conflicts found by New.
func (b *Bag) Warnings() []string { return b.warnings }

// Has reports whether key was given.
func (b *Bag) Has(key string) bool {
	_, ok := b.vals[Key(key)]
	return ok
}

// Take returns the value of key and marks it used.
func (b *Bag) Take(key string) (any, bool) {
	k := Key(key)
	v, ok := b.vals[k]
	if ok {
		b.used[k] = true
	}
	return v, ok
}

// Name returns the key as the caller spelled it.
func (b *Bag) Name(key string) string {
	if n, ok := b.names[Key(key)]; ok {
		return n
	}
	return key
}

// Unused returns the given keys which were never taken, sorted.
func (b *Bag) Unused() []string {
	var out []string
	for k, name := range b.names {
		if !b.used[k] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (b *Bag) typeErr(key string, v any, want string) error {
	return errors.Errorf("invalid %s=%v (%T): want %s", b.Name(key), v, v, want)
}

// Bool returns the boolean value of key, nil if it was not given.
func (b *Bag) Bool(key string) (*bool, error) {
	v, ok := b.Take(key)
	if !ok {
		return nil, nil
	}
	t, ok := v.(bool)
	if !ok {
		return nil, b.typeErr(key, v, "bool")
	}
	return &t, nil
}

// Flag returns the value of key, false if it was not given.
func (b *Bag) Flag(key string) (bool, error) {
	p, err := b.Bool(key)
	if p == nil || err != nil {
		return false, err
	}
	return *p, nil
}

// String returns the string value of key.
func (b *Bag) String(key string) (string, bool, error) {
	v, ok := b.Take(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, b.typeErr(key, v, "string")
	}
	return s, true, nil
}

// Float returns the numeric value of key.
func (b *Bag) Float(key string) (float64, bool, error) {
	v, ok := b.Take(key)
	if !ok {
		return 0, false, nil
	}
	x, ok := ToFloat(v)
	if !ok {
		return 0, false, b.typeErr(key, v, "number")
	}
	return x, true, nil
}

// Int returns the integer value of key.
func (b *Bag) Int(key string) (int, bool, error) {
	v, ok := b.Take(key)
	if !ok {
		return 0, false, nil
	}
	n, ok := ToInt(v)
	if !ok {
		return 0, false, b.typeErr(key, v, "integer")
	}
	return n, true, nil
}

// Floats returns the value of key as a list of numbers.
func (b *Bag) Floats(key string) ([]float64, bool, error) {
	v, ok := b.Take(key)
	if !ok {
		return nil, false, nil
	}
	xs, ok := ToFloats(v)
	if !ok {
		return nil, false, b.typeErr(key, v, "list of numbers")
	}
	return xs, true, nil
}

// ToFloat converts the numeric types to float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	}
	return 0, false
}

// ToInt converts integer types to int. Floats are accepted if they are
// whole numbers.
func ToInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case int32:
		return int(x), true
	case uint:
		return int(x), true
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	}
	return 0, false
}

// ToFloats converts numeric slices and slices of numbers to []float64.
// The result is always a fresh slice.
func ToFloats(v any) ([]float64, bool) {
	switch x := v.(type) {
	case []float64:
		return append([]float64(nil), x...), true
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, len(x))
		for i, e := range x {
			f, ok := ToFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}
