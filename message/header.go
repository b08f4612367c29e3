package message

import (
	"httpmsg/util/rule"
	"strings"

	"github.com/pkg/errors"
)

// field keeps the display-case name an entry was written with, next to
// its ordered values.
type field struct {
	name   string
	values []string
}

// Headers is an immutable bag of header fields. Lookups fold ASCII
// case; enumeration keeps the case of the write that created each
// entry, and only a full replace via [Headers.WithSet] updates it.
//
// The zero value is an empty bag.
type Headers struct {
	underlying map[string]field // keyed by rule.FoldName of the entry name
}

// NewHeaders builds a bag from an initial name to values mapping.
// Every pair is validated up front; nothing is constructed on failure.
// If two keys fold to the same name, which one wins is unspecified.
func NewHeaders(initial map[string][]string) (Headers, error) {
	h := Headers{}
	for name, values := range initial {
		var err error
		h, err = h.WithSet(name, values...)
		if err != nil {
			return Headers{}, err
		}
	}
	return h, nil
}

// Has reports whether an entry matching name exists.
func (h Headers) Has(name string) bool {
	_, ok := h.underlying[rule.FoldName(name)]
	return ok
}

// Values returns a copy of the ordered values for name, or nil if the
// entry is absent.
func (h Headers) Values(name string) []string {
	f, ok := h.underlying[rule.FoldName(name)]
	if !ok {
		return nil
	}
	return copyValues(f.values)
}

// Line returns the values for name joined with ", ", or "" if the
// entry is absent.
func (h Headers) Line(name string) string {
	f, ok := h.underlying[rule.FoldName(name)]
	if !ok {
		return ""
	}
	return strings.Join(f.values, ", ")
}

// All returns a snapshot of every entry, keyed by display-case name.
// Mutating the snapshot does not affect the bag.
func (h Headers) All() map[string][]string {
	all := make(map[string][]string, len(h.underlying))
	for _, f := range h.underlying {
		all[f.name] = copyValues(f.values)
	}
	return all
}

// Len returns the number of distinct entries.
func (h Headers) Len() int { return len(h.underlying) }

// WithSet returns a bag where name maps to exactly the given values.
// An existing match is replaced entirely, display-case included.
func (h Headers) WithSet(name string, values ...string) (Headers, error) {
	if err := validateField(name, values); err != nil {
		return Headers{}, err
	}

	clone := h.clone()
	clone.underlying[rule.FoldName(name)] = field{
		name:   name,
		values: copyValues(values),
	}
	return clone, nil
}

// WithAdded returns a bag with values appended to the entry for name.
// An existing entry keeps the display-case it was created with; a new
// entry takes the given name.
func (h Headers) WithAdded(name string, values ...string) (Headers, error) {
	if err := validateField(name, values); err != nil {
		return Headers{}, err
	}

	clone := h.clone()
	key := rule.FoldName(name)

	f, ok := clone.underlying[key]
	if !ok {
		f = field{name: name}
	}
	f.values = append(f.values, values...)

	clone.underlying[key] = f
	return clone, nil
}

// Without returns a bag with the entry matching name removed.
// Removing an absent name yields an equivalent bag.
func (h Headers) Without(name string) Headers {
	clone := h.clone()
	delete(clone.underlying, rule.FoldName(name))
	return clone
}

func (h Headers) clone() Headers {
	clone := make(map[string]field, len(h.underlying)+1)
	for k, f := range h.underlying {
		clone[k] = field{name: f.name, values: copyValues(f.values)}
	}
	return Headers{underlying: clone}
}

func validateField(name string, values []string) error {
	if !rule.IsValidFieldName(name) {
		return errors.Wrapf(ErrInvalidHeader, "field name %q", name)
	}
	if len(values) == 0 {
		return errors.Wrapf(ErrInvalidHeader, "field %q given no values", name)
	}
	for _, v := range values {
		if !rule.IsValidFieldValue(v) {
			return errors.Wrapf(ErrInvalidHeader, "field %q value %q", name, v)
		}
	}
	return nil
}

func copyValues(values []string) []string {
	clone := make([]string, len(values))
	copy(clone, values)
	return clone
}
