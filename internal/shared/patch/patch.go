// Package patch implements diff-apply updates: each mutable field is written
// to its destination only when the incoming value differs, and Apply reports
// whether anything changed so callers can skip the persist entirely.
package patch

import "time"

// Change is one declared mutable field of an entity.
type Change interface {
	// apply writes the incoming value and reports whether it differed.
	apply() bool
}

type field[T comparable] struct {
	dst *T
	src T
}

func (f field[T]) apply() bool {
	if *f.dst == f.src {
		return false
	}
	*f.dst = f.src
	return true
}

// Field declares a comparable field to diff against its current value.
func Field[T comparable](dst *T, src T) Change {
	return field[T]{dst: dst, src: src}
}

type timeField struct {
	dst *time.Time
	src time.Time
}

func (f timeField) apply() bool {
	if f.dst.Equal(f.src) {
		return false
	}
	*f.dst = f.src
	return true
}

// Time declares a time.Time field. time.Time is compared with Equal so two
// representations of the same instant never count as a change.
func Time(dst *time.Time, src time.Time) Change {
	return timeField{dst: dst, src: src}
}

// Apply runs every declared change and reports whether at least one field
// actually changed. All changes are applied; there is no short-circuit.
func Apply(changes ...Change) bool {
	changed := false
	for _, c := range changes {
		if c.apply() {
			changed = true
		}
	}
	return changed
}
