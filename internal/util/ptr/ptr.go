// Package ptr provides helper functions for creating pointers to primitive types.
package ptr

import "time"

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Time returns a pointer to the given time value.
func Time(t time.Time) *time.Time { return &t }

// Deref returns the value p points to, or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
