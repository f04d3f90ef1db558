// Package ptr has helpers for optional values stored as pointers.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// String creates a pointer to the given string value.
func String(s string) *string {
	return &s
}

// Value returns the pointed-to value, or fallback when p is nil.
func Value[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// NonEmpty reports whether p points to a non-empty string.
func NonEmpty(p *string) bool {
	return p != nil && *p != ""
}
