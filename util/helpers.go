package util

// Default returns value unless it is the zero value for its type, in
// which case it returns defaultValue.
func Default[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
