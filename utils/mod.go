package utils

// FindIndex returns the position of item in slice, or -1 when absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// FloorMod is a mod b with the sign of b, so FloorMod(-1, 3) == 2.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
