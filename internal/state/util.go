package state

// indexAdd moves an index forward with wraparound. It is the identity for an empty list.
func indexAdd(value, size int) int {
	if size <= 0 {
		return value
	}
	return (value + 1) % size
}

// indexSubtract moves an index back with wraparound. It is the identity for an empty list.
func indexSubtract(value, size int) int {
	if size <= 0 {
		return value
	}
	return (value + size - 1) % size
}

// moveIndex applies a vertical direction to an index.
func moveIndex(value, size int, d Direction) int {
	switch d {
	case Down:
		return indexAdd(value, size)
	case Up:
		return indexSubtract(value, size)
	default:
		return value
	}
}

// endIndex returns the first or last index, or value for an empty list.
func endIndex(value, size int, e End) int {
	if size <= 0 {
		return value
	}
	if e == First {
		return 0
	}
	return size - 1
}
