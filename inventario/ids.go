package inventario

// siguienteID returns max(existing ids)+1, or 1 for an empty collection.
// Ids are monotonic, never gap-filling: deleting record 3 of 5 does not make
// 3 reusable.
func siguienteID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if id(item) >= next {
			next = id(item) + 1
		}
	}
	return next
}
