package utils

// RemoveDuplicates returns the unique elements of items, each at the position
// of its first occurrence.
func RemoveDuplicates[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	var unique []T
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
