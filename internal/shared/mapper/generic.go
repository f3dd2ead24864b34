package mapper

import "fmt"

// MapSlice applies mapFunc to each element. A nil input yields nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError stops at the first failing element.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]R, 0, len(items))
	for i, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item %d: %w", i, err)
		}
		result = append(result, mapped)
	}
	return result, nil
}

// MapSlicePtrSkipNil maps a pointer slice, dropping nil inputs and nil outputs.
func MapSlicePtrSkipNil[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if mapped := mapFunc(item); mapped != nil {
			result = append(result, mapped)
		}
	}
	return result
}

// IndexBy builds a lookup map keyed by key(item). Later items win on collision.
func IndexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[key(item)] = item
	}
	return out
}
