// Package mapper holds small generic helpers for converting slices between
// layers (persistence models, domain entities, DTOs).
package mapper

import "fmt"

// MapSlice applies mapFunc to each element. Returns nil if items is nil.
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

// MapSliceWithID maps pointer items with a fallible mapFunc, skipping nil
// inputs and naming the failing item's id in the returned error.
func MapSliceWithID[T any, R any, ID any](items []*T, mapFunc func(*T) (*R, error), getID func(*T) ID) ([]*R, error) {
	if items == nil {
		return nil, nil
	}
	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
