// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package resolve turns arrays of foreign identifiers into display names or
// nested entity objects. It never fails a read over a dangling reference:
// name resolution substitutes the raw identifier, object resolution drops
// the slot, and a missing referenced collection degrades to passthrough.
package resolve

import "sort"

// NameTable builds an id → display-name lookup from a referenced
// collection in a single pass.
func NameTable[T any](items []T, key func(T) (id, name string)) map[string]string {
	table := make(map[string]string, len(items))
	for _, item := range items {
		id, name := key(item)
		table[id] = name
	}
	return table
}

// Names maps each identifier through the table, keeping the raw identifier
// for unresolved slots. The output always has the input's length. A nil
// table (referenced collection unavailable) passes every id through.
func Names(ids []string, table map[string]string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		if name, ok := table[id]; ok {
			out[i] = name
		} else {
			out[i] = id
		}
	}
	return out
}

// Table builds an id → entity lookup from a referenced collection.
func Table[T any](items []T, id func(T) string) map[string]T {
	table := make(map[string]T, len(items))
	for _, item := range items {
		table[id(item)] = item
	}
	return table
}

// Objects denormalizes identifiers into the full referenced entities,
// silently excluding any identifier that fails to resolve. The output
// holds the resolved entities in the identifiers' order.
func Objects[T any](ids []string, table map[string]T) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if obj, ok := table[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}

// ByPriority sorts items ascending by their priority key. The sort is
// stable, so equal priorities keep their input order. The input slice is
// not modified.
func ByPriority[T any](items []T, priority func(T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return priority(out[i]) < priority(out[j])
	})
	return out
}
