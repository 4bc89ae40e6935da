// Package search implements the universal search and sort pipeline used
// by every listing view: bookings, users, courts, coupons, venues,
// sports and payment methods.  The pipeline is generic over the record
// shape; each call site supplies the text fields that participate in
// filtering and the key that drives sorting.
package search

import (
	"sort"
	"strings"
)

// Filter returns the records whose fields contain query as a
// case-insensitive substring.  An empty (or all-whitespace) query
// returns the input unchanged, preserving the original order.  A record
// matches when any one of its fields matches.
func Filter[T any](records []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		for _, f := range fields(rec) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// SortBy orders records by less using a stable sort: records comparing
// equal keep their relative order from the input.  The input slice is
// not modified.
func SortBy[T any](records []T, less func(a, b T) bool) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
