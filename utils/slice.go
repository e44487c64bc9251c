// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

import "slices"

func Filter[T any](s []T, f func(T) bool) []T {
	r := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

func Map[T, U any](s []T, f func(T) U) []U {
	r := make([]U, len(s))
	for i, v := range s {
		r[i] = f(v)
	}
	return r
}

func FlatMap[T, U any](s []T, f func(T) []U) []U {
	r := make([]U, 0, len(s))
	for _, v := range s {
		r = append(r, f(v)...)
	}
	return r
}

func Find[T any](s []T, f func(T) bool) (T, bool) {
	for _, v := range s {
		if f(v) {
			return v, true
		}
	}
	var t T
	return t, false
}

func Any[T any](s []T, f func(T) bool) bool {
	for _, v := range s {
		if f(v) {
			return true
		}
	}
	return false
}

func All[T any](s []T, f func(T) bool) bool {
	for _, v := range s {
		if !f(v) {
			return false
		}
	}
	return true
}

func UniqBy[T any, K comparable](s []T, f func(T) K) []T {
	seen := make(map[K]bool)
	res := make([]T, 0)
	for _, v := range s {
		if _, ok := seen[f(v)]; !ok {
			seen[f(v)] = true
			res = append(res, v)
		}
	}
	return res
}

func Uniq[T comparable](s []T) []T {
	return UniqBy(s, func(t T) T { return t })
}

func Contains[T comparable](s []T, el T) bool {
	return slices.Contains(s, el)
}

func ContainsAll[T comparable](s []T, needed []T) bool {
	return All(needed, func(n T) bool {
		return Contains(s, n)
	})
}

func GroupBy[T any, K comparable](s []T, f func(T) K) map[K][]T {
	res := make(map[K][]T)
	for _, v := range s {
		res[f(v)] = append(res[f(v)], v)
	}
	return res
}

// SortedUniq returns the distinct elements of s in sorted order. Aggregate
// views rely on it to produce identical output regardless of input ordering.
func SortedUniq[T interface {
	~string | ~int | ~int64
}](s []T) []T {
	res := Uniq(s)
	slices.Sort(res)
	return res
}
