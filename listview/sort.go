// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/danielhkuo/survey-portal/models"
)

type SortField string

const (
	SortByName      SortField = "name"
	SortByAge       SortField = "age"
	SortByCreatedAt SortField = "created_at"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Default ordering on load
const (
	DefaultSortField     = SortByCreatedAt
	DefaultSortDirection = Desc
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortByName, SortByAge, SortByCreatedAt:
		return f, nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(s); d {
	case Asc, Desc:
		return d, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

func (d SortDirection) Toggle() SortDirection {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Sort returns a sorted copy of rs; rs itself is left untouched.
// Names compare byte-wise, so case matters.
func Sort(rs []models.Response, field SortField, dir SortDirection) []models.Response {
	out := slices.Clone(rs)
	if out == nil {
		out = []models.Response{}
	}

	cmp := compareBy(field)
	if dir == Desc {
		asc := cmp
		cmp = func(a, b models.Response) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func compareBy(field SortField) func(a, b models.Response) int {
	switch field {
	case SortByName:
		return func(a, b models.Response) int { return strings.Compare(a.Name, b.Name) }
	case SortByAge:
		return func(a, b models.Response) int { return a.Age - b.Age }
	default:
		return func(a, b models.Response) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}
