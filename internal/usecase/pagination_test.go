package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		want  Pagination
	}{
		{
			name: "empty result set",
			page: 1, limit: 10, total: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "last page of three",
			page: 3, limit: 10, total: 25,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasNext: false, HasPrev: true},
		},
		{
			name: "first page of three",
			page: 1, limit: 10, total: 25,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page",
			page: 2, limit: 10, total: 25,
			want: Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: true},
		},
		{
			name: "page beyond the end",
			page: 9, limit: 10, total: 25,
			want: Pagination{CurrentPage: 9, TotalPages: 3, TotalItems: 25, HasNext: false, HasPrev: true},
		},
		{
			name: "exact multiple of limit",
			page: 2, limit: 5, total: 10,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 10, HasNext: false, HasPrev: true},
		},
		{
			name: "single partial page",
			page: 1, limit: 10, total: 3,
			want: Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 3, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"whole number", 4.0, 4.0},
		{"already one decimal", 4.5, 4.5},
		{"half rounds up", 4.75, 4.8},
		{"repeating third rounds up", 5.0 / 3.0, 1.7},
		{"repeating two thirds", 14.0 / 3.0, 4.7},
		{"rounds down below half", 4.74, 4.7},
		{"quarter rounds up", 4.25, 4.3},
		{"max rating", 5.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, roundRating(tt.in), 1e-9)
		})
	}
}
