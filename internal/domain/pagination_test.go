package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		total   int64
		want    Pagination
	}{
		{
			name:    "página intermediária",
			page:    2,
			perPage: 5,
			total:   20,
			want:    Pagination{Page: 2, PerPage: 5, TotalCount: 20, TotalPages: 4, HasNext: true, HasPrev: true},
		},
		{
			name:    "última página incompleta",
			page:    3,
			perPage: 10,
			total:   21,
			want:    Pagination{Page: 3, PerPage: 10, TotalCount: 21, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:    "sem registros",
			page:    1,
			perPage: 20,
			total:   0,
			want:    Pagination{Page: 1, PerPage: 20, TotalCount: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name:    "página além do total",
			page:    9,
			perPage: 20,
			total:   5,
			want:    Pagination{Page: 9, PerPage: 20, TotalCount: 5, TotalPages: 1, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.perPage, tt.total))
		})
	}
}
