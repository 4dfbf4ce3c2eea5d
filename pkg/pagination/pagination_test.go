package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   OffsetRequest
		want OffsetRequest
	}{
		{name: "zero values", in: OffsetRequest{}, want: OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{name: "negative", in: OffsetRequest{Page: -2, Size: -1}, want: OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{name: "too large", in: OffsetRequest{Page: 3, Size: PageMaxSize + 1}, want: OffsetRequest{Page: 3, Size: PageMaxSize}},
		{name: "valid", in: OffsetRequest{Page: 2, Size: 10}, want: OffsetRequest{Page: 2, Size: 10}},
		{name: "huge page", in: OffsetRequest{Page: math.MaxInt, Size: 4}, want: OffsetRequest{Page: math.MaxInt / 4, Size: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name    string
		req     OffsetRequest
		items   []int
		hasMore bool
	}{
		{name: "first page", req: OffsetRequest{Page: 1, Size: 2}, items: []int{1, 2}, hasMore: true},
		{name: "last partial page", req: OffsetRequest{Page: 3, Size: 2}, items: []int{5}, hasMore: false},
		{name: "exact end", req: OffsetRequest{Page: 1, Size: 5}, items: []int{1, 2, 3, 4, 5}, hasMore: false},
		{name: "past the end", req: OffsetRequest{Page: 9, Size: 2}, items: []int{}, hasMore: false},
		{name: "defaults", req: OffsetRequest{}, items: []int{1, 2, 3, 4, 5}, hasMore: false},
		{name: "huge page", req: OffsetRequest{Page: 2305843009213693953, Size: 4}, items: []int{}, hasMore: false},
		{name: "max int page", req: OffsetRequest{Page: math.MaxInt, Size: 1}, items: []int{}, hasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Slice(all, tt.req)
			assert.Equal(t, tt.items, res.Items)
			assert.Equal(t, 5, res.Total)
			assert.Equal(t, tt.hasMore, res.HasMore)
		})
	}
}

func TestSlice_Empty(t *testing.T) {
	res := Slice([]string(nil), OffsetRequest{Page: 1, Size: 10})
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
}

func TestNewOffsetResult_HasMore(t *testing.T) {
	assert.True(t, NewOffsetResult([]int{1, 2}, 5, 2, 2).HasMore)
	assert.False(t, NewOffsetResult([]int{5}, 5, 3, 2).HasMore)
	assert.False(t, NewOffsetResult([]int{}, 5, math.MaxInt, 2).HasMore)
	assert.False(t, NewOffsetResult([]int{}, 0, 1, 10).HasMore)
}
