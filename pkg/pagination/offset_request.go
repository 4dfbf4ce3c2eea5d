package pagination

import "math"

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Normalize clamps page and size into their valid ranges.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	// keeps Page*Size, and so Offset()+Size, within int
	r.Page = min(r.Page, math.MaxInt/r.Size)
}

// Offset is the index of the first item on the requested page.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
