package pagination

// OffsetResult is one page of an ordered collection.
type OffsetResult[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasMore bool `json:"has_more"`
}

// NewOffsetResult wraps a page already cut from a collection of total items.
func NewOffsetResult[T any](items []T, total int, page int, size int) *OffsetResult[T] {
	if items == nil {
		items = []T{}
	}
	return &OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Size:    size,
		HasMore: size > 0 && page < pageCount(total, size),
	}
}

// pageCount is the number of pages total items fill, computed without
// multiplying by the page number.
func pageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	return (total-1)/size + 1
}

// Slice cuts the page described by req out of all. req is normalized first.
func Slice[T any](all []T, req OffsetRequest) *OffsetResult[T] {
	req.Normalize()

	if req.Page > pageCount(len(all), req.Size) {
		return NewOffsetResult([]T{}, len(all), req.Page, req.Size)
	}
	start := min(req.Offset(), len(all))
	end := min(start+req.Size, len(all))
	return NewOffsetResult(all[start:end], len(all), req.Page, req.Size)
}
