package officeapi

import (
	"encoding/json"
	"fmt"
)

// List is the normalized form of a list payload. The API serves two
// envelope variants for lists: a direct JSON array, and a page wrapper
// `{pageData, page, totalPages, totalItems}`. Both collapse into List before
// any typed processing happens; Paginated tags which variant was seen so
// callers can tell a real total from a raw count.
type List[T any] struct {
	Items      []T
	TotalItems int64
	Paginated  bool
}

// PaginatedTotal returns the source-supplied total-item count, or zero when
// the list came as a direct array and no authoritative total exists.
func (l List[T]) PaginatedTotal() int64 {
	if !l.Paginated {
		return 0
	}
	return l.TotalItems
}

// pageEnvelope mirrors the API's paginated list wrapper.
type pageEnvelope[T any] struct {
	PageData   []T   `json:"pageData"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

// DecodeList normalizes a raw list payload into a List. A null or absent
// payload decodes to an empty list.
func DecodeList[T any](data json.RawMessage) (List[T], error) {
	if len(data) == 0 || string(data) == "null" {
		return List[T]{}, nil
	}

	// Direct array variant.
	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return List[T]{}, fmt.Errorf("failed to decode list payload: %w", err)
		}
		return List[T]{Items: items, TotalItems: int64(len(items))}, nil
	}

	var page pageEnvelope[T]
	if err := json.Unmarshal(data, &page); err != nil {
		return List[T]{}, fmt.Errorf("failed to decode paginated payload: %w", err)
	}
	return List[T]{
		Items:      page.PageData,
		TotalItems: page.TotalItems,
		Paginated:  true,
	}, nil
}
