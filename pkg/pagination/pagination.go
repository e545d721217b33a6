// Package pagination holds the 1-based page contract shared by every List operation.
package pagination

import "math"

const DefaultPageSize = 10

// MaxOffset bounds offsets and limits so they fit the int32 parameters of the SQL queries.
// A page past it is simply empty.
const MaxOffset = math.MaxInt32

type Request struct {
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// Normalize applies the defaults: page 1 when the number is below 1, DefaultPageSize when
// the size is not positive.
func (r Request) Normalize() Request {
	if r.PageNumber < 1 {
		r.PageNumber = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
	return r
}

// Offset saturates at MaxOffset instead of overflowing.
func (r Request) Offset() int {
	n := r.Normalize()
	if n.PageNumber-1 > MaxOffset/n.PageSize {
		return MaxOffset
	}
	return min((n.PageNumber-1)*n.PageSize, MaxOffset)
}

func (r Request) Limit() int {
	return min(r.Normalize().PageSize, MaxOffset)
}

type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

func (p Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}

// New wraps an already sliced set of items with its filtered total.
func New[T any](items []T, total int, req Request) Page[T] {
	req = req.Normalize()
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, TotalCount: total, PageNumber: req.PageNumber, PageSize: req.PageSize}
}

// Slice pages over an in-memory, already filtered set. TotalCount is len(filtered).
func Slice[T any](filtered []T, req Request) Page[T] {
	req = req.Normalize()
	start := min(req.Offset(), len(filtered))
	end := start + min(req.Limit(), len(filtered)-start)
	items := make([]T, end-start)
	copy(items, filtered[start:end])
	return New(items, len(filtered), req)
}

func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = f(it)
	}
	return Page[U]{Items: items, TotalCount: p.TotalCount, PageNumber: p.PageNumber, PageSize: p.PageSize}
}
