package dto

import (
	"net/url"
	"strconv"

	"github.com/SscSPs/currency_admin/internal/core/domain"
)

// DefaultPageSize is used when page is given without page_size.
const DefaultPageSize = 50

// PageQuery holds the optional pagination parameters of list endpoints.
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// ToPage converts the query; a zero Page means no pagination.
func (q PageQuery) ToPage() domain.Page {
	if q.Page <= 0 {
		return domain.Page{}
	}
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return domain.Page{Number: q.Page, Size: size}
}

// PaginatedResponse is the envelope returned when a page is requested.
type PaginatedResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPaginatedResponse builds the envelope. requestURL is the URL of the
// current request; next and previous keep its other query parameters.
func NewPaginatedResponse[T any](results []T, total int, page domain.Page, requestURL *url.URL) PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}
	resp := PaginatedResponse[T]{Count: total, Results: results}
	if page.Offset()+len(results) < total {
		next := pageLink(requestURL, page.Number+1, page.Size)
		resp.Next = &next
	}
	if page.Number > 1 {
		prev := pageLink(requestURL, page.Number-1, page.Size)
		resp.Previous = &prev
	}
	return resp
}

func pageLink(u *url.URL, number, size int) string {
	link := *u
	q := link.Query()
	q.Set("page", strconv.Itoa(number))
	q.Set("page_size", strconv.Itoa(size))
	link.RawQuery = q.Encode()
	return link.String()
}
