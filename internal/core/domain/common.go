package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// LastUpdatedAt is what clients display as "last updated".
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // JWT subject of the writer
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Page selects a 1-based page of a listing. A zero Page means "everything".
type Page struct {
	Number int
	Size   int
}

// IsZero reports whether no pagination was requested.
func (p Page) IsZero() bool {
	return p.Number <= 0
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}
