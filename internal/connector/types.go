package connector

import "time"

// Listing represents one normalized free-item record
type Listing struct {
	ID           string     `json:"id"`
	Source       string     `json:"source"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	URL          *string    `json:"url"`
	Image        *string    `json:"image"`
	LocationName *string    `json:"location_name"`
	PostedAt     *time.Time `json:"posted_at"`
	Price        float64    `json:"price"`
}

// SearchParams carries the inputs for one source search
type SearchParams struct {
	Postal      string
	RadiusMiles float64
	Query       string
}

// Connector interface defines the contract for all listing-source implementations
type Connector interface {
	// Search fetches and parses one results page for the given parameters
	Search(params SearchParams) ([]Listing, error)

	// Name returns the source identifier stamped on emitted listings
	Name() string
}

// Selectors contains the CSS selector chains for elements in a results page.
// Each chain is ordered; the first selector that matches anything wins.
type Selectors struct {
	ResultItem  []string
	TitleAnchor []string
	Location    []string
	PostedAt    []string
	Image       []string
}
