package search

import (
	"sort"
	"time"

	"sjsage522/freebiefinder/internal/connector"
	"sjsage522/freebiefinder/logger"
)

// Params carries one search invocation's inputs
type Params struct {
	Postal      string
	RadiusMiles float64
	Query       string

	// Sources is accepted for forward compatibility and currently ignored;
	// every value searches the same registered connectors.
	// TODO: filter connectors by Sources once a second source lands
	Sources string
}

// Service runs searches across the registered connectors and orders the
// combined results by recency
type Service struct {
	connectors    []connector.Connector
	defaultPostal string
	log           *logger.Logger
}

// NewService creates a search service over the given connectors
func NewService(defaultPostal string, connectors ...connector.Connector) *Service {
	return &Service{
		connectors:    connectors,
		defaultPostal: defaultPostal,
		log:           logger.ForSearch(),
	}
}

// Search performs one fetch-and-parse cycle per connector, sequentially,
// and returns the combined listings ordered newest first. A connector
// failure aborts the search and surfaces unchanged.
func (s *Service) Search(params Params) ([]connector.Listing, error) {
	if params.Postal == "" {
		params.Postal = s.defaultPostal
	}

	start := time.Now()

	var combined []connector.Listing
	for _, c := range s.connectors {
		listings, err := c.Search(connector.SearchParams{
			Postal:      params.Postal,
			RadiusMiles: params.RadiusMiles,
			Query:       params.Query,
		})
		if err != nil {
			return nil, err
		}
		combined = append(combined, listings...)
	}

	sortByRecency(combined)

	s.log.Info().
		Str("postal", params.Postal).
		Int("listings", len(combined)).
		Dur("elapsed", time.Since(start)).
		Msg("Search completed")

	return combined, nil
}

// sortByRecency orders listings newest first. Listings with no posted
// time rank as the oldest; ties keep extraction order.
func sortByRecency(listings []connector.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return postedAt(listings[i]).After(postedAt(listings[j]))
	})
}

// postedAt returns the listing's posted time, or the zero time when absent
func postedAt(l connector.Listing) time.Time {
	if l.PostedAt == nil {
		return time.Time{}
	}
	return *l.PostedAt
}
