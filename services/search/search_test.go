package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sjsage522/freebiefinder/internal/connector"
	apperrors "sjsage522/freebiefinder/pkg/errors"
)

// MockConnector implements the connector.Connector interface for testing
type MockConnector struct {
	name       string
	listings   []connector.Listing
	searchErr  error
	lastParams connector.SearchParams
}

// Ensure MockConnector implements connector.Connector
var _ connector.Connector = (*MockConnector)(nil)

func (m *MockConnector) Search(params connector.SearchParams) ([]connector.Listing, error) {
	m.lastParams = params
	return m.listings, m.searchErr
}

func (m *MockConnector) Name() string {
	return m.name
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func listingAt(id string, postedAt *time.Time) connector.Listing {
	return connector.Listing{
		ID:       id,
		Source:   "craigslist",
		Title:    "Free item",
		PostedAt: postedAt,
	}
}

func TestSearchOrdersByRecency(t *testing.T) {
	older := timePtr(time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC))
	newer := timePtr(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))

	mock := &MockConnector{
		name: "craigslist",
		listings: []connector.Listing{
			listingAt("older", older),
			listingAt("undated", nil),
			listingAt("newer", newer),
		},
	}

	svc := NewService("89101", mock)

	listings, err := svc.Search(Params{RadiusMiles: 25})
	assert.NoError(t, err)
	assert.Len(t, listings, 3)
	assert.Equal(t, "newer", listings[0].ID)
	assert.Equal(t, "older", listings[1].ID)
	assert.Equal(t, "undated", listings[2].ID)
}

func TestSearchKeepsExtractionOrderOnTies(t *testing.T) {
	when := timePtr(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))

	mock := &MockConnector{
		name: "craigslist",
		listings: []connector.Listing{
			listingAt("first", when),
			listingAt("second", when),
			listingAt("third", nil),
			listingAt("fourth", nil),
		},
	}

	svc := NewService("89101", mock)

	listings, err := svc.Search(Params{RadiusMiles: 25})
	assert.NoError(t, err)
	assert.Equal(t, "first", listings[0].ID)
	assert.Equal(t, "second", listings[1].ID)
	assert.Equal(t, "third", listings[2].ID)
	assert.Equal(t, "fourth", listings[3].ID)
}

func TestSearchAppliesDefaultPostal(t *testing.T) {
	mock := &MockConnector{name: "craigslist"}
	svc := NewService("89101", mock)

	_, err := svc.Search(Params{RadiusMiles: 25})
	assert.NoError(t, err)
	assert.Equal(t, "89101", mock.lastParams.Postal)

	_, err = svc.Search(Params{Postal: "94103", RadiusMiles: 25, Query: "couch"})
	assert.NoError(t, err)
	assert.Equal(t, "94103", mock.lastParams.Postal)
	assert.Equal(t, 25.0, mock.lastParams.RadiusMiles)
	assert.Equal(t, "couch", mock.lastParams.Query)
}

func TestSearchPropagatesConnectorFailure(t *testing.T) {
	fetchErr := apperrors.NewRequest("craigslist", "search page fetch failed", nil)
	mock := &MockConnector{name: "craigslist", searchErr: fetchErr}

	svc := NewService("89101", mock)

	listings, err := svc.Search(Params{RadiusMiles: 25})
	assert.Nil(t, listings)
	assert.Equal(t, fetchErr, err)
	assert.True(t, apperrors.IsRequestFailure(err))
}

func TestSearchCombinesConnectors(t *testing.T) {
	first := &MockConnector{
		name:     "craigslist",
		listings: []connector.Listing{listingAt("a", nil)},
	}
	second := &MockConnector{
		name:     "craigslist",
		listings: []connector.Listing{listingAt("b", nil)},
	}

	svc := NewService("89101", first, second)

	listings, err := svc.Search(Params{RadiusMiles: 25})
	assert.NoError(t, err)
	assert.Len(t, listings, 2)
	assert.Equal(t, "a", listings[0].ID)
	assert.Equal(t, "b", listings[1].ID)
}
