package api

import (
	"fmt"
	"net/http"
	"strconv"

	"sjsage522/freebiefinder/internal/connector"
	apperrors "sjsage522/freebiefinder/pkg/errors"
	"sjsage522/freebiefinder/services/search"
)

// Radius bounds accepted by the search endpoint, in miles
const (
	minRadiusMiles = 5.0
	maxRadiusMiles = 100.0
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	radius := s.cfg.DefaultRadiusMiles
	if raw := q.Get("radius_miles"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "radius_miles must be a number")
			return
		}
		radius = parsed
	}
	if radius < minRadiusMiles || radius > maxRadiusMiles {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("radius_miles must be between %g and %g", minRadiusMiles, maxRadiusMiles))
		return
	}

	listings, err := s.search.Search(search.Params{
		Postal:      q.Get("zip"),
		RadiusMiles: radius,
		Query:       q.Get("query"),
		Sources:     q.Get("sources"),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("Search request failed")
		if apperrors.IsRequestFailure(err) {
			respondError(w, http.StatusBadGateway, "upstream fetch failed")
			return
		}
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}

	// Return empty list if nil to be JSON friendly
	if listings == nil {
		listings = []connector.Listing{}
	}

	respondJSON(w, http.StatusOK, listings)
}
