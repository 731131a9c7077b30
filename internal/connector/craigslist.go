package connector

import (
	"io"
	"net/url"
	"strconv"
	"strings"

	"sjsage522/freebiefinder/helpers"
	"sjsage522/freebiefinder/logger"
	apperrors "sjsage522/freebiefinder/pkg/errors"
)

const (
	// SourceCraigslist identifies listings originating from craigslist
	SourceCraigslist = "craigslist"

	// placeholderTitle substitutes for listings whose anchor carries no text
	placeholderTitle = "Free item"

	// searchPath is the free-section search endpoint under the base domain
	searchPath = "/search/zip"
)

// CraigslistConfig contains configuration for the craigslist connector
type CraigslistConfig struct {
	// BaseURL is the scheme and host of the regional craigslist site,
	// without a trailing slash
	BaseURL string
}

// CraigslistConnector searches the craigslist free-items section and
// normalizes the result rows into listings
type CraigslistConnector struct {
	baseURL   string
	selectors Selectors
	log       *logger.Logger
}

// NewCraigslistConnector creates a craigslist connector for the given site
func NewCraigslistConnector(config CraigslistConfig) *CraigslistConnector {
	return &CraigslistConnector{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		selectors: Selectors{
			// Current static markup first, legacy result rows as fallback
			ResultItem:  []string{"li.cl-static-search-result", "li.result-row"},
			TitleAnchor: []string{"a.cl-app-anchor", "a.result-title", "a"},
			Location:    []string{"span.cl-location", "span.result-hood"},
			PostedAt:    []string{"time"},
			Image:       []string{"img"},
		},
		log: logger.ForConnector(SourceCraigslist),
	}
}

// Name returns the source identifier stamped on emitted listings
func (c *CraigslistConnector) Name() string {
	return SourceCraigslist
}

// BuildSearchURL constructs the free-section search URL for the given
// parameters. The radius is truncated to a whole number of miles and the
// query text is appended only when present.
func (c *CraigslistConnector) BuildSearchURL(params SearchParams) string {
	q := url.Values{}
	q.Set("postal", params.Postal)
	q.Set("search_distance", strconv.Itoa(int(params.RadiusMiles)))
	q.Set("hasPic", "1")
	q.Set("bundleDuplicates", "1")
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	return c.baseURL + searchPath + "?" + q.Encode()
}

// Search fetches one results page and extracts its listings
func (c *CraigslistConnector) Search(params SearchParams) ([]Listing, error) {
	searchURL := c.BuildSearchURL(params)

	body, err := helpers.FetchHTML(searchURL)
	if err != nil {
		return nil, apperrors.NewRequest(SourceCraigslist, "search page fetch failed", err)
	}

	listings, err := c.extractListings(body)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("url", searchURL).
		Int("listings", len(listings)).
		Msg("Search page extracted")

	return listings, nil
}

// extractListings parses a results document and normalizes every usable
// result row, in document order
func (c *CraigslistConnector) extractListings(r io.Reader) ([]Listing, error) {
	root, err := ParseDocument(r)
	if err != nil {
		return nil, apperrors.NewParsing(SourceCraigslist, "results page parse failed", err)
	}

	var listings []Listing
	for _, item := range root.All(c.selectors.ResultItem...) {
		if listing := c.processItem(item); listing != nil {
			listings = append(listings, *listing)
		}
	}
	return listings, nil
}

// processItem builds one listing from a result element. Items without a
// resolvable link are dropped; any other missing piece degrades to an
// absent field.
func (c *CraigslistConnector) processItem(item Node) *Listing {
	anchor, ok := item.First(c.selectors.TitleAnchor...)
	if !ok {
		return nil
	}
	href, ok := anchor.Attr("href")
	if !ok {
		return nil
	}
	link, ok := c.resolveHref(href)
	if !ok {
		return nil
	}

	title := anchor.Text()
	if title == "" {
		title = placeholderTitle
	}

	listing := &Listing{
		ID:     link,
		Source: SourceCraigslist,
		Title:  title,
		URL:    &link,
		Price:  0,
	}

	if hood, ok := item.First(c.selectors.Location...); ok {
		if location := trimLocationText(hood.Text()); location != "" {
			listing.LocationName = &location
		}
	}

	if timeEl, ok := item.First(c.selectors.PostedAt...); ok {
		if raw, ok := timeEl.Attr("datetime"); ok {
			listing.PostedAt = parsePostedAt(raw)
		}
	}

	if img, ok := item.First(c.selectors.Image...); ok {
		if src, ok := img.Attr("src"); ok {
			listing.Image = &src
		}
	}

	return listing
}

// resolveHref rewrites protocol-relative and root-relative hrefs to
// absolute URLs against the connector's base domain, then validates the
// result. Hrefs that cannot resolve to an absolute http(s) URL report false.
func (c *CraigslistConnector) resolveHref(href string) (string, bool) {
	switch {
	case strings.HasPrefix(href, "//"):
		href = "https:" + href
	case strings.HasPrefix(href, "/"):
		href = c.baseURL + href
	}

	u, err := url.Parse(href)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return href, true
}

// trimLocationText strips the surrounding whitespace and parentheses that
// wrap neighborhood names in result rows
func trimLocationText(raw string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "()"))
}
