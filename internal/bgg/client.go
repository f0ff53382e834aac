// Package bgg is a minimal client for the BoardGameGeek XML API, the external
// catalog consulted when a game is not in the local store.
package bgg

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config controls how the client reaches the upstream API.
type Config struct {
	SearchBaseURL string // xmlapi endpoint hosting /search
	ThingBaseURL  string // xmlapi2 endpoint hosting /thing
	HTTPClient    *http.Client
}

// Client fetches search results and game details from BoardGameGeek.
type Client struct {
	searchBaseURL string
	thingBaseURL  string
	httpClient    *http.Client
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		searchBaseURL: strings.TrimRight(cfg.SearchBaseURL, "/"),
		thingBaseURL:  strings.TrimRight(cfg.ThingBaseURL, "/"),
		httpClient:    httpClient,
	}
}

// Candidate is one hit from the upstream search facet, in upstream relevance
// order.
type Candidate struct {
	BGGID string
	Name  string
}

// Search queries the upstream search facet. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	endpoint := fmt.Sprintf("%s/search?search=%s", c.searchBaseURL, url.QueryEscape(query))

	var payload searchResponse
	if err := c.getXML(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(payload.Games))
	for _, g := range payload.Games {
		candidates = append(candidates, Candidate{
			BGGID: g.ObjectID,
			Name:  firstScalar(g.Names),
		})
	}
	return candidates, nil
}

// Thing fetches the full detail record for one game and normalizes it.
// Returns (nil, nil) when the upstream answers with no item for the id.
func (c *Client) Thing(ctx context.Context, bggID string) (*GameDetail, error) {
	endpoint := fmt.Sprintf("%s/thing?id=%s", c.thingBaseURL, url.QueryEscape(bggID))

	var payload thingResponse
	if err := c.getXML(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Items) == 0 {
		return nil, nil
	}

	detail := normalize(payload.Items[0])
	detail.BGGID = bggID
	return &detail, nil
}

func (c *Client) getXML(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bgg: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("bgg: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("bgg: decode response: %w", err)
	}
	return nil
}
