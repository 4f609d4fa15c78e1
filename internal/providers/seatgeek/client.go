// Package seatgeek looks up NBA ticket listings on SeatGeek.
package seatgeek

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/tickets"
	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

const (
	defaultBaseURL     = "https://api.seatgeek.com/2"
	defaultHTTPTimeout = 15 * time.Second

	missingClientID = "SEATGEEK_CLIENT_ID not configured"
	noListings      = "No ticket listings found"
)

// Config controls SeatGeek access.
type Config struct {
	BaseURL    string
	ClientID   string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client queries the SeatGeek events API.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ providers.TicketProvider = (*Client)(nil)

// NewClient constructs a SeatGeek client.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{baseURL: base, clientID: strings.TrimSpace(cfg.ClientID), httpClient: httpClient, logger: cfg.Logger}
}

type eventsResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID    int        `json:"id"`
	URL   string     `json:"url"`
	Score float64    `json:"score"`
	Venue venue      `json:"venue"`
	Stats eventStats `json:"stats"`
}

type venue struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Capacity int    `json:"capacity"`
	Address  string `json:"address"`
}

type eventStats struct {
	LowestPrice  *float64 `json:"lowest_price"`
	AveragePrice *float64 `json:"average_price"`
	HighestPrice *float64 `json:"highest_price"`
	ListingCount *int     `json:"listing_count"`
}

// FetchTickets finds the first SeatGeek event for the matchup on the game date. Problems are
// reported as an unavailable result carrying search links.
func (c *Client) FetchTickets(ctx context.Context, q providers.TicketQuery) tickets.Info {
	if c.clientID == "" {
		return tickets.Info{
			Available:       false,
			Error:           missingClientID,
			TicketmasterURL: tickets.TicketmasterSearchURL(q.HomeTeam),
			SeatGeekURL:     tickets.SeatGeekSearchURL(q.HomeTeam),
		}
	}

	ev, found, err := c.findEvent(ctx, q)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, c.logger), "seatgeek lookup failed", "err", err, logging.FieldProvider, "seatgeek")
		return tickets.Unavailable(q.HomeTeam, "", err.Error())
	}
	if !found {
		return tickets.Unavailable(q.HomeTeam, noListings, "")
	}
	return tickets.Info{
		Available: true,
		EventID:   ev.ID,
		EventURL:  ev.URL,
		Venue: &tickets.Venue{
			Name:     ev.Venue.Name,
			City:     ev.Venue.City,
			State:    ev.Venue.State,
			Capacity: ev.Venue.Capacity,
			Address:  ev.Venue.Address,
		},
		Prices: &tickets.Prices{
			LowestPrice:  ev.Stats.LowestPrice,
			AveragePrice: ev.Stats.AveragePrice,
			HighestPrice: ev.Stats.HighestPrice,
			ListingCount: ev.Stats.ListingCount,
		},
		Popularity: ev.Score,
		BuyURL:     ev.URL,
	}
}

func (c *Client) findEvent(ctx context.Context, q providers.TicketQuery) (event, bool, error) {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("q", fmt.Sprintf("%s at %s", q.AwayTeam, q.HomeTeam))
	params.Set("type", "nba")
	params.Set("datetime_local.gte", q.GameDate)
	params.Set("datetime_local.lte", q.GameDate+"T23:59:59")
	params.Set("per_page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events?"+params.Encode(), nil)
	if err != nil {
		return event{}, false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return event{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return event{}, false, fmt.Errorf("seatgeek: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return event{}, false, fmt.Errorf("seatgeek: decode events: %w", err)
	}
	if len(payload.Events) == 0 {
		return event{}, false, nil
	}
	return payload.Events[0], true, nil
}
