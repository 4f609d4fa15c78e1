package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-predictor-service/internal/domain/games"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/players"
	"github.com/preston-bernstein/nba-predictor-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-predictor-service/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches sports data from the balldontlie API and maps it to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	maxPages   int
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchGames lists games in a date range, following cursors up to the page cap.
func (c *Client) FetchGames(ctx context.Context, q providers.GameQuery) ([]games.Game, error) {
	params := url.Values{}
	if q.StartDate != "" {
		params.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("end_date", q.EndDate)
	}
	addIDs(params, "team_ids[]", q.TeamIDs)

	perPage := defaultPerPage
	maxPages := c.maxPages
	if q.PerPage > 0 {
		perPage = q.PerPage
		maxPages = 1
	}
	params.Set("per_page", strconv.Itoa(perPage))

	out := make([]games.Game, 0)
	for page := 1; ; page++ {
		var payload listResponse[gameResponse]
		if err := c.get(ctx, "/games", params, &payload); err != nil {
			return nil, err
		}
		for _, g := range payload.Data {
			out = append(out, mapGame(g))
		}
		next := payload.Meta.NextCursor
		if next == nil || *next == 0 || len(payload.Data) == 0 || page >= maxPages {
			break
		}
		params.Set("cursor", strconv.Itoa(*next))
	}
	return out, nil
}

// FetchGame returns the detailed record for a single game.
func (c *Client) FetchGame(ctx context.Context, id int) (games.Game, error) {
	var payload singleResponse[gameResponse]
	if err := c.get(ctx, "/games/"+strconv.Itoa(id), nil, &payload); err != nil {
		return games.Game{}, err
	}
	if payload.Data.ID == 0 {
		return games.Game{}, providers.ErrNotFound
	}
	return mapGameDetail(payload.Data), nil
}

// FetchTeams lists every team with CDN logos attached.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var payload listResponse[teamResponse]
	if err := c.get(ctx, "/teams", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(payload.Data))
	for _, t := range payload.Data {
		out = append(out, mapTeam(t))
	}
	return out, nil
}

// FetchPlayers searches players by name and/or team.
func (c *Client) FetchPlayers(ctx context.Context, q providers.PlayerQuery) ([]players.Player, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	addIDs(params, "team_ids[]", q.TeamIDs)
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}

	var payload listResponse[playerResponse]
	if err := c.get(ctx, "/players", params, &payload); err != nil {
		return nil, err
	}
	out := make([]players.Player, 0, len(payload.Data))
	for _, p := range payload.Data {
		out = append(out, mapPlayer(p))
	}
	return out, nil
}

// FetchSeasonAverages returns a player's averages for a season.
func (c *Client) FetchSeasonAverages(ctx context.Context, playerID, season int) (players.SeasonAverages, bool, error) {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	params.Set("player_id", strconv.Itoa(playerID))

	var payload listResponse[seasonAveragesResponse]
	if err := c.get(ctx, "/season_averages", params, &payload); err != nil {
		return players.SeasonAverages{}, false, err
	}
	if len(payload.Data) == 0 {
		return players.SeasonAverages{}, false, nil
	}
	return mapSeasonAverages(playerID, season, payload.Data[0]), true, nil
}

// FetchBoxScore returns per-player lines for a game; no rows yields empty lists.
func (c *Client) FetchBoxScore(ctx context.Context, gameID int) (games.BoxScore, error) {
	params := url.Values{}
	params.Add("game_ids[]", strconv.Itoa(gameID))

	var payload listResponse[boxScoreResponse]
	if err := c.get(ctx, "/box_scores", params, &payload); err != nil {
		return games.BoxScore{}, err
	}
	if len(payload.Data) == 0 {
		return games.EmptyBoxScore(gameID), nil
	}
	return mapBoxScore(gameID, payload.Data[0]), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return providers.ErrMissingAPIKey
	}
	req, err := newRequest(ctx, c.baseURL, path, params, c.apiKey)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("balldontlie: decode %s: %w", path, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	msg := strings.TrimSpace(string(body))
	switch resp.StatusCode {
	case http.StatusNotFound:
		return providers.ErrNotFound
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "balldontlie rate limited",
		}
	}
	return fmt.Errorf("balldontlie: unexpected status %d: %s", resp.StatusCode, msg)
}

func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func addIDs(params url.Values, key string, ids []int) {
	for _, id := range ids {
		params.Add(key, strconv.Itoa(id))
	}
}
