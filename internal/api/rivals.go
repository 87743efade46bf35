package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/valyala/fasthttp"

	"rivals-tracker/internal/apperr"
	"rivals-tracker/internal/config"
)

const baseURL = "https://marvelrivalsapi.com/api"

// RivalsClient wraps the Marvel Rivals data API. Responses are handed
// back as raw JSON; shape decisions belong to the normalization layer,
// not the transport.
type RivalsClient struct {
	apiKey      string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

type RateLimitInfo struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`

	// seconds until reset
	Reset int `json:"reset"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewRivalsClient(cfg *config.Config) *RivalsClient {
	return &RivalsClient{
		apiKey: cfg.RivalsAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		rateLimit: RateLimitInfo{
			Limit:     60,
			Remaining: 60,
			Reset:     60,
			UpdatedAt: time.Now(),
		},
	}
}

func (c *RivalsClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RivalsClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-Ratelimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.rateLimit.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("X-Ratelimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimit.Remaining = val
		}
	}
	if reset := string(resp.Header.Peek("X-Ratelimit-Reset")); reset != "" {
		if val, err := strconv.Atoi(reset); err == nil {
			c.rateLimit.Reset = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *RivalsClient) GetHeroes(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, baseURL+"/v1/heroes")
}

func (c *RivalsClient) GetHeroByName(ctx context.Context, name string) (json.RawMessage, error) {
	return c.doRequest(ctx, fmt.Sprintf("%s/v1/heroes/hero/%s", baseURL, url.PathEscape(name)))
}

func (c *RivalsClient) GetHeroStats(ctx context.Context, name string) (json.RawMessage, error) {
	return c.doRequest(ctx, fmt.Sprintf("%s/v1/heroes/hero/%s/stats", baseURL, url.PathEscape(name)))
}

func (c *RivalsClient) GetMaps(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, baseURL+"/v1/maps")
}

func (c *RivalsClient) GetMapByID(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.doRequest(ctx, fmt.Sprintf("%s/v2/map/%d", baseURL, id))
}

func (c *RivalsClient) GetPlayerStats(ctx context.Context, query string) (json.RawMessage, error) {
	return c.doRequest(ctx, fmt.Sprintf("%s/v1/player/%s", baseURL, url.PathEscape(query)))
}

func (c *RivalsClient) GetMatchHistory(ctx context.Context, query, season string, page int) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/v2/player/%s/match-history?page=%d", baseURL, url.PathEscape(query), page)
	if season != "" {
		u += "&season=" + url.QueryEscape(season)
	}
	return c.doRequest(ctx, u)
}

func (c *RivalsClient) GetBattlePass(ctx context.Context, season string) (json.RawMessage, error) {
	u := baseURL + "/v1/battlepass"
	if season != "" {
		u += "?season=" + url.QueryEscape(season)
	}
	return c.doRequest(ctx, u)
}

func (c *RivalsClient) doRequest(ctx context.Context, url string) (json.RawMessage, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("x-api-key", c.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	c.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &apperr.UpstreamError{StatusCode: resp.StatusCode()}
	}

	// resp.Body is pooled memory, copy before release
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
