package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// NewsAPIClient implements Provider using the newsapi.org REST API.
type NewsAPIClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewNewsAPIClient creates a client with optional proxy support.
func NewNewsAPIClient(baseURL, apiKey, proxyURL string) *NewsAPIClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NewsAPIClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (c *NewsAPIClient) Name() string { return "newsapi" }

// newsResponse is the expected JSON shape from the /everything endpoint.
type newsResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title string `json:"title"`
	} `json:"articles"`
}

// Headlines fetches the most recent English headlines matching the query.
// Exchange suffixes (".NS" etc.) are stripped from the query string.
func (c *NewsAPIClient) Headlines(ctx context.Context, query string, limit int) ([]string, error) {
	if i := strings.IndexByte(query, '.'); i > 0 {
		query = query[:i]
	}
	endpoint := fmt.Sprintf("%s/everything?q=%s&language=en&sortBy=publishedAt&pageSize=%d",
		c.BaseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch headlines: status %d, body: %s", resp.StatusCode, string(body))
	}

	var nr newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("decode headlines: %w", err)
	}
	if nr.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", nr.Message)
	}

	titles := make([]string, 0, len(nr.Articles))
	for _, a := range nr.Articles {
		if a.Title != "" {
			titles = append(titles, a.Title)
		}
	}
	return titles, nil
}
