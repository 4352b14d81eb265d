package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client provides access to the leadline backend API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Stats fetches the dashboard summary.
func (c *Client) Stats() (*Stats, error) {
	var stats Stats
	if err := c.get("/api/v1/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Leads returns all leads, optionally filtered by status.
func (c *Client) Leads(status string) ([]Lead, error) {
	path := "/api/v1/leads"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var leads []Lead
	if err := c.get(path, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateLeadStatus sets a lead's status.
func (c *Client) UpdateLeadStatus(id, status string) (*Lead, error) {
	body := map[string]string{"status": status}
	var lead Lead
	if err := c.send(http.MethodPatch, "/api/v1/leads/"+url.PathEscape(id), body, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// Bookings returns upcoming bookings, soonest first.
func (c *Client) Bookings() ([]Booking, error) {
	var bookings []Booking
	if err := c.get("/api/v1/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Campaigns returns all campaigns.
func (c *Client) Campaigns() ([]Campaign, error) {
	var campaigns []Campaign
	if err := c.get("/api/v1/campaigns", &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// SetCampaignPaused pauses or resumes a campaign.
func (c *Client) SetCampaignPaused(id string, paused bool) (*Campaign, error) {
	body := map[string]bool{"paused": paused}
	var campaign Campaign
	if err := c.send(http.MethodPatch, "/api/v1/campaigns/"+url.PathEscape(id), body, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send performs a request with a JSON body and decodes the response into out.
func (c *Client) send(method, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// setHeaders sets common headers for API requests.
func (c *Client) setHeaders(req *http.Request) {
	// Only set Content-Type for requests with a body
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
}
