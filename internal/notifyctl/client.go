package notifyctl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"notifyd/pkg/types"
)

// Client talks to a running notifyd daemon over HTTP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Publish broadcasts a notification. body must be empty or valid JSON.
func (c *Client) Publish(req types.PublishRequest, async bool) (types.PublishResponse, error) {
	path := "/notify"
	if async {
		path = "/notify/async"
	}
	var resp types.PublishResponse
	err := c.postJSON(path, req, &resp)
	return resp, err
}

// Status fetches the hub status snapshot.
func (c *Client) Status() (types.StatusResponse, error) {
	var resp types.StatusResponse
	err := c.getJSON("/status", &resp)
	return resp, err
}

// Mediators lists the registered mediators.
func (c *Client) Mediators() ([]types.MediatorStatus, error) {
	var resp struct {
		Mediators []types.MediatorStatus `json:"mediators"`
	}
	err := c.getJSON("/mediators", &resp)
	return resp.Mediators, err
}

func (c *Client) postJSON(path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Post(c.BaseURL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.HTTP.Get(c.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode != http.StatusOK {
		var apiErr types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
