// Package sheets talks to the per-invitation Google Apps Script webhook
// that mirrors RSVPs into a spreadsheet. The relay is best-effort: the
// guest's RSVP never depends on it.
package sheets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
)

var (
	ErrInvalidWebhookURL = errors.New("sheets: webhook URL must be http(s)")
	ErrNoSheetURL        = errors.New("sheets: probe response carries no sheetUrl")
)

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Relay posts one RSVP to the invitation's webhook. The response body is
// not parsed for success; Apps Script endpoints answer opaquely. An error
// here is worth a log line and nothing more.
func (c *Client) Relay(webhookURL string, payload models.SheetRelayPayload) error {
	if !isHTTP(webhookURL) {
		return ErrInvalidWebhookURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sheets: marshal payload: %w", err)
	}

	resp, err := c.httpClient.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sheets: relay POST: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

// CheckConnection probes the webhook with ?checkConnection=true and returns
// the spreadsheet view URL the script reports. The contract is validated
// explicitly: 200 status, JSON body, non-empty http(s) sheetUrl.
func (c *Client) CheckConnection(webhookURL string) (string, error) {
	if !isHTTP(webhookURL) {
		return "", ErrInvalidWebhookURL
	}

	probeURL, err := withCheckParam(webhookURL)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Get(probeURL)
	if err != nil {
		return "", fmt.Errorf("sheets: probe GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sheets: probe returned status %d", resp.StatusCode)
	}

	var check models.SheetCheckResponse
	if err := json.NewDecoder(resp.Body).Decode(&check); err != nil {
		return "", fmt.Errorf("sheets: probe response is not JSON: %w", err)
	}
	if !isHTTP(check.SheetURL) {
		return "", ErrNoSheetURL
	}

	return check.SheetURL, nil
}

func isHTTP(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

func withCheckParam(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("sheets: parse webhook URL: %w", err)
	}
	q := u.Query()
	q.Set("checkConnection", "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
