package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxPages caps the pagination loop so a misbehaving booking API cannot keep
// the snapshot call spinning forever.
const maxPages = 50

// APIClient fetches reservation snapshots from the external booking system's
// REST API. It is the only place in the service that talks to the booking
// system; the engine never sees the wire format.
type APIClient struct {
	hc      *http.Client
	baseURL string
	token   string
}

// NewAPIClient creates a client for the booking API at baseURL.
// token, if non-empty, is sent as a bearer token.
func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		hc:      &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

type reservationPage struct {
	Items      []RawReservation `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// Snapshot pulls every reservation overlapping [from, till) for the given
// resources, following pagination until the API reports the last page.
func (c *APIClient) Snapshot(ctx context.Context, resourceIDs []string, from, till time.Time) ([]RawReservation, error) {
	var out []RawReservation

	for page := 1; page <= maxPages; page++ {
		p, err := c.fetchPage(ctx, resourceIDs, from, till, page)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Items...)
		if p.TotalPages == 0 || page >= p.TotalPages {
			return out, nil
		}
	}

	return nil, fmt.Errorf("booking api: pagination did not terminate after %d pages", maxPages)
}

func (c *APIClient) fetchPage(ctx context.Context, resourceIDs []string, from, till time.Time, page int) (*reservationPage, error) {
	q := url.Values{}
	q.Set("from", from.UTC().Format(time.RFC3339))
	q.Set("till", till.UTC().Format(time.RFC3339))
	q.Set("page", strconv.Itoa(page))
	if len(resourceIDs) > 0 {
		q.Set("resource_ids", strings.Join(resourceIDs, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/reservations?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build booking api request failed: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("booking api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking api returned status %d", resp.StatusCode)
	}

	var p reservationPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode booking api response failed: %w", err)
	}
	return &p, nil
}
