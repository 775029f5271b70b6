package reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSnapshotFollowsPagination(t *testing.T) {
	pages := map[int]reservationPage{
		1: {
			Items: []RawReservation{
				{ResourceID: "van-1", PickupTime: "2026-03-01 09:00", ReturnTime: "2026-03-01 13:00"},
				{ResourceID: "van-2", PickupTime: "2026-03-01 10:00", ReturnTime: "2026-03-01 12:00"},
			},
			Page:       1,
			TotalPages: 2,
		},
		2: {
			Items: []RawReservation{
				{ResourceID: "van-1", PickupTime: "2026-03-02 09:00", ReturnTime: "2026-03-02 18:00"},
			},
			Page:       2,
			TotalPages: 2,
		},
	}

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, "/v2/reservations", r.URL.Path)
		require.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		require.Equal(t, "van-1,van-2", r.URL.Query().Get("resource_ids"))
		require.NotEmpty(t, r.URL.Query().Get("from"))
		require.NotEmpty(t, r.URL.Query().Get("till"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		require.NoError(t, json.NewEncoder(w).Encode(pages[page]))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "sekrit")
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	got, err := client.Snapshot(context.Background(), []string{"van-1", "van-2"}, from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Equal(t, 2, requests)
	require.Len(t, got, 3)
	require.Equal(t, "2026-03-02 09:00", got[2].PickupTime)
}

func TestSnapshotSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No Authorization header without a configured token.
		require.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewEncoder(w).Encode(reservationPage{Page: 1, TotalPages: 1}))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "")
	got, err := client.Snapshot(context.Background(), nil, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSnapshotServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "")
	_, err := client.Snapshot(context.Background(), nil, time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestSnapshotRunawayPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A server that always claims more pages must not loop forever.
		require.NoError(t, json.NewEncoder(w).Encode(reservationPage{Page: 1, TotalPages: 1000}))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "")
	_, err := client.Snapshot(context.Background(), nil, time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
}
