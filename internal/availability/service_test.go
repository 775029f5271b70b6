package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fleetyard/availability-backend/internal/fleet"
	"github.com/fleetyard/availability-backend/internal/reservation"
)

type fakeFleet struct {
	resources []*fleet.Resource
	err       error
}

func (f *fakeFleet) Create(ctx context.Context, req fleet.CreateRequest) (*fleet.Resource, error) {
	panic("not used")
}

func (f *fakeFleet) GetByID(ctx context.Context, id string) (*fleet.Resource, error) {
	for _, res := range f.resources {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, fleet.ErrNotFound
}

func (f *fakeFleet) List(ctx context.Context, filter fleet.Filter) ([]*fleet.Resource, int, error) {
	panic("not used")
}

func (f *fakeFleet) ListActive(ctx context.Context) ([]*fleet.Resource, error) {
	return f.resources, f.err
}

func (f *fakeFleet) Update(ctx context.Context, id string, req fleet.UpdateRequest) (*fleet.Resource, error) {
	panic("not used")
}

func (f *fakeFleet) Delete(ctx context.Context, id string) error {
	panic("not used")
}

type fakeSource struct {
	reservations []reservation.RawReservation
	err          error

	gotIDs  []string
	gotFrom time.Time
	gotTill time.Time
}

func (f *fakeSource) Snapshot(ctx context.Context, resourceIDs []string, from, till time.Time) ([]reservation.RawReservation, error) {
	f.gotIDs = resourceIDs
	f.gotFrom = from
	f.gotTill = till
	return f.reservations, f.err
}

func testService(fleetSvc fleet.Service, source reservation.Source, now time.Time) *service {
	return &service{
		fleetService: fleetSvc,
		source:       source,
		policy:       testPolicy,
		now:          func() time.Time { return now },
	}
}

func TestOverview(t *testing.T) {
	fleetSvc := &fakeFleet{resources: []*fleet.Resource{
		{ID: "van-1", Name: "Van 1", BufferAfter: 15 * time.Minute},
		{ID: "van-2", Name: "Van 2"},
	}}
	source := &fakeSource{reservations: []reservation.RawReservation{
		{ResourceID: "van-1", PickupTime: "2026-03-01 09:00", ReturnTime: "2026-03-01 13:00"},
	}}

	now := at(10, 0)
	svc := testService(fleetSvc, source, now)

	reports, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Reports come back in fleet order regardless of fan-out.
	require.Equal(t, "van-1", reports[0].ResourceID)
	require.Equal(t, "Van 1", reports[0].ResourceName)
	require.True(t, reports[0].BookedNow)
	require.True(t, reports[0].NextAvailable.Equal(at(13, 15)))

	require.Equal(t, "van-2", reports[1].ResourceID)
	require.True(t, reports[1].AvailableNow)

	// The snapshot window covers the full display horizon from local midnight.
	require.Equal(t, []string{"van-1", "van-2"}, source.gotIDs)
	require.True(t, source.gotFrom.Equal(at(0, 0)))
	require.True(t, source.gotTill.Equal(at(0, 0).AddDate(0, 0, testPolicy.HorizonDays)))
}

func TestOverviewEmptyFleet(t *testing.T) {
	svc := testService(&fakeFleet{}, &fakeSource{}, at(10, 0))

	reports, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestOverviewSourceError(t *testing.T) {
	fleetSvc := &fakeFleet{resources: []*fleet.Resource{{ID: "van-1", Name: "Van 1"}}}
	source := &fakeSource{err: errors.New("booking api down")}
	svc := testService(fleetSvc, source, at(10, 0))

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}

func TestForResource(t *testing.T) {
	fleetSvc := &fakeFleet{resources: []*fleet.Resource{
		{ID: "van-1", Name: "Van 1"},
	}}
	source := &fakeSource{}
	svc := testService(fleetSvc, source, at(10, 0))

	report, err := svc.ForResource(context.Background(), "van-1")
	require.NoError(t, err)
	require.Equal(t, "van-1", report.ResourceID)
	require.True(t, report.AvailableNow)
	require.Equal(t, []string{"van-1"}, source.gotIDs)

	_, err = svc.ForResource(context.Background(), "nope")
	require.ErrorIs(t, err, fleet.ErrNotFound)
}
