package availability

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fleetyard/availability-backend/internal/fleet"
	"github.com/fleetyard/availability-backend/internal/reservation"
)

type Service interface {
	// Overview computes availability reports for the whole active fleet.
	Overview(ctx context.Context) ([]*Report, error)
	// ForResource computes the availability report for a single resource.
	ForResource(ctx context.Context, id string) (*Report, error)
}

type service struct {
	fleetService fleet.Service
	source       reservation.Source
	policy       Policy
	now          func() time.Time
}

func NewService(fleetService fleet.Service, source reservation.Source, policy Policy) Service {
	return &service{
		fleetService: fleetService,
		source:       source,
		policy:       policy,
		now:          time.Now,
	}
}

func (s *service) Overview(ctx context.Context) ([]*Report, error) {
	resources, err := s.fleetService.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return []*Report{}, nil
	}

	ids := make([]string, len(resources))
	for i, res := range resources {
		ids[i] = res.ID
	}

	now := s.now().UTC()
	byResource, err := s.snapshot(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	// Per-resource classification is independent, so fan out. This is purely
	// a throughput optimization over an already-loaded snapshot.
	reports := make([]*Report, len(resources))
	var wg sync.WaitGroup
	for i, res := range resources {
		wg.Add(1)
		go func(i int, res *fleet.Resource) {
			defer wg.Done()
			reports[i] = s.compute(res, byResource[res.ID], now)
		}(i, res)
	}
	wg.Wait()

	return reports, nil
}

func (s *service) ForResource(ctx context.Context, id string) (*Report, error) {
	res, err := s.fleetService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	byResource, err := s.snapshot(ctx, []string{res.ID}, now)
	if err != nil {
		return nil, err
	}

	return s.compute(res, byResource[res.ID], now), nil
}

// snapshot pulls the reservations overlapping the display horizon and groups
// them by resource. The window starts at local midnight of the current day so
// carry-over reservations returning today are included.
func (s *service) snapshot(ctx context.Context, ids []string, now time.Time) (map[string][]reservation.RawReservation, error) {
	windows := DayWindows(now, s.policy.HorizonDays, s.policy.OffsetMinutes)
	from := windows[0].From
	till := windows[len(windows)-1].Till

	raw, err := s.source.Snapshot(ctx, ids, from, till)
	if err != nil {
		return nil, err
	}

	byResource := make(map[string][]reservation.RawReservation, len(ids))
	for _, r := range raw {
		byResource[r.ResourceID] = append(byResource[r.ResourceID], r)
	}
	return byResource, nil
}

func (s *service) compute(res *fleet.Resource, reservations []reservation.RawReservation, now time.Time) *Report {
	report, diags := ComputeReport(res.ID, res.Name, res.BufferBefore, res.BufferAfter, reservations, now, s.policy)
	for _, d := range diags {
		log.Printf("availability: dropped reservation for resource %s: %s=%q: %v", d.ResourceID, d.Field, d.Raw, d.Err)
	}
	return report
}
