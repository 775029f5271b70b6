package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID    map[string]*Resource
	created *Resource
	updated *Resource
	deleted string
}

func newFakeRepo(resources ...*Resource) *fakeRepo {
	r := &fakeRepo{byID: make(map[string]*Resource)}
	for _, res := range resources {
		r.byID[res.ID] = res
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, res *Resource) error {
	res.ID = "new-id"
	r.created = res
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Resource, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	panic("not used")
}

func (r *fakeRepo) ListActive(ctx context.Context) ([]*Resource, error) {
	panic("not used")
}

func (r *fakeRepo) Update(ctx context.Context, res *Resource) error {
	r.updated = res
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	r.deleted = id
	return nil
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"blank name", CreateRequest{Name: "   "}, ErrNameRequired},
		{"negative buffer before", CreateRequest{Name: "Van 1", BufferBefore: -time.Minute}, ErrNegativeBuffer},
		{"negative buffer after", CreateRequest{Name: "Van 1", BufferAfter: -time.Minute}, ErrNegativeBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			_, err := svc.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	res, err := svc.Create(context.Background(), CreateRequest{
		Name:         "Van 1",
		SKU:          "VAN-001",
		BufferBefore: 30 * time.Minute,
		BufferAfter:  15 * time.Minute,
		Active:       true,
	})
	require.NoError(t, err)
	require.Equal(t, "new-id", res.ID)
	require.Equal(t, 30*time.Minute, repo.created.BufferBefore)
	require.True(t, repo.created.Active)
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeRepo(&Resource{ID: "van-1", Name: "Van 1", SKU: "VAN-001", BufferAfter: 15 * time.Minute, Active: true})
	svc := NewService(repo)

	newName := "Van 1 (long wheelbase)"
	res, err := svc.Update(context.Background(), "van-1", UpdateRequest{Name: &newName})
	require.NoError(t, err)

	// Only the provided field changes.
	require.Equal(t, newName, res.Name)
	require.Equal(t, "VAN-001", res.SKU)
	require.Equal(t, 15*time.Minute, res.BufferAfter)
}

func TestUpdateValidation(t *testing.T) {
	repo := newFakeRepo(&Resource{ID: "van-1", Name: "Van 1"})
	svc := NewService(repo)

	blank := "  "
	_, err := svc.Update(context.Background(), "van-1", UpdateRequest{Name: &blank})
	require.ErrorIs(t, err, ErrNameRequired)

	negative := -time.Minute
	_, err = svc.Update(context.Background(), "van-1", UpdateRequest{BufferBefore: &negative})
	require.ErrorIs(t, err, ErrNegativeBuffer)

	_, err = svc.Update(context.Background(), "nope", UpdateRequest{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(&Resource{ID: "van-1", Name: "Van 1"})
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), "van-1"))
	require.Equal(t, "van-1", repo.deleted)

	require.ErrorIs(t, svc.Delete(context.Background(), "nope"), ErrNotFound)
}
