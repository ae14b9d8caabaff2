package zones

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/domain/entity"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
)

type fakeAPI struct {
	calls   []url.Values
	handler func(method, path string, query url.Values) (*cloudflare.Envelope, error)
}

func (f *fakeAPI) Do(ctx context.Context, method, path string, query url.Values, body any) (*cloudflare.Envelope, error) {
	f.calls = append(f.calls, query)
	return f.handler(method, path, query)
}

func zoneEnvelope(t *testing.T, zones []entity.Zone, totalPages int) *cloudflare.Envelope {
	t.Helper()
	raw, err := json.Marshal(zones)
	require.NoError(t, err)
	return &cloudflare.Envelope{
		Success:    true,
		Result:     raw,
		ResultInfo: &cloudflare.ResultInfo{TotalPages: totalPages, Count: len(zones)},
	}
}

func TestListPaginates(t *testing.T) {
	pages := [][]entity.Zone{
		{{ID: "023e105f4ecef8ad9ca31a8372d0c353", Name: "example.com"}},
		{{ID: "123e105f4ecef8ad9ca31a8372d0c353", Name: "example.net"}},
	}
	api := &fakeAPI{handler: func(method, path string, query url.Values) (*cloudflare.Envelope, error) {
		assert.Equal(t, http.MethodGet, method)
		assert.Equal(t, "/zones", path)
		if query.Get("page") == "1" {
			return zoneEnvelope(t, pages[0], 2), nil
		}
		return zoneEnvelope(t, pages[1], 2), nil
	}}
	svc := NewService(api)

	got, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, append(pages[0], pages[1]...), got)
	assert.Len(t, api.calls, 2)
}

func TestFindByName(t *testing.T) {
	want := entity.Zone{ID: "023e105f4ecef8ad9ca31a8372d0c353", Name: "example.com"}
	api := &fakeAPI{handler: func(method, path string, query url.Values) (*cloudflare.Envelope, error) {
		assert.Equal(t, "example.com", query.Get("name"))
		return zoneEnvelope(t, []entity.Zone{want}, 1), nil
	}}
	svc := NewService(api)

	got, err := svc.Find(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestFindByNameNotFound(t *testing.T) {
	api := &fakeAPI{handler: func(method, path string, query url.Values) (*cloudflare.Envelope, error) {
		return zoneEnvelope(t, nil, 1), nil
	}}
	svc := NewService(api)

	_, err := svc.Find(context.Background(), "missing.example")
	assert.ErrorIs(t, err, domain.ErrZoneNotFound)
}

func TestFindByID(t *testing.T) {
	want := entity.Zone{ID: "023e105f4ecef8ad9ca31a8372d0c353", Name: "example.com"}
	api := &fakeAPI{handler: func(method, path string, query url.Values) (*cloudflare.Envelope, error) {
		assert.Equal(t, "/zones/"+want.ID, path)
		raw, _ := json.Marshal(want)
		return &cloudflare.Envelope{Success: true, Result: raw}, nil
	}}
	svc := NewService(api)

	got, err := svc.Find(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
	assert.Len(t, api.calls, 1)
}

func TestFindByIDNotFound(t *testing.T) {
	api := &fakeAPI{handler: func(method, path string, query url.Values) (*cloudflare.Envelope, error) {
		return nil, &cloudflare.APIError{StatusCode: http.StatusNotFound, Method: method, Path: path}
	}}
	svc := NewService(api)

	_, err := svc.Find(context.Background(), "023e105f4ecef8ad9ca31a8372d0c353")
	assert.ErrorIs(t, err, domain.ErrZoneNotFound)
}
