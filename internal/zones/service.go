// Package zones implements the zone-selection side of the tool: listing
// the zones the credentials can see and finding one by name or ID. The
// record operations never call this; they only read the session zone
// the zone commands persist.
package zones

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/domain/entity"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
)

type API interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (*cloudflare.Envelope, error)
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// List returns every zone, optionally filtered by exact name. Pages
// are fetched sequentially until the reported total is reached.
func (s *Service) List(ctx context.Context, name string) ([]entity.Zone, error) {
	var out []entity.Zone

	page, totalPages := 1, 1
	for page <= totalPages {
		query := url.Values{}
		if name != "" {
			query.Set("name", name)
		}
		query.Set("per_page", "50")
		query.Set("page", strconv.Itoa(page))

		env, err := s.api.Do(ctx, http.MethodGet, "/zones", query, nil)
		if err != nil {
			return nil, err
		}

		var zones []entity.Zone
		if err := json.Unmarshal(env.Result, &zones); err != nil {
			return nil, fmt.Errorf("%w: decoding zone list: %v", domain.ErrInvalidResponse, err)
		}
		out = append(out, zones...)

		if env.ResultInfo != nil && env.ResultInfo.TotalPages > 0 {
			totalPages = env.ResultInfo.TotalPages
		}
		page++
	}

	return out, nil
}

// Find resolves a zone by ID when the argument looks like one, by
// exact name otherwise.
func (s *Service) Find(ctx context.Context, nameOrID string) (*entity.Zone, error) {
	if entity.ValidateZoneID(nameOrID) == nil {
		env, err := s.api.Do(ctx, http.MethodGet, "/zones/"+nameOrID, nil, nil)
		if err != nil {
			var apiErr *cloudflare.APIError
			if errors.As(err, &apiErr) && apiErr.NotFound() {
				return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, nameOrID)
			}
			return nil, err
		}
		var zone entity.Zone
		if err := json.Unmarshal(env.Result, &zone); err != nil {
			return nil, fmt.Errorf("%w: decoding zone: %v", domain.ErrInvalidResponse, err)
		}
		return &zone, nil
	}

	zones, err := s.List(ctx, nameOrID)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, nameOrID)
	}
	return &zones[0], nil
}
