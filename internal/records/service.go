package records

import (
	"context"
	"net/url"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/domain/entity"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
)

// API is the request executor record operations run against. The
// concrete implementation lives in infrastructure/cloudflare; tests
// substitute a scripted fake.
type API interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (*cloudflare.Envelope, error)
}

// ZoneContext supplies the session's currently selected zone. It is
// read-only from here; the zone commands write it.
type ZoneContext interface {
	CurrentZone() (entity.Zone, bool)
}

// Service implements DNS record lookups and writes on top of the API
// executor. All calls are synchronous and sequential.
type Service struct {
	api   API
	zones ZoneContext
}

// NewService builds a record service. zones may be nil, in which case
// every call must carry an explicit zone ID.
func NewService(api API, zones ZoneContext) *Service {
	return &Service{api: api, zones: zones}
}

// effectiveZoneID prefers the explicit zone over the session zone and
// fails when neither is available. Nothing is sent before this check.
func (s *Service) effectiveZoneID(zoneID string) (string, error) {
	if zoneID != "" {
		return zoneID, nil
	}
	if s.zones != nil {
		if z, ok := s.zones.CurrentZone(); ok && z.ID != "" {
			return z.ID, nil
		}
	}
	return "", domain.ErrZoneUnresolved
}

func recordsPath(zoneID string) string {
	return "/zones/" + zoneID + "/dns_records"
}

func recordPath(zoneID, recordID string) string {
	return recordsPath(zoneID) + "/" + recordID
}
