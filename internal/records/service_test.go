package records

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/petralia/cfdnsctl/internal/domain/entity"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
)

const (
	testZoneID    = "023e105f4ecef8ad9ca31a8372d0c353"
	testRecordID  = "372e67954025e0ba6aaa6d586b9e0b59"
	otherRecordID = "9a7806061c88ada191ed06f989cc3dac"
)

type apiCall struct {
	method string
	path   string
	query  url.Values
	body   any
}

// fakeAPI scripts envelope responses and records every call in order.
type fakeAPI struct {
	calls   []apiCall
	handler func(call apiCall) (*cloudflare.Envelope, error)
}

func (f *fakeAPI) Do(ctx context.Context, method, path string, query url.Values, body any) (*cloudflare.Envelope, error) {
	call := apiCall{method: method, path: path, query: query, body: body}
	f.calls = append(f.calls, call)
	return f.handler(call)
}

type sessionZone struct {
	zone entity.Zone
}

func (s sessionZone) CurrentZone() (entity.Zone, bool) {
	return s.zone, s.zone.ID != ""
}

func testRecord(id string, rt entity.RecordType, name, content string) entity.DNSRecord {
	return entity.DNSRecord{
		ID:      id,
		Type:    rt,
		Name:    name,
		Content: content,
		TTL:     300,
		ZoneID:  testZoneID,
	}
}

func recordEnvelope(t *testing.T, rec entity.DNSRecord) *cloudflare.Envelope {
	t.Helper()
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return &cloudflare.Envelope{Success: true, Result: raw}
}

func listEnvelope(t *testing.T, recs []entity.DNSRecord, totalPages int) *cloudflare.Envelope {
	t.Helper()
	raw, err := json.Marshal(recs)
	if err != nil {
		t.Fatalf("marshal records: %v", err)
	}
	return &cloudflare.Envelope{
		Success: true,
		Result:  raw,
		ResultInfo: &cloudflare.ResultInfo{
			PerPage:    50,
			Count:      len(recs),
			TotalPages: totalPages,
		},
	}
}

func emptyListHandler(t *testing.T) func(apiCall) (*cloudflare.Envelope, error) {
	return func(apiCall) (*cloudflare.Envelope, error) {
		return listEnvelope(t, nil, 1), nil
	}
}
