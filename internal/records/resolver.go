package records

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
	"github.com/petralia/cfdnsctl/internal/infrastructure/logger"
)

// Resolve looks up records lazily. A record ID wins over every other
// filter and yields exactly that record. With a type the matching
// records are listed page by page; without one every known type is
// walked in declaration order, each to completion before the next.
//
// Precondition failures (bad input, no zone anywhere) surface through
// the pager's Err before any request is issued.
func (s *Service) Resolve(ctx context.Context, q entity.RecordQuery) *RecordPager {
	p := &RecordPager{ctx: ctx, svc: s, idx: -1}

	if err := q.Validate(); err != nil {
		p.err = err
		return p
	}

	zoneID, err := s.effectiveZoneID(q.ZoneID)
	if err != nil {
		p.err = err
		return p
	}
	q.ZoneID = zoneID
	q.List = q.List.WithDefaults()
	p.query = q

	if q.RecordID == "" {
		if q.Type != "" {
			p.types = []entity.RecordType{q.Type}
		} else {
			p.types = entity.RecordTypes
		}
	}
	return p
}

// ResolveAll drains a Resolve pager into a slice.
func (s *Service) ResolveAll(ctx context.Context, q entity.RecordQuery) ([]entity.DNSRecord, error) {
	pager := s.Resolve(ctx, q)
	var out []entity.DNSRecord
	for pager.Next() {
		out = append(out, pager.Current())
	}
	if err := pager.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// getByID fetches one record directly. A 404 becomes ErrRecordNotFound.
func (s *Service) getByID(ctx context.Context, zoneID, recordID string) (*entity.DNSRecord, error) {
	env, err := s.api.Do(ctx, http.MethodGet, recordPath(zoneID, recordID), nil, nil)
	if err != nil {
		var apiErr *cloudflare.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, recordID)
		}
		return nil, err
	}

	var rec entity.DNSRecord
	if err := json.Unmarshal(env.Result, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding record: %v", domain.ErrInvalidResponse, err)
	}
	return &rec, nil
}

// listPage fetches one page of the list query for one record type.
func (s *Service) listPage(ctx context.Context, q entity.RecordQuery, rt entity.RecordType, page int) ([]entity.DNSRecord, *cloudflare.ResultInfo, error) {
	query := url.Values{}
	query.Set("type", string(rt))
	if q.Name != "" {
		query.Set("name", q.Name)
	}
	query.Set("order", q.List.Order)
	query.Set("direction", string(q.List.Direction))
	query.Set("match", string(q.List.Match))
	query.Set("per_page", strconv.Itoa(q.List.PerPage))
	query.Set("page", strconv.Itoa(page))

	env, err := s.api.Do(ctx, http.MethodGet, recordsPath(q.ZoneID), query, nil)
	if err != nil {
		return nil, nil, err
	}

	var recs []entity.DNSRecord
	if err := json.Unmarshal(env.Result, &recs); err != nil {
		return nil, nil, fmt.Errorf("%w: decoding record list: %v", domain.ErrInvalidResponse, err)
	}

	logger.Debug("listed dns records", "zone", q.ZoneID, "type", rt, "page", page, "count", len(recs))
	return recs, env.ResultInfo, nil
}
