package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/domain/entity"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
	"github.com/petralia/cfdnsctl/internal/infrastructure/logger"
)

// Update resolves the target record, overlays the caller's fields on
// its current values, and issues a single PUT. The remote API replaces
// the named fields wholesale, so anything the caller leaves unset is
// carried over from the resolved record: type, name and content are
// always sent, ttl only when the caller passed a non-zero value, and
// proxied only for the explicit On/Off variants.
func (s *Service) Update(ctx context.Context, in entity.UpdateInput) (*entity.DNSRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	zoneID, err := s.effectiveZoneID(in.ZoneID)
	if err != nil {
		return nil, err
	}

	current, err := s.resolveTarget(ctx, zoneID, in)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"type":    string(current.Type),
		"name":    current.Name,
		"content": current.Content,
	}
	if in.Type != "" {
		payload["type"] = string(in.Type)
	}
	if in.Name != "" {
		payload["name"] = in.Name
	}
	if in.Content != "" {
		payload["content"] = in.Content
	}
	if in.TTL != 0 {
		payload["ttl"] = in.TTL
	}
	if proxied, ok := in.Proxied.Value(); ok {
		payload["proxied"] = proxied
	}

	env, err := s.api.Do(ctx, http.MethodPut, recordPath(zoneID, current.ID), nil, payload)
	if err != nil {
		return nil, err
	}

	var rec entity.DNSRecord
	if err := json.Unmarshal(env.Result, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding updated record: %v", domain.ErrInvalidResponse, err)
	}

	logger.Info("updated dns record", "zone", zoneID, "record", rec.ID, "type", rec.Type, "name", rec.Name)
	return &rec, nil
}

// resolveTarget finds the record to update and its current values. By
// ID it is a single direct fetch. By (name, type) exactly one match is
// required: zero means not found and several are ambiguous.
func (s *Service) resolveTarget(ctx context.Context, zoneID string, in entity.UpdateInput) (*entity.DNSRecord, error) {
	if in.RecordID != "" {
		return s.getByID(ctx, zoneID, in.RecordID)
	}

	matches, err := s.ResolveAll(ctx, entity.RecordQuery{ZoneID: zoneID, Type: in.Type, Name: in.Name})
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s %q", domain.ErrRecordNotFound, in.Type, in.Name)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d records named %q, pass --id to pick one", domain.ErrAmbiguousRecord, len(matches), in.Name)
	}
}

// Create adds a record. Same TTL and proxy rules as Update; priority
// rides along for MX and SRV records.
func (s *Service) Create(ctx context.Context, in entity.CreateInput) (*entity.DNSRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	zoneID, err := s.effectiveZoneID(in.ZoneID)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"type":    string(in.Type),
		"name":    in.Name,
		"content": in.Content,
	}
	if in.TTL != 0 {
		payload["ttl"] = in.TTL
	}
	if proxied, ok := in.Proxied.Value(); ok {
		payload["proxied"] = proxied
	}
	if in.Priority != nil {
		payload["priority"] = *in.Priority
	}

	env, err := s.api.Do(ctx, http.MethodPost, recordsPath(zoneID), nil, payload)
	if err != nil {
		return nil, err
	}

	var rec entity.DNSRecord
	if err := json.Unmarshal(env.Result, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding created record: %v", domain.ErrInvalidResponse, err)
	}

	logger.Info("created dns record", "zone", zoneID, "record", rec.ID, "type", rec.Type, "name", rec.Name)
	return &rec, nil
}

// Delete removes a record by ID.
func (s *Service) Delete(ctx context.Context, zoneID, recordID string) error {
	if err := entity.ValidateRecordID(recordID); err != nil {
		return err
	}

	zone, err := s.effectiveZoneID(zoneID)
	if err != nil {
		return err
	}

	if _, err := s.api.Do(ctx, http.MethodDelete, recordPath(zone, recordID), nil, nil); err != nil {
		var apiErr *cloudflare.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, recordID)
		}
		return err
	}

	logger.Info("deleted dns record", "zone", zone, "record", recordID)
	return nil
}
