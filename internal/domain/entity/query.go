package entity

import (
	"fmt"

	"github.com/petralia/cfdnsctl/internal/domain"
)

type MatchScope string

const (
	// MatchAll requires every provided filter to match (AND).
	MatchAll MatchScope = "all"
	// MatchAny requires at least one provided filter to match (OR).
	MatchAny MatchScope = "any"
)

type SortDirection string

const (
	DirectionAsc  SortDirection = "asc"
	DirectionDesc SortDirection = "desc"
)

// ListOptions controls ordering and paging of record lookups.
type ListOptions struct {
	Order     string
	Direction SortDirection
	Match     MatchScope
	PerPage   int
}

// WithDefaults fills unset paging fields: order by name, ascending,
// AND-match, 50 records per page.
func (o ListOptions) WithDefaults() ListOptions {
	if o.Order == "" {
		o.Order = "name"
	}
	if o.Direction == "" {
		o.Direction = DirectionAsc
	}
	if o.Match == "" {
		o.Match = MatchAll
	}
	if o.PerPage == 0 {
		o.PerPage = 50
	}
	return o
}

// RecordQuery describes one record lookup. ZoneID falls back to the
// session zone when empty; RecordID short-circuits everything else;
// an empty Type means "every known type".
type RecordQuery struct {
	ZoneID   string
	RecordID string
	Type     RecordType
	Name     string
	List     ListOptions
}

func (q *RecordQuery) Validate() error {
	if q.RecordID != "" {
		if err := ValidateRecordID(q.RecordID); err != nil {
			return err
		}
	}
	if q.Type != "" && !q.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidType, q.Type)
	}
	return nil
}

// UpdateInput targets a record by ID or by (name, type) and carries the
// fields to change. Unset fields keep the resolved record's values;
// TTL 0 and ProxyUnset are omitted from the request entirely.
type UpdateInput struct {
	ZoneID   string
	RecordID string
	Type     RecordType
	Name     string
	Content  string
	TTL      int
	Proxied  ProxyState
}

func (in *UpdateInput) Validate() error {
	if err := ValidateTTL(in.TTL); err != nil {
		return err
	}
	if in.RecordID != "" {
		if err := ValidateRecordID(in.RecordID); err != nil {
			return err
		}
	} else if in.Name == "" {
		return domain.RequiredField("record id or name")
	}
	if in.Type != "" && !in.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidType, in.Type)
	}
	return nil
}

// CreateInput carries the fields for a new record.
type CreateInput struct {
	ZoneID   string
	Type     RecordType
	Name     string
	Content  string
	TTL      int
	Proxied  ProxyState
	Priority *uint16
}

func (in *CreateInput) Validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidType, in.Type)
	}
	if in.Name == "" {
		return domain.RequiredField("name")
	}
	if in.Content == "" {
		return domain.RequiredField("content")
	}
	return ValidateTTL(in.TTL)
}
