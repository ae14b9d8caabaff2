package entity

import (
	"fmt"
	"time"

	"github.com/petralia/cfdnsctl/internal/domain"
)

type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeLOC   RecordType = "LOC"
	RecordTypeSPF   RecordType = "SPF"
)

// RecordTypes is the closed set of record types the API accepts.
// A lookup without an explicit type walks this list in order.
var RecordTypes = []RecordType{
	RecordTypeA,
	RecordTypeAAAA,
	RecordTypeCNAME,
	RecordTypeTXT,
	RecordTypeMX,
	RecordTypeNS,
	RecordTypeSRV,
	RecordTypeLOC,
	RecordTypeSPF,
}

func (t RecordType) Valid() bool {
	for _, known := range RecordTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ProxyState is the tri-state orange-cloud flag. Unset means "leave the
// remote value untouched", which is distinct from Off.
type ProxyState int

const (
	ProxyUnset ProxyState = iota
	ProxyOn
	ProxyOff
)

// Value reports the boolean to send and whether to send it at all.
func (p ProxyState) Value() (bool, bool) {
	switch p {
	case ProxyOn:
		return true, true
	case ProxyOff:
		return false, true
	default:
		return false, false
	}
}

func (p ProxyState) String() string {
	switch p {
	case ProxyOn:
		return "on"
	case ProxyOff:
		return "off"
	default:
		return "unset"
	}
}

// ParseProxyState maps the CLI flag value onto the tri-state flag.
// The empty string is the unset variant.
func ParseProxyState(s string) (ProxyState, error) {
	switch s {
	case "":
		return ProxyUnset, nil
	case "on", "true":
		return ProxyOn, nil
	case "off", "false":
		return ProxyOff, nil
	default:
		return ProxyUnset, fmt.Errorf("%w: proxied must be on or off, got %q", domain.ErrInvalidType, s)
	}
}

// TTL bounds accepted by the API on writes. Callers of the update path
// use 0 as the "do not change" sentinel.
const (
	TTLMin = 120
	TTLMax = 2147483647
)

// ValidateTTL accepts 0 as unset and otherwise requires the API range.
func ValidateTTL(ttl int) error {
	if ttl == 0 {
		return nil
	}
	if ttl < TTLMin || ttl > TTLMax {
		return fmt.Errorf("%w: ttl must be between %d and %d, got %d", domain.ErrInvalidTTL, TTLMin, TTLMax, ttl)
	}
	return nil
}

// DNSRecord is a single record as returned by the API. It is a
// snapshot; nothing in this repo caches it beyond one call.
type DNSRecord struct {
	ID         string     `json:"id"`
	Type       RecordType `json:"type"`
	Name       string     `json:"name"`
	Content    string     `json:"content"`
	TTL        int        `json:"ttl"`
	Priority   *uint16    `json:"priority,omitempty"`
	Proxiable  bool       `json:"proxiable"`
	Proxied    bool       `json:"proxied"`
	Locked     bool       `json:"locked"`
	ZoneID     string     `json:"zone_id"`
	ZoneName   string     `json:"zone_name"`
	CreatedOn  time.Time  `json:"created_on"`
	ModifiedOn time.Time  `json:"modified_on"`
}
