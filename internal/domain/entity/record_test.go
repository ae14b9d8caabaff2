package entity

import (
	"errors"
	"testing"

	"github.com/petralia/cfdnsctl/internal/domain"
)

func TestValidateTTL(t *testing.T) {
	tests := []struct {
		name    string
		ttl     int
		wantErr error
	}{
		{"zero is unset", 0, nil},
		{"minimum", 120, nil},
		{"maximum", 2147483647, nil},
		{"typical", 3600, nil},
		{"below range", 119, domain.ErrInvalidTTL},
		{"one", 1, domain.ErrInvalidTTL},
		{"negative", -300, domain.ErrInvalidTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTTL(tt.ttl)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTTL(%d) = %v, want nil", tt.ttl, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTTL(%d) = %v, want %v", tt.ttl, err, tt.wantErr)
			}
		})
	}
}

func TestRecordTypeValid(t *testing.T) {
	for _, rt := range RecordTypes {
		if !rt.Valid() {
			t.Errorf("declared type %q reported invalid", rt)
		}
	}

	for _, rt := range []RecordType{"", "PTR", "a", "ALIAS"} {
		if rt.Valid() {
			t.Errorf("type %q reported valid", rt)
		}
	}
}

func TestParseProxyState(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ProxyState
		wantErr bool
	}{
		{"empty is unset", "", ProxyUnset, false},
		{"on", "on", ProxyOn, false},
		{"true", "true", ProxyOn, false},
		{"off", "off", ProxyOff, false},
		{"false", "false", ProxyOff, false},
		{"garbage", "maybe", ProxyUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProxyState(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProxyState(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProxyState(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProxyStateValue(t *testing.T) {
	if v, ok := ProxyOn.Value(); !ok || !v {
		t.Errorf("ProxyOn.Value() = %v, %v", v, ok)
	}
	if v, ok := ProxyOff.Value(); !ok || v {
		t.Errorf("ProxyOff.Value() = %v, %v", v, ok)
	}
	if _, ok := ProxyUnset.Value(); ok {
		t.Error("ProxyUnset.Value() reported a value to send")
	}
}
