package entity

import (
	"fmt"
	"regexp"

	"github.com/petralia/cfdnsctl/internal/domain"
)

// Zone is a Cloudflare-managed DNS domain.
type Zone struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
	Paused bool   `json:"paused,omitempty" yaml:"paused,omitempty"`
}

// Zone and record identifiers are 32 lowercase hex characters.
var resourceIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func ValidateZoneID(id string) error {
	if !resourceIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidZoneID, id)
	}
	return nil
}

func ValidateRecordID(id string) error {
	if !resourceIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRecordID, id)
	}
	return nil
}

func (z *Zone) Validate() error {
	if err := ValidateZoneID(z.ID); err != nil {
		return err
	}
	if z.Name == "" {
		return domain.RequiredField("name")
	}
	return nil
}
