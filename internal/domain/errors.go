package domain

import (
	"errors"
	"fmt"
)

var (
	ErrZoneUnresolved  = errors.New("no zone selected")
	ErrZoneNotFound    = errors.New("zone not found")
	ErrRecordNotFound  = errors.New("DNS record not found")
	ErrAmbiguousRecord = errors.New("multiple DNS records match")

	ErrInvalidTTL      = errors.New("invalid TTL")
	ErrInvalidType     = errors.New("invalid record type")
	ErrInvalidRecordID = errors.New("invalid record identifier")
	ErrInvalidZoneID   = errors.New("invalid zone identifier")
	ErrEmptyValue      = errors.New("empty value")
	ErrRequired        = errors.New("required field missing")

	ErrRequestFailed   = errors.New("cloudflare request failed")
	ErrInvalidResponse = errors.New("invalid response from cloudflare")

	ErrStateReadFailed  = errors.New("state read failed")
	ErrStateWriteFailed = errors.New("state write failed")

	ErrConfigReadFailed  = errors.New("config read failed")
	ErrConfigParseFailed = errors.New("config parse failed")
	ErrMissingCredential = errors.New("missing credential")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
