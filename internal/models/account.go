package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for date_joined.
const DateLayout = "2006-01-02"

// ValidationError reports a payload field that is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid account payload: %s %s", e.Field, e.Reason)
}

type Account struct {
	ID          int64
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  time.Time
}

// accountPayload is the wire shape. Pointers distinguish absent keys from
// empty values.
type accountPayload struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  *string `json:"date_joined"`
}

// Deserialize populates the account's fields from a JSON mapping. Required
// fields (name, email, address) must be present and non-empty; optional
// fields are only assigned when their key is present, so an update payload
// leaves omitted optional fields untouched. ID is never read from the
// payload.
func (a *Account) Deserialize(data []byte) error {
	var p accountPayload
	if err := json.Unmarshal(data, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &ValidationError{Field: typeErr.Field, Reason: "has the wrong type"}
		}
		return &ValidationError{Field: "body", Reason: "is not a valid JSON object"}
	}

	if p.Name == nil || *p.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if p.Email == nil || *p.Email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if p.Address == nil || *p.Address == "" {
		return &ValidationError{Field: "address", Reason: "is required"}
	}

	a.Name = *p.Name
	a.Email = *p.Email
	a.Address = *p.Address

	if p.PhoneNumber != nil {
		a.PhoneNumber = *p.PhoneNumber
	}
	if p.DateJoined != nil && *p.DateJoined != "" {
		joined, err := time.Parse(DateLayout, *p.DateJoined)
		if err != nil {
			return &ValidationError{Field: "date_joined", Reason: "must be a YYYY-MM-DD date"}
		}
		a.DateJoined = joined
	}

	return nil
}

// Serialize produces the wire mapping of every attribute, date_joined
// rendered as an ISO date string.
func (a *Account) Serialize() map[string]any {
	return map[string]any{
		"id":           a.ID,
		"name":         a.Name,
		"email":        a.Email,
		"address":      a.Address,
		"phone_number": a.PhoneNumber,
		"date_joined":  a.DateJoined.Format(DateLayout),
	}
}

func (a *Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Serialize())
}
