package nuclino

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// FieldType is the kind of value a workspace field holds.
type FieldType string

const (
	FieldDate              FieldType = "date"
	FieldText              FieldType = "text"
	FieldNumber            FieldType = "number"
	FieldCurrency          FieldType = "currency"
	FieldSelect            FieldType = "select"
	FieldMultiSelect       FieldType = "multiSelect"
	FieldMultiCollaborator FieldType = "multiCollaborator"
	FieldCreatedBy         FieldType = "createdBy"
	FieldLastUpdatedBy     FieldType = "lastUpdatedBy"
	FieldCreatedAt         FieldType = "createdAt"
	FieldUpdatedAt         FieldType = "updatedAt"
)

var fieldTypes = map[FieldType]bool{
	FieldDate:              true,
	FieldText:              true,
	FieldNumber:            true,
	FieldCurrency:          true,
	FieldSelect:            true,
	FieldMultiSelect:       true,
	FieldMultiCollaborator: true,
	FieldCreatedBy:         true,
	FieldLastUpdatedBy:     true,
	FieldCreatedAt:         true,
	FieldUpdatedAt:         true,
}

// HasConfig reports whether fields of this type carry configuration.
func (t FieldType) HasConfig() bool {
	switch t {
	case FieldNumber, FieldCurrency, FieldSelect, FieldMultiSelect, FieldCreatedAt, FieldUpdatedAt:
		return true
	}
	return false
}

// UnmarshalJSON rejects field types the API does not document.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !fieldTypes[FieldType(s)] {
		return fmt.Errorf("unknown field type %q", s)
	}
	*t = FieldType(s)
	return nil
}

// Field describes a named, typed metadata slot on a workspace's items.
type Field struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Type   FieldType   `json:"type"`
	Config FieldConfig `json:"config"`
}

// ConfigKind identifies the shape of a FieldConfig.
type ConfigKind string

const (
	ConfigNone       ConfigKind = "none"
	ConfigNumber     ConfigKind = "number"
	ConfigCurrency   ConfigKind = "currency"
	ConfigSelections ConfigKind = "selections"
	ConfigTimestamp  ConfigKind = "timestamp"
)

// Selection is one option of a select or multiSelect field.
type Selection struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FieldConfig is the type-specific configuration of a field. Only the
// members matching Kind are meaningful. Select and multiSelect share the
// Selections shape; createdAt and updatedAt share Timestamp.
type FieldConfig struct {
	Kind           ConfigKind
	FractionDigits *int
	Currency       string
	Options        []Selection
	IncludeTime    bool
}

type fieldConfigProbe struct {
	FractionDigits *int         `json:"fractionDigits"`
	Currency       *string      `json:"currency"`
	Options        *[]Selection `json:"options"`
	IncludeTime    *bool        `json:"includeTime"`
}

// UnmarshalJSON decodes the configuration from its shape alone. The sibling
// type tag is not consulted, so a config that disagrees with it still decodes.
func (c *FieldConfig) UnmarshalJSON(data []byte) error {
	*c = FieldConfig{Kind: ConfigNone}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var p fieldConfigProbe
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	switch {
	case p.Options != nil:
		c.Kind = ConfigSelections
		c.Options = *p.Options
	case p.Currency != nil:
		c.Kind = ConfigCurrency
		c.Currency = *p.Currency
		c.FractionDigits = p.FractionDigits
	case p.IncludeTime != nil:
		c.Kind = ConfigTimestamp
		c.IncludeTime = *p.IncludeTime
	case p.FractionDigits != nil:
		c.Kind = ConfigNumber
		c.FractionDigits = p.FractionDigits
	default:
		// {} is a number field with default precision; anything else is unknown.
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err == nil && len(raw) == 0 {
			c.Kind = ConfigNumber
		}
	}
	return nil
}

// MarshalJSON writes the configuration back in its wire shape.
func (c FieldConfig) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ConfigNumber:
		return json.Marshal(struct {
			FractionDigits *int `json:"fractionDigits,omitempty"`
		}{c.FractionDigits})
	case ConfigCurrency:
		return json.Marshal(struct {
			Currency       string `json:"currency"`
			FractionDigits *int   `json:"fractionDigits,omitempty"`
		}{c.Currency, c.FractionDigits})
	case ConfigSelections:
		opts := c.Options
		if opts == nil {
			opts = []Selection{}
		}
		return json.Marshal(struct {
			Options []Selection `json:"options"`
		}{opts})
	case ConfigTimestamp:
		return json.Marshal(struct {
			IncludeTime bool `json:"includeTime"`
		}{c.IncludeTime})
	default:
		return []byte("null"), nil
	}
}

// IsNone reports whether the field carries no configuration.
func (c FieldConfig) IsNone() bool {
	return c.Kind == "" || c.Kind == ConfigNone
}
