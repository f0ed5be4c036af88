package nuclino

import (
	"encoding/json"
	"testing"
)

func TestFieldConfig_StructuralDecode(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantKind     ConfigKind
		wantDigits   int // -1 for nil
		wantCurrency string
		wantOptions  int
		wantTime     bool
	}{
		{
			name:       "number with digits",
			body:       `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"Estimate","type":"number","config":{"fractionDigits":2}}`,
			wantKind:   ConfigNumber,
			wantDigits: 2,
		},
		{
			name:       "number empty config",
			body:       `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"Estimate","type":"number","config":{}}`,
			wantKind:   ConfigNumber,
			wantDigits: -1,
		},
		{
			name:         "currency",
			body:         `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"Budget","type":"currency","config":{"currency":"EUR","fractionDigits":2}}`,
			wantKind:     ConfigCurrency,
			wantDigits:   2,
			wantCurrency: "EUR",
		},
		{
			name:        "select",
			body:        `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"Status","type":"select","config":{"options":[{"id":"e9e648b3-8ce3-410d-8ef8-51b46c63cdaf","name":"Open"},{"id":"aaf6d580-565d-497b-9ff3-b32075de3f4c","name":"Done"}]}}`,
			wantKind:    ConfigSelections,
			wantDigits:  -1,
			wantOptions: 2,
		},
		{
			name:       "timestamp",
			body:       `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"Created","type":"createdAt","config":{"includeTime":true}}`,
			wantKind:   ConfigTimestamp,
			wantDigits: -1,
			wantTime:   true,
		},
		{
			name:       "null config",
			body:       `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"Notes","type":"text","config":null}`,
			wantKind:   ConfigNone,
			wantDigits: -1,
		},
		{
			name:        "type tag mismatch is tolerated",
			body:        `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"Odd","type":"date","config":{"options":[]}}`,
			wantKind:    ConfigSelections,
			wantDigits:  -1,
			wantOptions: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Field
			if err := json.Unmarshal([]byte(tt.body), &f); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			c := f.Config
			if c.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", c.Kind, tt.wantKind)
			}
			switch {
			case tt.wantDigits < 0 && c.FractionDigits != nil:
				t.Errorf("FractionDigits = %d, want nil", *c.FractionDigits)
			case tt.wantDigits >= 0 && (c.FractionDigits == nil || *c.FractionDigits != tt.wantDigits):
				t.Errorf("FractionDigits = %v, want %d", c.FractionDigits, tt.wantDigits)
			}
			if c.Currency != tt.wantCurrency {
				t.Errorf("Currency = %q, want %q", c.Currency, tt.wantCurrency)
			}
			if len(c.Options) != tt.wantOptions {
				t.Errorf("len(Options) = %d, want %d", len(c.Options), tt.wantOptions)
			}
			if c.IncludeTime != tt.wantTime {
				t.Errorf("IncludeTime = %v, want %v", c.IncludeTime, tt.wantTime)
			}
		})
	}
}

func TestFieldConfig_AbsentIsNone(t *testing.T) {
	var f Field
	body := `{"id":"1504df6f-5704-43e9-9af9-79ed801828d8","name":"My date field","type":"date"}`
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !f.Config.IsNone() {
		t.Errorf("Config = %+v, want none", f.Config)
	}
}

func TestFieldConfig_MarshalRoundTrip(t *testing.T) {
	digits := 3
	configs := []FieldConfig{
		{Kind: ConfigNumber, FractionDigits: &digits},
		{Kind: ConfigCurrency, Currency: "USD"},
		{Kind: ConfigSelections},
		{Kind: ConfigTimestamp, IncludeTime: true},
		{Kind: ConfigNone},
	}

	for _, want := range configs {
		t.Run(string(want.Kind), func(t *testing.T) {
			data, err := json.Marshal(want)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var got FieldConfig
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", data, err)
			}
			if got.Kind != want.Kind {
				t.Errorf("Kind = %q, want %q (wire %s)", got.Kind, want.Kind, data)
			}
		})
	}
}

func TestFieldType(t *testing.T) {
	tests := []struct {
		fieldType  FieldType
		wantConfig bool
	}{
		{FieldDate, false},
		{FieldText, false},
		{FieldNumber, true},
		{FieldCurrency, true},
		{FieldSelect, true},
		{FieldMultiSelect, true},
		{FieldMultiCollaborator, false},
		{FieldCreatedBy, false},
		{FieldLastUpdatedBy, false},
		{FieldCreatedAt, true},
		{FieldUpdatedAt, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.fieldType), func(t *testing.T) {
			if got := tt.fieldType.HasConfig(); got != tt.wantConfig {
				t.Errorf("HasConfig() = %v, want %v", got, tt.wantConfig)
			}

			var decoded FieldType
			if err := json.Unmarshal([]byte(`"`+string(tt.fieldType)+`"`), &decoded); err != nil {
				t.Errorf("Unmarshal() error = %v", err)
			}
			if decoded != tt.fieldType {
				t.Errorf("decoded = %q, want %q", decoded, tt.fieldType)
			}
		})
	}

	var ft FieldType
	if err := json.Unmarshal([]byte(`"formula"`), &ft); err == nil {
		t.Error("Unmarshal() of unknown type should fail")
	}
}
