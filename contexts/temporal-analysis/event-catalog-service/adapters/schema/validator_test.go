package schema

import "testing"

func TestValidatorAcceptsWellFormedBatch(t *testing.T) {
	validator, err := NewValidator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := []byte(`{
		"events": [
			{"date": "2024-01-15", "title": "Solar eclipse", "category": "macro", "weight": 2.5},
			{"id": "e2", "date": "2024-02-01", "title": "Market crash"}
		]
	}`)
	if err := validator.Validate(payload); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
}

func TestValidatorRejectsBadPayloads(t *testing.T) {
	validator, err := NewValidator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]string{
		"not json":        `{"events":`,
		"no events":       `{}`,
		"empty events":    `{"events": []}`,
		"missing title":   `{"events": [{"date": "2024-01-15"}]}`,
		"missing date":    `{"events": [{"title": "Solar eclipse"}]}`,
		"weight too big":  `{"events": [{"date": "2024-01-15", "title": "x", "weight": 7}]}`,
		"unknown field":   `{"events": [{"date": "2024-01-15", "title": "x", "planet": "mars"}]}`,
		"events not list": `{"events": {"date": "2024-01-15"}}`,
	}
	for name, payload := range cases {
		if err := validator.Validate([]byte(payload)); err == nil {
			t.Errorf("%s: expected validation failure", name)
		}
	}
}
