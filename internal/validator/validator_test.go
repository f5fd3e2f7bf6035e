package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Category string `validate:"omitempty,expense_category"`
	Asset    string `validate:"omitempty,asset_type"`
	Debt     string `validate:"omitempty,liability_type"`
	Priority string `validate:"omitempty,goal_priority"`
	Date     string `validate:"omitempty,date"`
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"all_empty", sample{}, true},
		{"known_values", sample{"Food", "Real Estate", "Credit Card", "High", "2027-03-31"}, true},
		{"bad_category", sample{Category: "food"}, false},
		{"bad_asset", sample{Asset: "Bond"}, false},
		{"bad_liability", sample{Debt: "Mortgage"}, false},
		{"bad_priority", sample{Priority: "Urgent"}, false},
		{"bad_date_format", sample{Date: "31/03/2027"}, false},
		{"impossible_date", sample{Date: "2027-02-30"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
