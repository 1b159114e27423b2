package model

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestScenarioScopeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		scope Scope
	}{
		{"individual", IndividualScope{
			ShootHours: 2, EditTimeRatio: 0.5, Images: 5,
			RetouchMinutesPerImage: 15, TravelHours: 1, AdminHours: 2,
			LicensingMultiplier: 1.0,
		}},
		{"team", TeamScope{
			PeopleCount: 40, MinutesPerPerson: 15, EditTimeRatio: 0.5,
			RetouchMinutesPerPerson: 10, TravelHours: 1, AdminHours: 2,
			LicensingMultiplier: 1.0,
		}},
		{"retainer", RetainerScope{MonthlyHours: 10, AdminHours: 2, LicensingMultiplier: 1.0}},
		{"licensing", LicensingScope{BaseLicenseFee: 500, AdminHours: 2, LicensingMultiplier: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ScenarioData{
				ID:     "abc",
				Date:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
				Type:   tt.scope.Type(),
				Title:  "Test Quote",
				Scope:  tt.scope,
				Status: StatusDraft,
				ProjectExpenses: []ProjectExpense{
					{ID: "1", Name: "Studio Rental", Amount: 150},
				},
			}

			data, err := json.Marshal(in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			var out ScenarioData
			if err := json.Unmarshal(data, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if out.Scope != tt.scope {
				t.Errorf("scope = %#v, want %#v", out.Scope, tt.scope)
			}
			if out.Type != tt.scope.Type() {
				t.Errorf("type = %q, want %q", out.Type, tt.scope.Type())
			}
			if !out.Date.Equal(in.Date) {
				t.Errorf("date = %v, want %v", out.Date, in.Date)
			}
		})
	}
}

func TestDecodeScopeUnknownType(t *testing.T) {
	if _, err := decodeScope("Wedding", json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected error for unknown scenario type")
	}
}

func TestDefaultProfileRecognizableShape(t *testing.T) {
	p := DefaultProfile()
	if p.MonthlyExpenses() != 330 {
		t.Errorf("default monthly expenses = %v, want 330", p.MonthlyExpenses())
	}
	if p.TargetHourlyRate != 0 || p.CODBHourly != 0 {
		t.Error("derived rates should start at zero until ApplyRates runs")
	}
}
