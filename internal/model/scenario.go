package model

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// ScenarioType identifies which pricing formula a scenario uses.
type ScenarioType string

const (
	ScenarioIndividual ScenarioType = "Individual Session"
	ScenarioTeam       ScenarioType = "Team/Group Headshots"
	ScenarioRetainer   ScenarioType = "Monthly Retainer"
	ScenarioLicensing  ScenarioType = "Licensing Only"
)

// ScenarioStatus tracks whether a saved quote was won.
type ScenarioStatus string

const (
	StatusDraft ScenarioStatus = "Draft"
	StatusWon   ScenarioStatus = "Won"
	StatusLost  ScenarioStatus = "Lost"
)

// ProjectExpense is a hard cost scoped to a single scenario.
type ProjectExpense struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Scope is the type-specific set of scenario inputs. Each scenario type has
// its own variant carrying only the fields its formula reads.
type Scope interface {
	Type() ScenarioType
}

// IndividualScope prices a single-subject session.
type IndividualScope struct {
	ShootHours             float64 `json:"shootHours"`
	EditTimeRatio          float64 `json:"editTimeRatio"` // edit hours per shoot hour
	Images                 int     `json:"images"`
	RetouchMinutesPerImage float64 `json:"retouchTime"`
	TravelHours            float64 `json:"travelHours"`
	AdminHours             float64 `json:"adminHours"`
	LicensingMultiplier    float64 `json:"licensingMultiplier"`
}

func (IndividualScope) Type() ScenarioType { return ScenarioIndividual }

// TeamScope prices a volume headshot session; shoot time is derived from
// headcount and per-person pace.
type TeamScope struct {
	PeopleCount             int     `json:"peopleCount"`
	MinutesPerPerson        float64 `json:"minsPerPerson"`
	EditTimeRatio           float64 `json:"editTimeRatio"`
	RetouchMinutesPerPerson float64 `json:"retouchTime"`
	TravelHours             float64 `json:"travelHours"`
	AdminHours              float64 `json:"adminHours"`
	LicensingMultiplier     float64 `json:"licensingMultiplier"`
}

func (TeamScope) Type() ScenarioType { return ScenarioTeam }

// RetainerScope prices a recurring monthly engagement.
type RetainerScope struct {
	MonthlyHours        float64 `json:"monthlyHours"`
	AdminHours          float64 `json:"adminHours"`
	LicensingMultiplier float64 `json:"licensingMultiplier"`
}

func (RetainerScope) Type() ScenarioType { return ScenarioRetainer }

// LicensingScope prices usage rights for existing work.
type LicensingScope struct {
	BaseLicenseFee      float64 `json:"baseLicenseFee"`
	AdminHours          float64 `json:"adminHours"`
	LicensingMultiplier float64 `json:"licensingMultiplier"`
}

func (LicensingScope) Type() ScenarioType { return ScenarioLicensing }

// QuoteTier is one of the three price/service bundles in a scenario.
// Name, Description and Features are caller-owned content; Price,
// HourlyRateEffective and Margin come from the pricer.
type QuoteTier struct {
	Name                string   `json:"name"`
	Price               float64  `json:"price"`
	Description         string   `json:"description"`
	Features            []string `json:"features"`
	HourlyRateEffective float64  `json:"hourlyRateEffective"`
	Margin              float64  `json:"margin"` // percent
}

// TierContent is the editable part of a tier, independent of pricing.
type TierContent struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// DefaultTierContents returns the stock Essential/Standard/Premium copy.
func DefaultTierContents() [3]TierContent {
	return [3]TierContent{
		{
			Name:        "Essential",
			Description: "Efficient coverage to get the job done.",
			Features:    []string{"Standard Turnaround", "Web Usage Rights", "Basic Retouching"},
		},
		{
			Name:        "Standard",
			Description: "Recommended balance of value and impact.",
			Features:    []string{"Priority Turnaround", "Print & Web Usage", "High-End Retouching", "Strategy Call"},
		},
		{
			Name:        "Premium",
			Description: "White-glove service with maximum flexibility.",
			Features:    []string{"Rush Delivery (24h)", "Full Buyout / Extensive Usage", "Unlimited Looks", "Hair & Makeup Included"},
		},
	}
}

// ScenarioData is one saved pricing scenario. Immutable after save except
// for Status and FinalPrice.
type ScenarioData struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	Type            ScenarioType     `json:"type"`
	Title           string           `json:"title"`
	Scope           Scope            `json:"-"`
	ProjectExpenses []ProjectExpense `json:"projectExpenses"`
	Tiers           [3]QuoteTier     `json:"tiers"` // Essential, Standard, Premium
	Status          ScenarioStatus   `json:"status"`
	FinalPrice      *float64         `json:"finalPrice,omitempty"`
}

// scenarioJSON is the wire form; the scope is serialized under "inputs"
// and dispatched on the type tag when decoding.
type scenarioJSON struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	Type            ScenarioType     `json:"type"`
	Title           string           `json:"title"`
	Inputs          json.RawMessage  `json:"inputs"`
	ProjectExpenses []ProjectExpense `json:"projectExpenses"`
	Tiers           [3]QuoteTier     `json:"tiers"`
	Status          ScenarioStatus   `json:"status"`
	FinalPrice      *float64         `json:"finalPrice,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s ScenarioData) MarshalJSON() ([]byte, error) {
	inputs, err := json.Marshal(s.Scope)
	if err != nil {
		return nil, fmt.Errorf("encoding scenario inputs: %w", err)
	}
	return json.Marshal(scenarioJSON{
		ID:              s.ID,
		Date:            s.Date,
		Type:            s.Type,
		Title:           s.Title,
		Inputs:          inputs,
		ProjectExpenses: s.ProjectExpenses,
		Tiers:           s.Tiers,
		Status:          s.Status,
		FinalPrice:      s.FinalPrice,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ScenarioData) UnmarshalJSON(data []byte) error {
	var raw scenarioJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	scope, err := decodeScope(raw.Type, raw.Inputs)
	if err != nil {
		return err
	}

	*s = ScenarioData{
		ID:              raw.ID,
		Date:            raw.Date,
		Type:            raw.Type,
		Title:           raw.Title,
		Scope:           scope,
		ProjectExpenses: raw.ProjectExpenses,
		Tiers:           raw.Tiers,
		Status:          raw.Status,
		FinalPrice:      raw.FinalPrice,
	}
	return nil
}

func decodeScope(t ScenarioType, inputs json.RawMessage) (Scope, error) {
	if len(inputs) == 0 {
		inputs = json.RawMessage("{}")
	}

	var scope Scope
	var err error
	switch t {
	case ScenarioIndividual:
		var v IndividualScope
		err = json.Unmarshal(inputs, &v)
		scope = v
	case ScenarioTeam:
		var v TeamScope
		err = json.Unmarshal(inputs, &v)
		scope = v
	case ScenarioRetainer:
		var v RetainerScope
		err = json.Unmarshal(inputs, &v)
		scope = v
	case ScenarioLicensing:
		var v LicensingScope
		err = json.Unmarshal(inputs, &v)
		scope = v
	default:
		return nil, fmt.Errorf("unknown scenario type %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s inputs: %w", t, err)
	}
	return scope, nil
}
