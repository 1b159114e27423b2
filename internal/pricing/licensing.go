package pricing

// LicenseFactor is one selectable multiplier in a licensing menu.
type LicenseFactor struct {
	Label string
	Value float64
}

// Factor menus for the licensing calculator. Values are industry-standard
// usage multipliers applied to the base creative fee.
var (
	MediaFactors = []LicenseFactor{
		{"Web/Social Only", 1.0},
		{"Print + Web (Small)", 1.5},
		{"Advertising / Billboard", 3.0},
	}
	DurationFactors = []LicenseFactor{
		{"1 Year", 1.0},
		{"3-5 Years", 1.5},
		{"Perpetual", 2.5},
	}
	TerritoryFactors = []LicenseFactor{
		{"Local/Regional", 1.0},
		{"National", 1.5},
		{"Worldwide", 2.0},
	}
	ExclusivityFactors = []LicenseFactor{
		{"Non-Exclusive", 1.0},
		{"Category Exclusive", 1.5},
		{"Full Exclusive", 2.0},
	}
)

// LicenseTerms is one licensing fee calculation. Independent of profile and
// scenario state.
type LicenseTerms struct {
	BaseFee     float64
	Media       float64
	Duration    float64
	Territory   float64
	Exclusivity float64
}

// DefaultLicenseTerms starts every factor at 1.0.
func DefaultLicenseTerms(baseFee float64) LicenseTerms {
	return LicenseTerms{
		BaseFee:     baseFee,
		Media:       1.0,
		Duration:    1.0,
		Territory:   1.0,
		Exclusivity: 1.0,
	}
}

// Total returns the full licensing price including the creation cost.
func (t LicenseTerms) Total() float64 {
	return t.BaseFee * t.Media * t.Duration * t.Territory * t.Exclusivity
}

// UsageFee returns the markup over the creation cost.
func (t LicenseTerms) UsageFee() float64 {
	return t.Total() - t.BaseFee
}
