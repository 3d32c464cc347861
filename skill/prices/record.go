package prices

// Record is the per-locality fuel price snapshot returned by the pricing
// API. Diesel is not sold everywhere, so its fields may be absent.
type Record struct {
	MunicipalityName string   `json:"municipality_name"`
	StateName        string   `json:"state_name"`
	Stations         int      `json:"stations"`
	RegularMax       float64  `json:"regular_max"`
	RegularMedian    float64  `json:"regular_median"`
	PremiumMax       float64  `json:"premium_max"`
	PremiumMedian    float64  `json:"premium_median"`
	DieselMax        *float64 `json:"diesel_max,omitempty"`
	DieselMedian     *float64 `json:"diesel_median,omitempty"`
}
