package httptransport

// ErrorResponse is the uniform error body returned by prediction
// endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DMSDTO struct {
	Degrees int     `json:"degrees"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

type ZodiacDTO struct {
	Sign      string  `json:"sign"`
	SignIndex int     `json:"sign_index"`
	DegInSign float64 `json:"deg_in_sign"`
	DMS       DMSDTO  `json:"dms"`
}

type BodyPositionDTO struct {
	Name       string    `json:"name"`
	Longitude  float64   `json:"longitude"`
	Retrograde bool      `json:"retrograde"`
	Zodiac     ZodiacDTO `json:"zodiac"`
}

type PositionsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Timestamp string            `json:"timestamp"`
		Positions []BodyPositionDTO `json:"positions"`
	} `json:"data"`
}

type HousesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Ascendant float64  `json:"ascendant"`
		Houses    []string `json:"houses"`
	} `json:"data"`
}

type UnifiedScoreRequest struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Energy    float64  `json:"energy"`
	GravShift float64  `json:"grav_shift"`
	Distance  float64  `json:"distance"`
	AstroW    *float64 `json:"astro_weight,omitempty"`
	QuantW    *float64 `json:"quantum_weight,omitempty"`
}

type UnifiedScoreResponse struct {
	Status string `json:"status"`
	Data   struct {
		Astro        float64 `json:"astro"`
		Quant        float64 `json:"quant"`
		Final        float64 `json:"final"`
		AstroWeight  float64 `json:"astro_weight"`
		QuantWeight  float64 `json:"quantum_weight"`
		WindowEvents int     `json:"window_events"`
	} `json:"data"`
}
