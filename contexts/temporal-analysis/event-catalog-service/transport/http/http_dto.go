package httptransport

// ErrorResponse is the uniform error body returned by catalog endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListEventsQuery carries the decoded query parameters of a listing.
type ListEventsQuery struct {
	Category  string
	MinWeight float64
	From      string
	To        string
	Limit     int
}

type CatalogEventDTO struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Title          string  `json:"title"`
	Category       string  `json:"category"`
	Description    string  `json:"description,omitempty"`
	AstroSignature string  `json:"astro_signature,omitempty"`
	Weight         float64 `json:"weight"`
}

type ListEventsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Events []CatalogEventDTO `json:"events"`
		Count  int               `json:"count"`
	} `json:"data"`
}

type ImportResponse struct {
	Status string `json:"status"`
	Data   struct {
		Imported     int            `json:"imported"`
		Skipped      int            `json:"skipped"`
		SkipReasons  map[string]int `json:"skip_reasons,omitempty"`
		CatalogTotal int            `json:"catalog_total"`
	} `json:"data"`
}
