package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DiscoverTriggersRequest struct {
	WindowAStart string
	WindowAEnd   string
	WindowBStart string
	WindowBEnd   string
	MinScore     *float64
	Limit        int
}

type MetaPatternDTO struct {
	Name        string   `json:"name"`
	Score       float64  `json:"score"`
	Description string   `json:"description"`
	Nodes       []string `json:"nodes"`
	Links       []string `json:"links"`
}

type TriggerDiscoveryResponse struct {
	Status string `json:"status"`
	Data   struct {
		Patterns []MetaPatternDTO `json:"patterns"`
		Count    int              `json:"count"`
	} `json:"data"`
}

type NodeFrequencyDTO struct {
	NodeID string `json:"node_id"`
	Count  int    `json:"count"`
}

type PatternDigestDTO struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

type ClusterAnalysisResponse struct {
	Status string `json:"status"`
	Data   struct {
		TotalPatterns       int                `json:"total_patterns"`
		HighScorePatterns   int                `json:"high_score_patterns"`
		MediumScorePatterns int                `json:"medium_score_patterns"`
		LowScorePatterns    int                `json:"low_score_patterns"`
		AverageScore        float64            `json:"average_score"`
		MostFrequentNodes   []NodeFrequencyDTO `json:"most_frequent_nodes"`
		TopPatterns         []PatternDigestDTO `json:"top_patterns"`
	} `json:"data"`
}

type ScanRunDTO struct {
	RunID        string  `json:"run_id"`
	WindowAStart string  `json:"window_a_start"`
	WindowAEnd   string  `json:"window_a_end"`
	WindowBStart string  `json:"window_b_start"`
	WindowBEnd   string  `json:"window_b_end"`
	PatternCount int     `json:"pattern_count"`
	TopScore     float64 `json:"top_score"`
	CompletedAt  string  `json:"completed_at"`
}

type ScanRunsResponse struct {
	Status string       `json:"status"`
	Data   []ScanRunDTO `json:"data"`
}
