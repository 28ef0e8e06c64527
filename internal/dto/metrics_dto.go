package dto

// FormattedMetric is one dashboard tile. Value is display-ready ("4.2", "3%",
// "N/A"); RawValue is nil when the pipeline recorded a sentinel.
type FormattedMetric struct {
	Value    string      `json:"value"`
	RawValue interface{} `json:"raw_value"`
	Scale    string      `json:"scale,omitempty"`
}

type DashboardMetricsResponse struct {
	Metrics     map[string]FormattedMetric `json:"metrics"`
	LastUpdated *string                    `json:"last_updated"`
}

// LiveRatingDTO is a just-fetched store rating; Value is "N/A" when the
// lookup failed.
type LiveRatingDTO struct {
	Value    string   `json:"value"`
	RawValue *float64 `json:"raw_value"`
	Source   string   `json:"source"`
}

type LiveRatingsResponse struct {
	AppStoreLive  LiveRatingDTO `json:"app_store_live"`
	PlayStoreLive LiveRatingDTO `json:"play_store_live"`
}
