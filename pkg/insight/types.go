package insight

// Intent values produced by the query classifier
const (
	IntentStructured = "structured"
	IntentSemantic   = "semantic"
	IntentHybrid     = "hybrid"
)

// QueryAnalysis is the classifier's judgment of one query. It lives for a
// single request and feeds the relevance filter and the synthesizer.
//
// StructuredFilters is advisory context for synthesis only: retrieval always
// runs an unconstrained nearest-neighbor search, and nothing downstream may
// apply these as database predicates.
type QueryAnalysis struct {
	Intent            string                 `json:"intent"`
	StructuredFilters map[string]interface{} `json:"structuredFilters"`
	SemanticQuery     string                 `json:"semanticQuery"`
	Reasoning         string                 `json:"reasoning"`
}
