package domain

// InsightsContext is the payload handed to the LLM: the deterministic
// advisory plus the raw trailing sessions it was derived from.
type InsightsContext struct {
	Advisory Advisory       `json:"advisory"`
	Sessions []SleepSession `json:"sessions"`
}

// LLMInsightsOutput is the strict-JSON shape the model must return.
// @Description Narrative expansion of a computed advisory.
type LLMInsightsOutput struct {
	// Short narrative summary of the advisory
	Summary string `json:"summary"`
	// Bullet observations about the trailing sleep window
	Observations []string `json:"observations"`
	// Concrete non-medical suggestions
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Advisory plus LLM-generated narrative.
type InsightsResponse struct {
	Advisory Advisory          `json:"advisory"`
	Insights LLMInsightsOutput `json:"insights"`
	// TraceID links the response to its Langfuse trace when tracing is on
	TraceID string `json:"trace_id,omitempty"`
}
