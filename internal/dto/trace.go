package dto

// TraceSummary UI 用的觀測摘要；數值欄位缺值一律補 0，文字欄位補空字串
type TraceSummary struct {
	ID                string  `json:"id"`
	TraceID           string  `json:"traceId"`
	Time              string  `json:"time"`
	Model             string  `json:"model"`
	LatencyMs         float64 `json:"latency_ms"`
	TimeToFirstTokenS float64 `json:"time_to_first_token_s"`
	InputTokens       int64   `json:"input_tokens"`
	OutputTokens      int64   `json:"output_tokens"`
	TotalTokens       int64   `json:"total_tokens"`
	InputContent      string  `json:"input_content"`
	OutputContent     string  `json:"output_content"`
}
