package fluentd

// AccessLog 每個請求結束後送出一筆（不含 body，credential 不落地）
type AccessLog struct {
	RequestID   string  `json:"request_id"`
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Status      int     `json:"status"`
	DurationMs  float64 `json:"duration_ms"`
	ProjectName string  `json:"project_name,omitempty"`
	IPHash      string  `json:"ip_hash,omitempty"`
	UserAgent   string  `json:"user_agent,omitempty"`
	Version     string  `json:"version,omitempty"`
	RequestTS   string  `json:"request_ts"`
	LoggedAt    string  `json:"logged_at,omitempty"`
}
