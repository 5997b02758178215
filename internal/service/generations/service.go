package generations

import (
	"context"
	"encoding/json"

	"lensboard/internal/dto"
)

type Service interface {
	// ListGenerations 回傳至多 limit 筆標準化後的觀測摘要。
	// 合約是 total 的：所有失敗（設定缺漏、網路、非 200、格式錯誤、空結果）
	// 都轉成 *error.Error，不會 panic 出邊界。
	ListGenerations(ctx context.Context, limit int) ([]dto.TraceSummary, error)
}

// Observation Langfuse 的原始觀測紀錄；input/output 型別不固定，先保留原文
type Observation struct {
	ID               string          `json:"id"`
	TraceID          string          `json:"traceId"`
	StartTime        string          `json:"startTime"`
	Model            string          `json:"model"`
	Latency          float64         `json:"latency"`
	TimeToFirstToken float64         `json:"timeToFirstToken"`
	UsageDetails     UsageDetails    `json:"usageDetails"`
	Input            json.RawMessage `json:"input"`
	Output           json.RawMessage `json:"output"`
}

type UsageDetails struct {
	Input  int64 `json:"input"`
	Output int64 `json:"output"`
	Total  int64 `json:"total"`
}

type observationPage struct {
	Data []json.RawMessage `json:"data"`
}
