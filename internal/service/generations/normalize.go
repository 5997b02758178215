package generations

import (
	"encoding/json"
	"fmt"

	"lensboard/internal/dto"
)

const maxContentLen = 1000

type message struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// Normalize 把一筆原始觀測轉為 TraceSummary。
// 解碼失敗回傳錯誤，由呼叫端跳過該筆；缺漏欄位一律補零值。
func Normalize(raw json.RawMessage, index int) (dto.TraceSummary, error) {
	var obs Observation
	if err := json.Unmarshal(raw, &obs); err != nil {
		return dto.TraceSummary{}, err
	}

	model := obs.Model
	if model == "" {
		model = "unknown"
	}

	return dto.TraceSummary{
		ID:                shortID(obs.ID, index),
		TraceID:           obs.TraceID,
		Time:              obs.StartTime,
		Model:             model,
		LatencyMs:         obs.Latency,
		TimeToFirstTokenS: obs.TimeToFirstToken,
		InputTokens:       obs.UsageDetails.Input,
		OutputTokens:      obs.UsageDetails.Output,
		TotalTokens:       obs.UsageDetails.Total,
		InputContent:      truncate(firstUserContent(obs.Input), maxContentLen),
		OutputContent:     truncate(contentString(obs.Output), maxContentLen),
	}, nil
}

// shortID 取 id 的最後 8 碼；id 缺漏時以序號代替
func shortID(id string, index int) string {
	if id == "" {
		id = fmt.Sprintf("obs_%d", index)
	}
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

// firstUserContent 依序掃描 input 訊息，取第一則 role 為 user 的內容。
// input 不是訊息陣列、或找不到 user 訊息時回傳空字串。
func firstUserContent(input json.RawMessage) string {
	if len(input) == 0 {
		return ""
	}
	var messages []message
	if err := json.Unmarshal(input, &messages); err != nil {
		return ""
	}
	for _, m := range messages {
		if m.Role == "user" {
			return contentString(m.Content)
		}
	}
	return ""
}

// contentString 內容可能是字串，也可能是多模態結構；非字串保留緊湊 JSON
func contentString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// truncate 以 rune 為單位截斷，避免切壞多位元組字元
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
