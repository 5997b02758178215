package fluentd

import (
	"encoding/json"
	"time"

	"lensboard/config"
)

const tagAccess = "dashboard.access"

// LogRepository 統一負責發送 access log 到 Fluentd
type LogRepository struct {
	client  *Client
	version string
}

func NewLogRepository(config *config.Configuration, client *Client) *LogRepository {
	return &LogRepository{client: client, version: config.App.Version}
}

func (repository *LogRepository) LogAccess(rec AccessLog) error {
	if !repository.client.Enabled() {
		return nil
	}
	if rec.LoggedAt == "" {
		rec.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if rec.Version == "" {
		rec.Version = repository.version
	}
	b, _ := json.Marshal(rec)
	var message map[string]any
	_ = json.Unmarshal(b, &message)
	return repository.client.Post(tagAccess, message)
}
