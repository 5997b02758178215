package cron

import (
	"context"
	"net/http"
	"time"

	"lensboard/config"
	"lensboard/internal/telemetry"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger     *zap.Logger
	conf       *config.Configuration
	metric     *telemetry.Metric
	httpClient *http.Client
	server     *cron.Cron
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	conf *config.Configuration,
	metric *telemetry.Metric,
	httpClient *http.Client,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:     logger,
		conf:       conf,
		metric:     metric,
		httpClient: httpClient,
		server:     server,
	}
}

func (c *Cron) Run() error {
	if c.conf.Langfuse.Configured() {
		// 每分鐘探測一次上游可達性，結果反映到 langfuse_up gauge
		if _, err := c.server.AddFunc("0 * * * * *", c.probeLangfuse); err != nil {
			return err
		}
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) probeLangfuse() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.conf.Langfuse.Host+"/api/public/health", nil)
	if err != nil {
		c.setUpstreamUp(false)
		return
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("langfuse 健康檢查失敗", zap.Error(err))
		c.setUpstreamUp(false)
		return
	}
	defer resp.Body.Close()

	up := resp.StatusCode == http.StatusOK
	if !up {
		c.logger.Warn("langfuse 健康檢查回應異常", zap.Int("status", resp.StatusCode))
	}
	c.setUpstreamUp(up)
}

func (c *Cron) setUpstreamUp(up bool) {
	if c.metric == nil || c.metric.UpstreamUp == nil {
		return
	}
	if up {
		c.metric.UpstreamUp.Set(1)
	} else {
		c.metric.UpstreamUp.Set(0)
	}
}
