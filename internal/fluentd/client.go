package fluentd

import (
	"time"

	"lensboard/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/wire"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewClient, NewLogRepository)

// Client 封裝 fluent forward 連線；FLUENTD__HOST 未設定時為 no-op
type Client struct {
	client    *fluent.Fluent
	tagPrefix string
}

func NewClient(logger *zap.Logger, config *config.Configuration) (*Client, func(), error) {
	if config.Fluentd.Host == "" {
		logger.Info("fluentd disabled: no host configured")
		noop := &Client{}
		return noop, func() {}, nil
	}

	prefix := "lensboard"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
	})
	if err != nil {
		return nil, nil, err
	}
	client := &Client{client: f, tagPrefix: prefix}
	return client, func() { _ = client.Close() }, nil
}

func (c *Client) Enabled() bool {
	return c.client != nil
}

func (c *Client) Post(tag string, rec map[string]any) error {
	if c.client == nil {
		return nil
	}
	return c.client.Post(tag, rec)
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
