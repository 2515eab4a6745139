package winword

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cargoview/opsdash/internal/config"
	"github.com/cargoview/opsdash/internal/domain"
	"github.com/cargoview/opsdash/pkg/errors"
)

type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the tracking provider's filter API
func NewClient(cfg config.WinwordConfig, logger *zap.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		baseURL:  baseURL,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FilterShipments asks the provider for a server-filtered collection.
// Array parameters are serialized as repeated keys (fields=a&fields=b),
// which is what the provider's filter endpoint expects.
func (c *Client) FilterShipments(ctx context.Context, req FilterRequest, customerCodes []string) ([]domain.TrackedShipment, error) {
	params := url.Values{}
	for _, field := range req.Fields {
		params.Add("fields", field)
	}
	for _, value := range req.Values {
		params.Add("values", value)
	}
	for _, code := range customerCodes {
		params.Add("customerCodes", code)
	}

	endpoint := fmt.Sprintf("%s/winword/filter?%s", c.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Provider filter request failed", zap.Error(err))
		return nil, &errors.ErrProviderUnavailable{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Provider filter request rejected",
			zap.Int("status", resp.StatusCode),
			zap.Strings("fields", req.Fields),
		)
		return nil, &errors.ErrProviderUnavailable{Status: resp.StatusCode, Message: string(body)}
	}

	var envelope domain.TrackedShipmentsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return envelope.Data.TrackedShipments.Data, nil
}
