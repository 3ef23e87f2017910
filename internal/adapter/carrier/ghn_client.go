package carrier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const detailPath = "/shiip/public-api/v2/shipping-order/detail"

// ghnEnvelope is the wrapper GHN puts around every response body.
type ghnEnvelope struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    *ghnDetail `json:"data"`
}

type ghnDetail struct {
	OrderCode   string    `json:"order_code"`
	Status      string    `json:"status"`
	TotalFee    *int64    `json:"total_fee"`
	UpdatedDate time.Time `json:"updated_date"`
}

// GHNClient polls parcel status from the GHN public API.
type GHNClient struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewGHNClient builds a client for cfg.BaseURL authenticated with the shop's token.
func NewGHNClient(cfg config.CarrierConfig, log zerolog.Logger) *GHNClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Token", cfg.Token).
		SetHeader("ShopId", cfg.ShopID).
		SetHeader("Content-Type", "application/json")

	return &GHNClient{
		http: client,
		log:  log.With().Str("component", "ghn").Logger(),
	}
}

// GetParcelStatus returns the current status of one carrier order.
// Transport failures and non-200 answers are ExternalServiceFailure.
func (c *GHNClient) GetParcelStatus(ctx context.Context, orderCode string) (*domain.CarrierUpdate, error) {
	var env ghnEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"order_code": orderCode}).
		SetResult(&env).
		SetError(&env).
		Post(detailPath)
	if err != nil {
		return nil, apperror.ErrExternalService("ghn", fmt.Errorf("order detail %s: %w", orderCode, err))
	}

	switch {
	case resp.StatusCode() != http.StatusOK:
		return nil, apperror.ErrExternalService("ghn",
			fmt.Errorf("order detail %s: status %d: %s", orderCode, resp.StatusCode(), env.Message))
	case env.Code != http.StatusOK || env.Data == nil:
		return nil, apperror.ErrExternalService("ghn",
			fmt.Errorf("order detail %s: code %d: %s", orderCode, env.Code, env.Message))
	}

	update := &domain.CarrierUpdate{
		OrderCode:  env.Data.OrderCode,
		RawStatus:  env.Data.Status,
		TotalFee:   env.Data.TotalFee,
		ObservedAt: env.Data.UpdatedDate.UTC(),
	}
	if update.OrderCode == "" {
		update.OrderCode = orderCode
	}

	c.log.Debug().
		Str("carrier_code", orderCode).
		Str("raw_status", update.RawStatus).
		Dur("latency", resp.Time()).
		Msg("parcel status polled")
	return update, nil
}

var _ ports.CarrierClient = (*GHNClient)(nil)
