package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// UnknownLocation is the fallback when the lookup cannot be completed.
// Resolution failures must never fail the parent request.
const UnknownLocation = "Unknown"

const defaultBaseURL = "http://ip-api.com/json"

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	Resolve(ctx context.Context, ip string) string
}

type ipAPIResolver struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

type ipAPIResponse struct {
	Status     string `json:"status"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Country    string `json:"country"`
}

func NewIPAPIResolver(logger ...*zap.Logger) Resolver {
	l := zap.L().Named("geoip.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("geoip.resolver")
	}
	return &ipAPIResolver{
		client:  &http.Client{Timeout: 2 * time.Second},
		baseURL: defaultBaseURL,
		logger:  l,
	}
}

// NewIPAPIResolverWithBaseURL is used by tests to point at a stub server.
func NewIPAPIResolverWithBaseURL(baseURL string, logger *zap.Logger) Resolver {
	l := logger
	if l == nil {
		l = zap.NewNop()
	}
	return &ipAPIResolver{
		client:  &http.Client{Timeout: 2 * time.Second},
		baseURL: baseURL,
		logger:  l.Named("geoip.resolver"),
	}
}

func (r *ipAPIResolver) Resolve(ctx context.Context, ip string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+ip, nil)
	if err != nil {
		return UnknownLocation
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("ip lookup failed", zap.String("ip", ip), zap.Error(err))
		return UnknownLocation
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("ip lookup non-success status", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return UnknownLocation
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		r.logger.Warn("ip lookup malformed response", zap.String("ip", ip), zap.Error(err))
		return UnknownLocation
	}

	if body.Status != "success" {
		return UnknownLocation
	}

	return fmt.Sprintf("%s, %s, %s", body.City, body.RegionName, body.Country)
}
