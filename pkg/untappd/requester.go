package untappd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	httpclient "github.com/untappd-tools/untappd-go/pkg/http"
	"go.uber.org/zap"
)

// transport is the slice of httpclient.Client the requester needs. Tests
// substitute a recording fake.
type transport interface {
	Do(opts httpclient.RequestOptions) (*httpclient.Response, error)
}

// requester attaches credentials to outgoing requests and decodes the
// Untappd response envelope. The access token supersedes the application
// credentials once set.
type requester struct {
	clientID     string
	clientSecret string
	accessToken  string
	userAgent    string
	transport    transport
	logger       *zap.Logger
}

func newRequester(cfg *Config, t transport, logger *zap.Logger) *requester {
	return &requester{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		accessToken:  cfg.AccessToken,
		userAgent:    cfg.userAgent(),
		transport:    t,
		logger:       logger,
	}
}

func (r *requester) setAccessToken(token string) {
	r.accessToken = token
}

func (r *requester) authenticated() bool {
	return r.accessToken != ""
}

// enrich adds the current credentials to the outgoing parameter set: the
// access token alone when present, the application keypair otherwise.
func (r *requester) enrich(params url.Values) {
	if r.authenticated() {
		params.Set("access_token", r.accessToken)
		return
	}
	params.Set("client_id", r.clientID)
	params.Set("client_secret", r.clientSecret)
}

// request performs one HTTP round trip against rawURL. Parameters travel in
// the query for GET and in the form body for POST, matching what the API
// expects. enrichCreds is off only for the OAuth token exchange, which
// carries its own parameter set.
func (r *requester) request(ctx context.Context, method, rawURL string, params url.Values, enrichCreds bool) (*APIResponse, error) {
	if params == nil {
		params = url.Values{}
	}
	if enrichCreds {
		r.enrich(params)
	}

	opts := httpclient.RequestOptions{
		Method:  method,
		URL:     rawURL,
		Context: ctx,
		Headers: map[string]string{
			"User-Agent": r.userAgent,
		},
	}
	if method == http.MethodPost {
		opts.Form = params
	} else {
		opts.Query = params
	}

	resp, err := r.transport.Do(opts)
	if err != nil {
		r.logger.Error("Request failed",
			zap.Error(err),
			zap.String("method", method),
			zap.String("url", rawURL))
		return nil, err
	}

	return r.checkResponse(resp, method, rawURL)
}

// checkResponse decodes the envelope and maps failures to *RemoteAPIError.
// The meta code decides first: 200 and 409 pass regardless of HTTP status
// (the API uses 409 for duplicate toasts and wishlist entries, which the
// caller still gets the payload for), and a failing meta code fails the call
// even when the HTTP status is 2xx. A 2xx response without a meta code is
// success; the token endpoint reports http_code instead.
func (r *requester) checkResponse(resp *httpclient.Response, method, rawURL string) (*APIResponse, error) {
	apiResp := &APIResponse{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(resp.Body, apiResp); err != nil {
		r.logger.Error("Failed to decode response",
			zap.Error(err),
			zap.Int("status_code", resp.StatusCode),
			zap.String("url", rawURL))
		return nil, &RemoteAPIError{
			StatusCode: resp.StatusCode,
			ErrorType:  "invalid_response",
			Detail:     "response body is not valid JSON",
		}
	}

	switch apiResp.Meta.Code {
	case 200, 409:
		return apiResp, nil
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && apiResp.Meta.Code == 0 {
		return apiResp, nil
	}

	// On a 2xx status the meta code is the informative one.
	statusCode := resp.StatusCode
	if statusCode >= 200 && statusCode < 300 && apiResp.Meta.Code != 0 {
		statusCode = apiResp.Meta.Code
	}

	detail := apiResp.Meta.ErrorDetail
	if detail == "" {
		detail = strings.TrimSpace(string(resp.Body))
	}
	apiErr := &RemoteAPIError{
		StatusCode: statusCode,
		ErrorType:  apiResp.Meta.ErrorType,
		Detail:     detail,
	}
	r.logger.Error("Untappd returned an error",
		zap.Int("status_code", apiErr.StatusCode),
		zap.String("error_type", apiErr.ErrorType),
		zap.String("error_detail", apiErr.Detail),
		zap.String("method", method),
		zap.String("url", rawURL))
	return nil, apiErr
}
