package untappd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpclient "github.com/untappd-tools/untappd-go/pkg/http"
)

func TestCallMapsHTTP500ToRemoteAPIError(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 500,
		Body:       []byte(`{"meta":{"code":500,"error_type":"internal_error","error_detail":"something broke"}}`),
	}}
	client := newTestClient(t, ft)

	_, err := client.Call(context.Background(), "beer.info", "3839", nil)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "internal_error", apiErr.ErrorType)
	assert.Equal(t, "something broke", apiErr.Detail)
	assert.False(t, apiErr.IsInvalidAuth())
}

func TestCallFailingMetaOn2xxMapsToRemoteAPIError(t *testing.T) {
	// The API can report failure in the envelope while the HTTP layer says
	// 200; the meta code decides.
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 200,
		Body:       []byte(`{"meta":{"code":500,"error_type":"internal_error","error_detail":"something broke"}}`),
	}}
	client := newTestClient(t, ft)

	_, err := client.Call(context.Background(), "beer.info", "3839", nil)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "internal_error", apiErr.ErrorType)
	assert.Equal(t, "something broke", apiErr.Detail)
}

func TestCallMapsInvalidAuthEnvelope(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 401,
		Body:       []byte(`{"meta":{"code":401,"error_type":"invalid_auth","error_detail":"The access token is invalid."}}`),
	}}
	client := newTestClient(t, ft)
	client.SetAccessToken("stale")

	_, err := client.Call(context.Background(), "checkin.recent", "", nil)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsInvalidAuth())
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestCallMetaDuplicateCodePasses(t *testing.T) {
	// The API reports duplicate toasts and wishlist entries with meta code
	// 409 while still returning a payload.
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 500,
		Body:       []byte(`{"meta":{"code":409},"response":{"result":"already toasted"}}`),
	}}
	client := newTestClient(t, ft)
	client.SetAccessToken("tok")

	resp, err := client.Call(context.Background(), "checkin.toast", "98765", nil)

	require.NoError(t, err)
	assert.Equal(t, 409, resp.Meta.Code)

	var payload struct {
		Result string `json:"result"`
	}
	require.NoError(t, resp.Decode(&payload))
	assert.Equal(t, "already toasted", payload.Result)
}

func TestCallNonJSONBody(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 502,
		Body:       []byte("<html>Bad Gateway</html>"),
	}}
	client := newTestClient(t, ft)

	_, err := client.Call(context.Background(), "beer.info", "3839", nil)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Equal(t, "invalid_response", apiErr.ErrorType)
}

func TestCallErrorEnvelopeWithoutDetailFallsBackToBody(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 429,
		Body:       []byte(`{"meta":{"code":429}}`),
	}}
	client := newTestClient(t, ft)

	_, err := client.Call(context.Background(), "beer.info", "3839", nil)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail, `"code":429`)
}

func TestCallPropagatesTransportError(t *testing.T) {
	wrapped := &httpclient.TransportError{URL: "https://api.untappd.com/v4/beer/info/3839", Err: errors.New("dial tcp: connection refused")}
	ft := &fakeTransport{err: wrapped}
	client := newTestClient(t, ft)

	_, err := client.Call(context.Background(), "beer.info", "3839", nil)

	var transportErr *httpclient.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestCallDecodesEnvelope(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 200,
		Body: []byte(`{
			"meta":{"code":200,"response_time":{"time":0.12,"measure":"seconds"}},
			"response":{"beer":{"bid":3839,"beer_name":"60 Minute IPA"}}
		}`),
	}}
	client := newTestClient(t, ft)

	resp, err := client.Beer.Info(context.Background(), "3839", nil)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 200, resp.Meta.Code)
	require.NotNil(t, resp.Meta.ResponseTime)
	assert.Equal(t, "seconds", resp.Meta.ResponseTime.Measure)

	var payload struct {
		Beer struct {
			BID  int    `json:"bid"`
			Name string `json:"beer_name"`
		} `json:"beer"`
	}
	require.NoError(t, resp.Decode(&payload))
	assert.Equal(t, 3839, payload.Beer.BID)
	assert.Equal(t, "60 Minute IPA", payload.Beer.Name)
}
