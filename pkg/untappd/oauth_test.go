package untappd

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpclient "github.com/untappd-tools/untappd-go/pkg/http"
	"go.uber.org/zap"
)

func TestGetAuthURL(t *testing.T) {
	ft := &fakeTransport{}
	client := newTestClient(t, ft)

	authURL := client.OAuth.GetAuthURL()

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "untappd.com", parsed.Host)
	assert.Equal(t, "/oauth/authenticate/", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "cid", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "https://example.com/callback", query.Get("redirect_url"))
	assert.Empty(t, query.Get("client_secret"), "the secret never appears in a user-facing URL")

	assert.Empty(t, ft.calls, "building the URL makes no network calls")
}

func TestGetAuthURLIsIdempotent(t *testing.T) {
	client := newTestClient(t, &fakeTransport{})

	first := client.OAuth.GetAuthURL()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, client.OAuth.GetAuthURL())
	}
}

func TestGetAccessToken(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 200,
		Body:       []byte(`{"meta":{"http_code":200},"response":{"access_token":"XYZ"}}`),
	}}
	client := newTestClient(t, ft)

	token, err := client.OAuth.GetAccessToken(context.Background(), "code123")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", token)

	require.Len(t, ft.calls, 1)
	call := ft.calls[0]
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, "https://untappd.com/oauth/authorize/", call.URL)
	assert.Equal(t, "cid", call.Query.Get("client_id"))
	assert.Equal(t, "csecret", call.Query.Get("client_secret"))
	assert.Equal(t, "code", call.Query.Get("response_type"))
	assert.Equal(t, "https://example.com/callback", call.Query.Get("redirect_url"))
	assert.Equal(t, "code123", call.Query.Get("code"))
	assert.Empty(t, call.Query.Get("access_token"), "no credential enrichment on the token exchange")
}

func TestGetAccessTokenDoesNotMutateClient(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 200,
		Body:       []byte(`{"response":{"access_token":"XYZ"}}`),
	}}
	client := newTestClient(t, ft)

	_, err := client.OAuth.GetAccessToken(context.Background(), "code123")
	require.NoError(t, err)

	assert.False(t, client.Authenticated(), "applying the token is the caller's move")
	client.SetAccessToken("XYZ")
	assert.True(t, client.Authenticated())
}

func TestGetAccessTokenEmptyCode(t *testing.T) {
	ft := &fakeTransport{}
	client := newTestClient(t, ft)

	_, err := client.OAuth.GetAccessToken(context.Background(), "  ")

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "code", invalid.Arg)
	assert.Empty(t, ft.calls)
}

func TestGetAccessTokenMissingField(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 200,
		Body:       []byte(`{"meta":{"http_code":200},"response":{}}`),
	}}
	client := newTestClient(t, ft)

	_, err := client.OAuth.GetAccessToken(context.Background(), "code123")

	var oauthErr *OAuthError
	require.ErrorAs(t, err, &oauthErr)
	assert.ErrorIs(t, err, errMissingAccessToken)
}

func TestGetAccessTokenRemoteFailure(t *testing.T) {
	ft := &fakeTransport{resp: &httpclient.Response{
		StatusCode: 500,
		Body:       []byte(`{"meta":{"code":500,"error_type":"invalid_grant","error_detail":"code expired"}}`),
	}}
	client := newTestClient(t, ft)

	_, err := client.OAuth.GetAccessToken(context.Background(), "code123")

	var oauthErr *OAuthError
	require.ErrorAs(t, err, &oauthErr)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr, "the underlying API error stays reachable")
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestGetAuthURLUsesConfiguredAuthBase(t *testing.T) {
	cfg := testConfig()
	cfg.AuthBaseURL = "http://127.0.0.1:9999"
	client := newClientWithTransport(cfg, &fakeTransport{}, zap.NewNop())

	authURL := client.OAuth.GetAuthURL()
	assert.Contains(t, authURL, "http://127.0.0.1:9999/oauth/authenticate/?")
}
