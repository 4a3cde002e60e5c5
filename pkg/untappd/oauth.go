package untappd

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// OAuth implements Untappd's OAuth2 authorization-code flow: send the user
// to GetAuthURL, receive the code on the redirect URL, then exchange it with
// GetAccessToken. Applying the token to the client is the caller's move, via
// Client.SetAccessToken.
type OAuth struct {
	config    *Config
	requester *requester
	logger    *zap.Logger
}

// GetAuthURL returns the URL a user must visit to authorize the
// application. Pure function of the configured client id and redirect URL;
// no network I/O.
func (o *OAuth) GetAuthURL() string {
	payload := url.Values{}
	payload.Set("client_id", o.config.ClientID)
	payload.Set("response_type", "code")
	payload.Set("redirect_url", o.config.RedirectURL)
	return o.config.authBaseURL() + authenticatePath + "?" + payload.Encode()
}

// GetAccessToken exchanges an authorization code for an access token. The
// token endpoint is a GET carrying the application credentials and the code;
// the token arrives nested under response.access_token. The client's state
// is not touched.
func (o *OAuth) GetAccessToken(ctx context.Context, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", &InvalidArgumentError{Arg: "code", Reason: "authorization code is required"}
	}

	payload := url.Values{}
	payload.Set("client_id", o.config.ClientID)
	payload.Set("client_secret", o.config.ClientSecret)
	payload.Set("response_type", "code")
	payload.Set("redirect_url", o.config.RedirectURL)
	payload.Set("code", code)

	tokenURL := o.config.authBaseURL() + authorizePath
	o.logger.Debug("Exchanging authorization code", zap.String("url", tokenURL))

	// The token endpoint takes the full parameter set itself, so credential
	// enrichment is off.
	resp, err := o.requester.request(ctx, http.MethodGet, tokenURL, payload, false)
	if err != nil {
		o.logger.Error("Token exchange failed", zap.Error(err))
		return "", &OAuthError{Op: "token exchange", Err: err}
	}

	var token OAuthToken
	if err := resp.Decode(&token); err != nil {
		return "", &OAuthError{Op: "token decode", Err: err}
	}
	if token.AccessToken == "" {
		return "", &OAuthError{Op: "token decode", Err: errMissingAccessToken}
	}

	o.logger.Info("Obtained access token")
	return token.AccessToken, nil
}
