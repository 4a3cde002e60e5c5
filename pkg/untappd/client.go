// Package untappd provides a client for the Untappd v4 API.
//
// Untappd is a social check-in service for beer: users log beers, toast and
// comment on each other's checkins, keep wishlists, and browse breweries and
// venues. This package wraps the published v4 REST API behind typed endpoint
// groups and handles the OAuth2 authorization-code flow for requests made on
// behalf of a user.
//
// Every call is synchronous and performs at most one HTTP round trip.
// Application credentials (client id and secret) are attached automatically;
// once an access token is applied via SetAccessToken it supersedes them.
package untappd

import (
	httpclient "github.com/untappd-tools/untappd-go/pkg/http"
	"go.uber.org/zap"
)

// Version of this library, reported in the default User-Agent.
const Version = "1.0.0"

// DefaultUserAgent is sent when Config.UserAgent is empty. It is deliberately
// specific: Untappd throttles requests carrying stock HTTP client strings.
const DefaultUserAgent = "untappd-go/" + Version

// Client is the top-level Untappd API client. It holds the credentials and
// exposes one field per endpoint group plus the OAuth flow.
type Client struct {
	config    *Config
	requester *requester
	logger    *zap.Logger

	Beer          *BeerGroup
	Brewery       *BreweryGroup
	Checkin       *CheckinGroup
	Friend        *FriendGroup
	Notifications *NotificationsGroup
	Search        *SearchGroup
	ThePub        *ThePubGroup
	User          *UserGroup
	Venue         *VenueGroup

	OAuth *OAuth
}

// NewClient creates a new Untappd client with a default production logger.
func NewClient(cfg *Config) (*Client, error) {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, logger)
}

// NewClientWithLogger creates a new Untappd client with a custom logger.
func NewClientWithLogger(cfg *Config, logger *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientWithTransport(cfg, httpclient.NewClientWithLogger(logger), logger), nil
}

// newClientWithTransport wires the client onto an arbitrary transport. Tests
// use it to substitute a recording fake; cfg must already be validated.
func newClientWithTransport(cfg *Config, t transport, logger *zap.Logger) *Client {
	c := &Client{
		config:    cfg,
		requester: newRequester(cfg, t, logger),
		logger:    logger,
	}

	c.Beer = &BeerGroup{c: c}
	c.Brewery = &BreweryGroup{c: c}
	c.Checkin = &CheckinGroup{c: c}
	c.Friend = &FriendGroup{c: c}
	c.Notifications = &NotificationsGroup{c: c}
	c.Search = &SearchGroup{c: c}
	c.ThePub = &ThePubGroup{c: c}
	c.User = &UserGroup{c: c}
	c.Venue = &VenueGroup{c: c}

	c.OAuth = &OAuth{config: cfg, requester: c.requester, logger: logger}

	return c
}

// SetAccessToken applies an access token obtained from the OAuth flow.
// Subsequent calls authenticate as the token's user instead of the
// application. The client does no internal locking; callers sharing one
// Client across goroutines must synchronize SetAccessToken with in-flight
// calls themselves.
func (c *Client) SetAccessToken(token string) {
	c.requester.setAccessToken(token)
	c.logger.Debug("Access token updated")
}

// Authenticated reports whether an access token is currently set.
func (c *Client) Authenticated() bool {
	return c.requester.authenticated()
}
