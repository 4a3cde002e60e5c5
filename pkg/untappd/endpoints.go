package untappd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	httpclient "github.com/untappd-tools/untappd-go/pkg/http"
	"go.uber.org/zap"
)

type argPolicy int

const (
	// argNone rejects a positional argument.
	argNone argPolicy = iota
	// argOptional appends the argument to the path when given.
	argOptional
	// argRequired fails the call without one.
	argRequired
)

// endpoint describes one Untappd API operation. The table below is
// transcribed from the published v4 documentation; path components are
// spelled out per endpoint rather than derived from the accessor, because
// the API's own naming is irregular (wishlist_add maps to wishlist/add while
// foursquare_lookup is a single segment).
type endpoint struct {
	path           string
	method         string
	auth           bool
	arg            argPolicy
	requiredParams []string
}

var endpointTable = map[string]endpoint{
	"beer.info":     {path: "beer/info", method: http.MethodGet, arg: argRequired},
	"beer.checkins": {path: "beer/checkins", method: http.MethodGet, arg: argRequired},

	"brewery.info":     {path: "brewery/info", method: http.MethodGet, arg: argRequired},
	"brewery.checkins": {path: "brewery/checkins", method: http.MethodGet, arg: argRequired},

	"venue.info":              {path: "venue/info", method: http.MethodGet, arg: argRequired},
	"venue.checkins":          {path: "venue/checkins", method: http.MethodGet, arg: argRequired},
	"venue.foursquare_lookup": {path: "venue/foursquare_lookup", method: http.MethodGet, arg: argRequired},

	"search.beer":    {path: "search/beer", method: http.MethodGet, requiredParams: []string{"q"}},
	"search.brewery": {path: "search/brewery", method: http.MethodGet, requiredParams: []string{"q"}},

	"thepub.local": {path: "thepub/local", method: http.MethodGet},

	"checkin.recent":        {path: "checkin/recent", method: http.MethodGet, auth: true},
	"checkin.add":           {path: "checkin/add", method: http.MethodPost, auth: true, requiredParams: []string{"gmt_offset", "timezone", "bid"}},
	"checkin.toast":         {path: "checkin/toast", method: http.MethodPost, auth: true, arg: argRequired},
	"checkin.addcomment":    {path: "checkin/addcomment", method: http.MethodPost, auth: true, arg: argRequired, requiredParams: []string{"comment"}},
	"checkin.deletecomment": {path: "checkin/deletecomment", method: http.MethodPost, auth: true, arg: argRequired},

	"user.info":            {path: "user/info", method: http.MethodGet, arg: argOptional},
	"user.checkins":        {path: "user/checkins", method: http.MethodGet, arg: argOptional},
	"user.wishlist":        {path: "user/wishlist", method: http.MethodGet, arg: argOptional},
	"user.friends":         {path: "user/friends", method: http.MethodGet, arg: argOptional},
	"user.badges":          {path: "user/badges", method: http.MethodGet, arg: argOptional},
	"user.beers":           {path: "user/beers", method: http.MethodGet, arg: argOptional},
	"user.pending":         {path: "user/pending", method: http.MethodGet, auth: true},
	"user.wishlist_add":    {path: "user/wishlist/add", method: http.MethodGet, auth: true, requiredParams: []string{"bid"}},
	"user.wishlist_delete": {path: "user/wishlist/delete", method: http.MethodGet, auth: true, requiredParams: []string{"bid"}},

	"notifications": {path: "notifications", method: http.MethodGet, auth: true},

	"friend.request": {path: "friend/request", method: http.MethodGet, auth: true, arg: argRequired},
	"friend.remove":  {path: "friend/remove", method: http.MethodGet, auth: true, arg: argRequired},
	"friend.accept":  {path: "friend/accept", method: http.MethodGet, auth: true, arg: argRequired},
	"friend.reject":  {path: "friend/reject", method: http.MethodGet, auth: true, arg: argRequired},
}

// canonicalAccessor normalizes an accessor to the table's group.action form.
// The first separator (dot or underscore) splits group from action;
// underscores inside the action stay literal.
func canonicalAccessor(accessor string) string {
	if strings.ContainsRune(accessor, '.') {
		return accessor
	}
	if i := strings.IndexByte(accessor, '_'); i >= 0 {
		return accessor[:i] + "." + accessor[i+1:]
	}
	return accessor
}

// Call invokes the endpoint named by accessor ("beer.info" or "beer_info")
// with an optional positional argument appended to the URL path and params
// as query parameters. Argument and authentication requirements are checked
// against the endpoint table before any HTTP request is made.
func (c *Client) Call(ctx context.Context, accessor, arg string, params Params) (*APIResponse, error) {
	key := canonicalAccessor(accessor)
	ep, ok := endpointTable[key]
	if !ok {
		return nil, &EndpointNotFoundError{Accessor: accessor}
	}

	switch ep.arg {
	case argRequired:
		if arg == "" {
			return nil, &InvalidArgumentError{Arg: "arg", Reason: fmt.Sprintf("endpoint %s requires a positional argument", key)}
		}
	case argNone:
		if arg != "" {
			return nil, &InvalidArgumentError{Arg: "arg", Reason: fmt.Sprintf("endpoint %s takes no positional argument", key)}
		}
	}

	values := params.encode()
	for _, required := range ep.requiredParams {
		if values.Get(required) == "" {
			return nil, &InvalidArgumentError{Arg: required, Reason: fmt.Sprintf("endpoint %s requires parameter %q", key, required)}
		}
	}

	if ep.auth && !c.requester.authenticated() {
		return nil, fmt.Errorf("endpoint %s: %w", key, ErrAuthenticationRequired)
	}

	path := ep.path
	if arg != "" {
		path += "/" + url.PathEscape(arg)
	}

	endpointURL, err := httpclient.BuildURL(c.config.apiBaseURL(), path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	c.logger.Debug("Calling endpoint",
		zap.String("accessor", key),
		zap.String("method", ep.method),
		zap.String("url", endpointURL))

	return c.requester.request(ctx, ep.method, endpointURL, values, true)
}
