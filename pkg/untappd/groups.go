package untappd

import "context"

// The endpoint groups below mirror the sections of the Untappd v4 API
// documentation. Each method forwards to Client.Call with the matching
// accessor, so the static endpoint table stays the single source of truth
// for paths, verbs, and auth requirements.

// BeerGroup covers the /beer endpoints.
type BeerGroup struct {
	c *Client
}

// Info returns extended details for a beer by BID.
func (g *BeerGroup) Info(ctx context.Context, bid string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "beer.info", bid, params)
}

// Checkins returns the public checkin feed for a beer.
func (g *BeerGroup) Checkins(ctx context.Context, bid string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "beer.checkins", bid, params)
}

// BreweryGroup covers the /brewery endpoints.
type BreweryGroup struct {
	c *Client
}

// Info returns extended details for a brewery.
func (g *BreweryGroup) Info(ctx context.Context, breweryID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "brewery.info", breweryID, params)
}

// Checkins returns the public checkin feed for a brewery.
func (g *BreweryGroup) Checkins(ctx context.Context, breweryID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "brewery.checkins", breweryID, params)
}

// CheckinGroup covers the /checkin endpoints. Everything here requires an
// access token.
type CheckinGroup struct {
	c *Client
}

// Recent returns the friends activity feed for the authenticated user.
func (g *CheckinGroup) Recent(ctx context.Context, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "checkin.recent", "", params)
}

// Add creates a checkin. The API requires gmt_offset, timezone, and bid.
func (g *CheckinGroup) Add(ctx context.Context, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "checkin.add", "", params)
}

// Toast toasts (or untoasts) a checkin.
func (g *CheckinGroup) Toast(ctx context.Context, checkinID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "checkin.toast", checkinID, params)
}

// AddComment comments on a checkin.
func (g *CheckinGroup) AddComment(ctx context.Context, checkinID, comment string, params Params) (*APIResponse, error) {
	params = params.clone()
	params["comment"] = comment
	return g.c.Call(ctx, "checkin.addcomment", checkinID, params)
}

// DeleteComment removes a comment the user owns.
func (g *CheckinGroup) DeleteComment(ctx context.Context, commentID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "checkin.deletecomment", commentID, params)
}

// FriendGroup covers the /friend endpoints. All require an access token.
type FriendGroup struct {
	c *Client
}

// Request sends a friend request to the target user.
func (g *FriendGroup) Request(ctx context.Context, targetID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "friend.request", targetID, params)
}

// Remove unfriends the target user.
func (g *FriendGroup) Remove(ctx context.Context, targetID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "friend.remove", targetID, params)
}

// Accept approves a pending friend request.
func (g *FriendGroup) Accept(ctx context.Context, targetID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "friend.accept", targetID, params)
}

// Reject declines a pending friend request.
func (g *FriendGroup) Reject(ctx context.Context, targetID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "friend.reject", targetID, params)
}

// NotificationsGroup covers the /notifications endpoint.
type NotificationsGroup struct {
	c *Client
}

// List returns unread notification counts and activity for the
// authenticated user.
func (g *NotificationsGroup) List(ctx context.Context, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "notifications", "", params)
}

// SearchGroup covers the /search endpoints.
type SearchGroup struct {
	c *Client
}

// Beer searches beers by name.
func (g *SearchGroup) Beer(ctx context.Context, query string, params Params) (*APIResponse, error) {
	params = params.clone()
	params["q"] = query
	return g.c.Call(ctx, "search.beer", "", params)
}

// Brewery searches breweries by name.
func (g *SearchGroup) Brewery(ctx context.Context, query string, params Params) (*APIResponse, error) {
	params = params.clone()
	params["q"] = query
	return g.c.Call(ctx, "search.brewery", "", params)
}

// ThePubGroup covers the /thepub endpoint.
type ThePubGroup struct {
	c *Client
}

// Local returns the public feed around a location (lat/lng params).
func (g *ThePubGroup) Local(ctx context.Context, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "thepub.local", "", params)
}

// UserGroup covers the /user endpoints. The username is optional on read
// endpoints and defaults to the authenticated user when a token is set.
type UserGroup struct {
	c *Client
}

// Info returns a user's profile.
func (g *UserGroup) Info(ctx context.Context, username string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "user.info", username, params)
}

// Checkins returns a user's checkin feed.
func (g *UserGroup) Checkins(ctx context.Context, username string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "user.checkins", username, params)
}

// Wishlist returns the beers on a user's wishlist.
func (g *UserGroup) Wishlist(ctx context.Context, username string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "user.wishlist", username, params)
}

// Friends returns a user's friend list.
func (g *UserGroup) Friends(ctx context.Context, username string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "user.friends", username, params)
}

// Badges returns the badges a user has earned.
func (g *UserGroup) Badges(ctx context.Context, username string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "user.badges", username, params)
}

// Beers returns a user's distinct beer list.
func (g *UserGroup) Beers(ctx context.Context, username string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "user.beers", username, params)
}

// Pending returns the authenticated user's pending friend requests.
func (g *UserGroup) Pending(ctx context.Context, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "user.pending", "", params)
}

// WishlistAdd puts a beer on the authenticated user's wishlist.
func (g *UserGroup) WishlistAdd(ctx context.Context, bid string, params Params) (*APIResponse, error) {
	params = params.clone()
	params["bid"] = bid
	return g.c.Call(ctx, "user.wishlist_add", "", params)
}

// WishlistDelete removes a beer from the authenticated user's wishlist.
func (g *UserGroup) WishlistDelete(ctx context.Context, bid string, params Params) (*APIResponse, error) {
	params = params.clone()
	params["bid"] = bid
	return g.c.Call(ctx, "user.wishlist_delete", "", params)
}

// VenueGroup covers the /venue endpoints.
type VenueGroup struct {
	c *Client
}

// Info returns extended details for a venue.
func (g *VenueGroup) Info(ctx context.Context, venueID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "venue.info", venueID, params)
}

// Checkins returns the public checkin feed for a venue.
func (g *VenueGroup) Checkins(ctx context.Context, venueID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "venue.checkins", venueID, params)
}

// FoursquareLookup resolves a Foursquare venue ID to an Untappd venue.
func (g *VenueGroup) FoursquareLookup(ctx context.Context, foursquareID string, params Params) (*APIResponse, error) {
	return g.c.Call(ctx, "venue.foursquare_lookup", foursquareID, params)
}
