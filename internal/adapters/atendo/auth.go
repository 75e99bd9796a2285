package atendo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/atendo-hq/console-api/internal/errors"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/ports"
)

// tokenResponse is the wire shape of login and refresh responses.
// expires_in_seconds arrives as a string from the upstream despite being
// numeric, so it is parsed leniently.
type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    lenientSecs `json:"expires_in_seconds"`
	OrgID        string      `json:"org_id"`
	UserID       string      `json:"user_id"`
}

// lenientSecs decodes a seconds count sent as either a JSON number or a
// numeric string.
type lenientSecs int64

func (s *lenientSecs) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Try a quoted numeric string.
		var str string
		if serr := json.Unmarshal(data, &str); serr != nil {
			return err
		}
		n = json.Number(str)
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return err
	}
	*s = lenientSecs(v)
	return nil
}

func (r tokenResponse) grant() (domainauth.TokenGrant, error) {
	if r.AccessToken == "" || r.ExpiresIn <= 0 {
		return domainauth.TokenGrant{}, apperrors.Upstream("token response missing access token or expiry")
	}
	return domainauth.TokenGrant{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    int64(r.ExpiresIn),
		OrgID:        r.OrgID,
		UserID:       r.UserID,
	}, nil
}

// Register creates a directory user.
// POST /user/auth/register.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (ports.RegisteredUser, error) {
	var created ports.RegisteredUser
	err := c.do(ctx, requestParams{
		method: http.MethodPost,
		path:   "/user/auth/register",
		body:   in,
	}, &created)
	if err != nil {
		return ports.RegisteredUser{}, err
	}
	return created, nil
}

// Login exchanges credentials for a token grant.
// POST /user/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (domainauth.TokenGrant, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := c.do(ctx, requestParams{
		method: http.MethodPost,
		path:   "/user/auth/login",
		body:   payload,
	}, &resp); err != nil {
		return domainauth.TokenGrant{}, err
	}
	return resp.grant()
}

// RefreshToken exchanges a refresh token for a fresh grant.
// POST /user/auth/refresh-token?refreshToken=...
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (domainauth.TokenGrant, error) {
	query := url.Values{"refreshToken": {refreshToken}}

	var resp tokenResponse
	if err := c.do(ctx, requestParams{
		method: http.MethodPost,
		path:   "/user/auth/refresh-token",
		query:  query,
	}, &resp); err != nil {
		return domainauth.TokenGrant{}, err
	}
	return resp.grant()
}
