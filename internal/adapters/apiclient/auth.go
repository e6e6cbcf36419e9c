package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/ports"
)

var _ ports.AuthProvider = (*Auth)(nil)

// Login response fields vary between API versions; each is located with a
// JMESPath expression that tries the nested form first.
var identityExprs = struct {
	token, userID, name, email, userType string
}{
	token:    "token || access || access_token",
	userID:   "user._id || user.id || user_id || _id",
	name:     "user.name || name || user.username",
	email:    "user.email || email",
	userType: "user.user_type || user_type || user.role || role",
}

// Auth exchanges credentials with the API login endpoint.
type Auth struct {
	c *Client
}

// Auth returns the login surface of c.
func (c *Client) Auth() *Auth { return &Auth{c: c} }

// Login posts credentials and returns the identity the API issued a token for.
func (a *Auth) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Identity, error) {
	req, err := jsonCall(http.MethodPost, a.c.endpoint(nil, "api", "users", "login"), "login", map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	})
	if err != nil {
		return domainauth.Identity{}, err
	}
	payload, err := a.c.do(ctx, domainauth.Session{}, req)
	if err != nil {
		return domainauth.Identity{}, err
	}
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "login: decode response")
	}
	id := domainauth.Identity{
		Token:    searchString(identityExprs.token, doc),
		UserID:   searchString(identityExprs.userID, doc),
		Name:     searchString(identityExprs.name, doc),
		Email:    searchString(identityExprs.email, doc),
		UserType: searchString(identityExprs.userType, doc),
	}
	if id.Token == "" {
		return domainauth.Identity{}, apperrors.Unauthorized("login: response carried no token")
	}
	if id.Email == "" {
		id.Email = creds.Email
	}
	return id, nil
}

func searchString(expr string, doc any) string {
	v, err := jmespath.Search(expr, doc)
	if err != nil {
		return ""
	}
	return stringify(v)
}
