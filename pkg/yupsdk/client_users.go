package yupsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/v1/users", req, &u, http.StatusCreated); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges a username and password for a session token. Use
// WithToken to make authenticated calls with it.
func (c *Client) Login(ctx context.Context, username, password string) (*SessionResponse, error) {
	var s SessionResponse
	req := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", req, &s, http.StatusOK); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/v1/sessions", nil, nil, http.StatusNoContent)
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/v1/users/me", nil, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPatch, "/v1/users/me", req, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// MyEvents lists the events the caller hosts.
func (c *Client) MyEvents(ctx context.Context) ([]Event, error) {
	var l EventList
	if err := c.do(ctx, http.MethodGet, "/v1/users/me/events", nil, &l, http.StatusOK); err != nil {
		return nil, err
	}
	return l.Events, nil
}

func (c *Client) Branding(ctx context.Context) (*Branding, error) {
	var b Branding
	if err := c.do(ctx, http.MethodGet, "/v1/users/me/branding", nil, &b, http.StatusOK); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBranding(ctx context.Context, req Branding) (*Branding, error) {
	var b Branding
	if err := c.do(ctx, http.MethodPut, "/v1/users/me/branding", req, &b, http.StatusOK); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) SetSMSOptIn(ctx context.Context, optIn bool) (*User, error) {
	var u User
	req := SMSPreferenceRequest{OptIn: optIn}
	if err := c.do(ctx, http.MethodPut, "/v1/users/me/sms", req, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) StartPhoneVerification(ctx context.Context, phone string) error {
	req := PhoneVerificationRequest{Phone: phone}
	return c.do(ctx, http.MethodPost, "/v1/users/me/phone/verification", req, nil, http.StatusAccepted)
}

func (c *Client) ConfirmPhoneVerification(ctx context.Context, code string) (*User, error) {
	var u User
	req := PhoneConfirmRequest{Code: code}
	if err := c.do(ctx, http.MethodPost, "/v1/users/me/phone/verification/confirm", req, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminListUsers needs an admin session.
func (c *Client) AdminListUsers(ctx context.Context, limit, offset int) (*UserList, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := "/v1/admin/users"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var l UserList
	if err := c.do(ctx, http.MethodGet, path, nil, &l, http.StatusOK); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) AdminSetFlags(ctx context.Context, userID string, flags UserFlags) (*User, error) {
	var u User
	path := "/v1/admin/users/" + url.PathEscape(userID) + "/flags"
	if err := c.do(ctx, http.MethodPut, path, flags, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}
