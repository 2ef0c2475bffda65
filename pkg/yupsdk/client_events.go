package yupsdk

import (
	"context"
	"net/http"
	"net/url"
)

func eventPath(slug string) string {
	return "/v1/events/" + url.PathEscape(slug)
}

func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	var e Event
	if err := c.do(ctx, http.MethodPost, "/v1/events", req, &e, http.StatusCreated); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEvents returns upcoming public events.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var l EventList
	if err := c.do(ctx, http.MethodGet, "/v1/events", nil, &l, http.StatusOK); err != nil {
		return nil, err
	}
	return l.Events, nil
}

// GetEvent fetches an event. inviteToken unlocks private events and may be
// empty.
func (c *Client) GetEvent(ctx context.Context, slug, inviteToken string) (*Event, error) {
	path := eventPath(slug)
	if inviteToken != "" {
		path += "?invite=" + url.QueryEscape(inviteToken)
	}
	var e Event
	if err := c.do(ctx, http.MethodGet, path, nil, &e, http.StatusOK); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) UpdateEvent(ctx context.Context, slug string, req UpdateEventRequest) (*Event, error) {
	var e Event
	if err := c.do(ctx, http.MethodPatch, eventPath(slug), req, &e, http.StatusOK); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) DeleteEvent(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, eventPath(slug), nil, nil, http.StatusNoContent)
}

// SubmitResponse RSVPs to an event. Submitting again replaces the earlier
// answer.
func (c *Client) SubmitResponse(ctx context.Context, slug string, req SubmitResponseRequest) (*Response, error) {
	var r Response
	if err := c.do(ctx, http.MethodPost, eventPath(slug)+"/responses", req, &r, http.StatusOK); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) ListResponses(ctx context.Context, slug string) (*ResponseList, error) {
	var l ResponseList
	if err := c.do(ctx, http.MethodGet, eventPath(slug)+"/responses", nil, &l, http.StatusOK); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) MyResponse(ctx context.Context, slug string) (*Response, error) {
	var r Response
	if err := c.do(ctx, http.MethodGet, eventPath(slug)+"/responses/me", nil, &r, http.StatusOK); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CreateInvitation(ctx context.Context, slug string, req CreateInvitationRequest) (*InvitationCreated, error) {
	var out InvitationCreated
	if err := c.do(ctx, http.MethodPost, eventPath(slug)+"/invitations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListInvitations(ctx context.Context, slug string) ([]Invitation, error) {
	var l InvitationList
	if err := c.do(ctx, http.MethodGet, eventPath(slug)+"/invitations", nil, &l, http.StatusOK); err != nil {
		return nil, err
	}
	return l.Invitations, nil
}

// ResendInvitation retries a pending or failed invitation. The returned
// token replaces the old one.
func (c *Client) ResendInvitation(ctx context.Context, slug, invitationID string) (*InvitationCreated, error) {
	var out InvitationCreated
	path := eventPath(slug) + "/invitations/" + url.PathEscape(invitationID) + "/resend"
	if err := c.do(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ViewInvitation(ctx context.Context, token string) (*InvitationView, error) {
	var v InvitationView
	path := "/v1/invitations/" + url.PathEscape(token) + "/view"
	if err := c.do(ctx, http.MethodPost, path, nil, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}
