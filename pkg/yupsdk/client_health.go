package yupsdk

import (
	"context"
	"net/http"
)

// Livez reports whether the process is up.
func (c *Client) Livez(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/livez", nil, nil, http.StatusOK)
}

// Readyz reports whether the service can reach its dependencies.
func (c *Client) Readyz(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/readyz", nil, nil, http.StatusOK)
}
