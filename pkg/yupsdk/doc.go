// Package yupsdk is a Go client for the Yup RSVP API, and the home of the
// JSON wire types the server speaks.
//
//	c := yupsdk.NewClient("https://rsvp.example.com")
//	sess, err := c.Login(ctx, "maya", "correct horse battery")
//	if err != nil { ... }
//	host := c.WithToken(sess.Token)
//	ev, err := host.CreateEvent(ctx, yupsdk.CreateEventRequest{Title: "Launch Party", ...})
//
// Failed calls return *APIError; compare with errors.Is against the
// predefined errors (ErrNotFound, ErrForbidden, ...).
package yupsdk
