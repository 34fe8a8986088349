/*
Package marketsdk provides a client SDK and the wire types for the Harvest
marketplace service.

# SDKClient vs Session

  - SDKClient: public operations (health, registration, login, bootstrap,
    product browsing) and the entry point for creating sessions
  - Session: operations that need a bearer token

	client := marketsdk.NewSDKClient("http://localhost:8000")

	// Register a farmer; the account starts pending
	user, err := client.Register(ctx, marketsdk.RegisterRequest{...})

	// Login fails with account_not_approved until an admin approves
	session, err := client.Login(ctx, email, password)
	var apiErr *marketsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == marketsdk.ErrorCodeAccountNotApproved {
		fmt.Println("status:", apiErr.Status)
	}

	// Admin sessions drive the approval workflow
	resp, err := adminSession.ApproveUser(ctx, user.ID)

Sessions refresh their access token shortly before it expires. Tokens are
stateless, so a session whose token has already expired must log in again.

# Types

The request types implement Validate, which returns a map of JSON field name
to message, or nil when the request is well formed. The server runs the same
validation, so calling it client side only saves a round trip.
*/
package marketsdk
