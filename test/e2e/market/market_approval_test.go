package market_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	client := setupMarketContainer(t)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks["database"])
}

func TestBootstrapOnlyOnce(t *testing.T) {
	client := setupMarketContainer(t)

	_, err := client.Bootstrap(t.Context(), "wrong-token", marketsdk.BootstrapRequest{
		Email: adminEmail, Phone: "+919800000000", Name: "Admin", Password: password,
	})
	requireAPIError(t, err, http.StatusUnauthorized, marketsdk.ErrorCodeInvalidToken)

	bootstrapAdmin(t, client)

	_, err = client.Bootstrap(t.Context(), bootstrapToken, marketsdk.BootstrapRequest{
		Email: "second@harvest.test", Phone: "+919800000001", Name: "Second", Password: password,
	})
	requireAPIError(t, err, http.StatusUnauthorized, marketsdk.ErrorCodeAlreadyBootstrapped)
}

func TestRegisterPendingApproveLogin(t *testing.T) {
	client := setupMarketContainer(t)
	admin := bootstrapAdmin(t, client)

	user := registerUser(t, client, "farmer")

	// Pending accounts cannot log in.
	_, err := client.Login(t.Context(), user.Email, password)
	apiErr := requireAPIError(t, err, http.StatusForbidden, marketsdk.ErrorCodeAccountNotApproved)
	require.Equal(t, "pending", apiErr.Status)

	pending, err := admin.ListPendingUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, pending.Users, 1)
	require.Equal(t, user.ID, pending.Users[0].ID)

	change, err := admin.ApproveUser(t.Context(), user.ID)
	require.NoError(t, err)
	require.True(t, change.Success)
	require.Equal(t, "approved", change.Status)

	session, err := client.Login(t.Context(), user.Email, password)
	require.NoError(t, err)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "farmer", me.Role)
	require.Equal(t, "approved", me.Status)

	// Rejection revokes access without waiting for the token to expire.
	_, err = admin.RejectUser(t.Context(), user.ID, "duplicate account")
	require.NoError(t, err)

	_, err = session.Me(t.Context())
	apiErr = requireAPIError(t, err, http.StatusForbidden, marketsdk.ErrorCodeAccountNotApproved)
	require.Equal(t, "rejected", apiErr.Status)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	client := setupMarketContainer(t)
	admin := bootstrapAdmin(t, client)
	dealer := approvedSession(t, client, admin, "dealer")

	_, err := dealer.ListPendingUsers(t.Context())
	requireAPIError(t, err, http.StatusForbidden, marketsdk.ErrorCodeForbidden)
}

func TestDeactivatedUserIsLockedOut(t *testing.T) {
	client := setupMarketContainer(t)
	admin := bootstrapAdmin(t, client)
	expert := approvedSession(t, client, admin, "expert")

	_, err := admin.SetUserActive(t.Context(), expert.User().ID, false)
	require.NoError(t, err)

	_, err = expert.Me(t.Context())
	requireAPIError(t, err, http.StatusForbidden, marketsdk.ErrorCodeAccountDeactivated)
}
