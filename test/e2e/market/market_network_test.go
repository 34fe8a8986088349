package market_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/stretchr/testify/require"
)

func TestProfilesAndRatings(t *testing.T) {
	client := setupMarketContainer(t)
	admin := bootstrapAdmin(t, client)
	farmer := approvedSession(t, client, admin, "farmer")
	expert := approvedSession(t, client, admin, "expert")
	dealer := approvedSession(t, client, admin, "dealer")

	_, err := farmer.MyFarmerProfile(t.Context())
	requireAPIError(t, err, http.StatusNotFound, marketsdk.ErrorCodeNotFound)

	_, err = farmer.CreateFarmerProfile(t.Context(), marketsdk.FarmerProfileRequest{
		FarmSize:        12.5,
		CropTypes:       []string{"wheat", "rice"},
		ExperienceYears: 8,
		Location:        "Ludhiana",
	})
	require.NoError(t, err)

	_, err = expert.CreateExpertProfile(t.Context(), marketsdk.ExpertProfileRequest{
		Specialization:  "Soil health",
		Qualification:   "MSc Agronomy",
		ExperienceYears: 10,
		ConsultationFee: 500,
	})
	require.NoError(t, err)

	_, err = dealer.CreateDealerProfile(t.Context(), marketsdk.DealerProfileRequest{
		CompanyName:     "Agri Supplies",
		BusinessType:    "retail",
		ProductsOffered: []string{"seeds"},
		Location:        "Pune",
	})
	require.NoError(t, err)

	dealerProfile, err := dealer.MyDealerProfile(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Agri Supplies", dealerProfile.CompanyName)

	farmerID := farmer.User().ID

	_, err = expert.RateFarmer(t.Context(), farmerID, marketsdk.RatingRequest{Rating: 4})
	require.NoError(t, err)
	_, err = dealer.RateFarmer(t.Context(), farmerID, marketsdk.RatingRequest{Rating: 2, Comment: "late pickup"})
	require.NoError(t, err)

	_, err = expert.RateFarmer(t.Context(), farmerID, marketsdk.RatingRequest{Rating: 5})
	requireAPIError(t, err, http.StatusConflict, marketsdk.ErrorCodeConflict)

	ratings, err := farmer.ListFarmerRatings(t.Context(), farmerID, 1, 10)
	require.NoError(t, err)
	require.Len(t, ratings.Items, 2)

	profile, err := farmer.MyFarmerProfile(t.Context())
	require.NoError(t, err)
	require.InDelta(t, 3.0, profile.Rating, 1e-9)
}

func TestAppointmentLifecycle(t *testing.T) {
	client := setupMarketContainer(t)
	admin := bootstrapAdmin(t, client)
	farmer := approvedSession(t, client, admin, "farmer")
	expert := approvedSession(t, client, admin, "expert")

	_, err := expert.CreateExpertProfile(t.Context(), marketsdk.ExpertProfileRequest{
		Specialization:  "Pest control",
		Qualification:   "PhD Entomology",
		ExperienceYears: 15,
		ConsultationFee: 800,
	})
	require.NoError(t, err)

	appt, err := farmer.BookAppointment(t.Context(), marketsdk.AppointmentRequest{
		ExpertID:      expert.User().ID,
		ServiceType:   "field visit",
		PreferredDate: time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", appt.Status)

	_, err = farmer.UpdateAppointmentStatus(t.Context(), appt.ID, "confirmed")
	requireAPIError(t, err, http.StatusForbidden, marketsdk.ErrorCodeForbidden)

	for _, status := range []string{"confirmed", "completed"} {
		appt, err = expert.UpdateAppointmentStatus(t.Context(), appt.ID, status)
		require.NoError(t, err)
		require.Equal(t, status, appt.Status)
	}

	profile, err := expert.MyExpertProfile(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, profile.TotalConsultations)

	listed, err := farmer.ListAppointments(t.Context(), 1, 10)
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
}
