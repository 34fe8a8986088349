package market_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/stretchr/testify/require"
)

func TestOrderFlow(t *testing.T) {
	client := setupMarketContainer(t)
	admin := bootstrapAdmin(t, client)
	dealer := approvedSession(t, client, admin, "dealer")
	farmer := approvedSession(t, client, admin, "farmer")

	product, err := dealer.CreateProduct(t.Context(), marketsdk.ProductRequest{
		Name:          "Spraying drone",
		Category:      "drones",
		Price:         1500,
		StockQuantity: 3,
	})
	require.NoError(t, err)

	listed, err := client.ListProducts(t.Context(), marketsdk.ProductQuery{Category: "drones"})
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)

	_, err = farmer.PlaceOrder(t.Context(), marketsdk.OrderRequest{ProductID: product.ID, Quantity: 4, DeliveryAddress: "Plot 7"})
	requireAPIError(t, err, http.StatusConflict, marketsdk.ErrorCodeConflict)

	order, err := farmer.PlaceOrder(t.Context(), marketsdk.OrderRequest{ProductID: product.ID, Quantity: 2, DeliveryAddress: "Plot 7"})
	require.NoError(t, err)
	require.Equal(t, "pending", order.Status)
	require.InDelta(t, 3000, order.TotalAmount, 1e-9)

	got, err := client.GetProduct(t.Context(), product.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.StockQuantity)

	for _, status := range []string{"confirmed", "shipped", "delivered"} {
		order, err = dealer.UpdateOrderStatus(t.Context(), order.ID, status)
		require.NoError(t, err)
		require.Equal(t, status, order.Status)
	}
	require.NotNil(t, order.DeliveredAt)

	_, err = dealer.UpdateOrderStatus(t.Context(), order.ID, "cancelled")
	requireAPIError(t, err, http.StatusConflict, marketsdk.ErrorCodeConflict)
}

func TestPrebookingQuote(t *testing.T) {
	client := setupMarketContainer(t)
	admin := bootstrapAdmin(t, client)
	farmer := approvedSession(t, client, admin, "farmer")

	pb, err := farmer.CreatePrebooking(t.Context(), marketsdk.PrebookingRequest{
		ServiceType:   "drone spraying",
		CropType:      "cotton",
		AreaAcres:     10,
		Location:      "Nagpur",
		PreferredDate: time.Now().Add(72 * time.Hour).UTC(),
	})
	require.NoError(t, err)
	require.InDelta(t, 300, pb.BookingFee, 1e-9)
	require.InDelta(t, 1100, pb.TotalAmount, 1e-9)
	require.Equal(t, "INR", pb.Currency)
}
