package engine_test

import (
	"testing"

	"github.com/aussiebroadwan/harvest/internal/advisory/engine"
	"github.com/stretchr/testify/require"
)

func TestAdvise(t *testing.T) {
	tests := []struct {
		name      string
		crop      string
		temp, hum float64
		alerts    []string
		recs      []string
	}{
		{
			name: "wheat rust", crop: "wheat", temp: 22, hum: 75,
			alerts: []string{"⚠️ High risk of wheat rust due to high humidity"},
			recs:   []string{"Apply Mancozeb fungicide (2.5 kg/ha)", "Reduce irrigation frequency"},
		},
		{
			name: "wheat heat and humidity", crop: "Wheat", temp: 32, hum: 80,
			alerts: []string{
				"⚠️ High risk of wheat rust due to high humidity",
				"🌡️ High temperature stress detected",
			},
			recs: []string{
				"Apply Mancozeb fungicide (2.5 kg/ha)",
				"Reduce irrigation frequency",
				"Increase irrigation frequency",
				"Apply foliar spray with micronutrients",
			},
		},
		{
			name: "wheat cold", crop: "WHEAT", temp: 10, hum: 40,
			alerts: []string{"❄️ Low temperature may affect growth"},
			recs:   []string{"Delay irrigation until temperature rises", "Consider using row covers"},
		},
		{
			name: "wheat optimal", crop: "wheat", temp: 25, hum: 50,
			alerts: []string{},
			recs: []string{
				"✅ Optimal conditions for wheat growth",
				"Continue regular irrigation schedule",
				"Monitor for early signs of pests",
				engine.FavorableMessage,
			},
		},
		{
			name: "wheat mild but not optimal", crop: "wheat", temp: 27, hum: 60,
			alerts: []string{},
			recs:   []string{engine.FavorableMessage},
		},
		{
			name: "tomato blight", crop: "tomato", temp: 25, hum: 85,
			alerts: []string{"⚠️ High risk of early blight and late blight"},
			recs: []string{
				"Apply Copper oxychloride (3g/liter)",
				"Improve air circulation",
				"Avoid overhead irrigation",
			},
		},
		{
			name: "tomato heat", crop: "tomato", temp: 36, hum: 50,
			alerts: []string{"🌡️ Heat stress may cause flower drop"},
			recs: []string{
				"Increase shade net coverage",
				"Apply calcium nitrate foliar spray",
				"Water in early morning or evening",
			},
		},
		{
			name: "tomato cold", crop: "tomato", temp: 5, hum: 50,
			alerts: []string{"❄️ Cold stress may affect fruit setting"},
			recs:   []string{"Use plastic mulch to retain soil heat", "Consider greenhouse cultivation"},
		},
		{
			name: "tomato optimal", crop: "tomato", temp: 20, hum: 70,
			alerts: []string{},
			recs: []string{
				"✅ Optimal conditions for tomato growth",
				"Maintain regular pruning schedule",
				"Monitor for whitefly and aphids",
				engine.FavorableMessage,
			},
		},
		{
			name: "cotton blight", crop: "cotton", temp: 30, hum: 76,
			alerts: []string{"⚠️ High risk of bacterial blight and boll rot"},
			recs: []string{
				"Apply Streptomycin sulfate (500 ppm)",
				"Remove infected plant parts",
				"Improve field drainage",
			},
		},
		{
			name: "cotton extreme heat", crop: "cotton", temp: 41, hum: 40,
			alerts: []string{"🌡️ Extreme heat may cause boll shedding"},
			recs: []string{
				"Increase irrigation frequency",
				"Apply potassium nitrate spray",
				"Use shade nets during peak hours",
			},
		},
		{
			name: "cotton cold", crop: "cotton", temp: 14.9, hum: 60,
			alerts: []string{"❄️ Cold stress may delay flowering"},
			recs:   []string{"Delay sowing until temperature rises", "Use plastic mulch for soil warming"},
		},
		{
			name: "cotton optimal", crop: "cotton", temp: 35, hum: 70,
			alerts: []string{},
			recs: []string{
				"✅ Optimal conditions for cotton growth",
				"Monitor for pink bollworm",
				"Maintain proper plant spacing",
				"Apply balanced NPK fertilizer",
				engine.FavorableMessage,
			},
		},
		{
			name: "unknown crop", crop: "rice", temp: 45, hum: 95,
			alerts: []string{},
			recs:   []string{engine.FavorableMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := engine.Advise(tt.crop, tt.temp, tt.hum)
			require.Equal(t, tt.alerts, got.Alerts)
			require.Equal(t, tt.recs, got.Recommendations)
		})
	}
}

func TestAdviseThresholdsAreStrict(t *testing.T) {
	// Exactly at a threshold does not trigger the alert.
	got := engine.Advise("wheat", 30, 70)
	require.Empty(t, got.Alerts)

	got = engine.Advise("tomato", 35, 80)
	require.Empty(t, got.Alerts)

	got = engine.Advise("cotton", 15, 75)
	require.Empty(t, got.Alerts)
}

func TestAdviseFallbackReading(t *testing.T) {
	// The reading used when the weather provider is unavailable.
	got := engine.Advise("tomato", 25, 65)
	require.Equal(t, []string{
		"✅ Optimal conditions for tomato growth",
		"Maintain regular pruning schedule",
		"Monitor for whitefly and aphids",
		engine.FavorableMessage,
	}, got.Recommendations)
}
