// Package engine maps a weather reading to crop alerts and recommendations.
package engine

import "strings"

// Advice is the result of evaluating the rules for one crop. Both slices are
// non-nil.
type Advice struct {
	Alerts          []string
	Recommendations []string
}

// rule fires when match holds. A rule without an alert only adds
// recommendations.
type rule struct {
	match func(t, h float64) bool
	alert string
	recs  []string
}

func above(limit float64) func(t, h float64) bool {
	return func(t, _ float64) bool { return t > limit }
}

func below(limit float64) func(t, h float64) bool {
	return func(t, _ float64) bool { return t < limit }
}

func humid(limit float64) func(t, h float64) bool {
	return func(_, h float64) bool { return h > limit }
}

// optimal matches inclusive temperature and humidity bands.
func optimal(tMin, tMax, hMin, hMax float64) func(t, h float64) bool {
	return func(t, h float64) bool {
		return t >= tMin && t <= tMax && h >= hMin && h <= hMax
	}
}

// rules are evaluated in order and independently of each other.
var rules = map[string][]rule{
	"wheat": {
		{
			match: humid(70),
			alert: "⚠️ High risk of wheat rust due to high humidity",
			recs:  []string{"Apply Mancozeb fungicide (2.5 kg/ha)", "Reduce irrigation frequency"},
		},
		{
			match: above(30),
			alert: "🌡️ High temperature stress detected",
			recs:  []string{"Increase irrigation frequency", "Apply foliar spray with micronutrients"},
		},
		{
			match: below(15),
			alert: "❄️ Low temperature may affect growth",
			recs:  []string{"Delay irrigation until temperature rises", "Consider using row covers"},
		},
		{
			match: optimal(20, 25, 50, 65),
			recs: []string{
				"✅ Optimal conditions for wheat growth",
				"Continue regular irrigation schedule",
				"Monitor for early signs of pests",
			},
		},
	},
	"tomato": {
		{
			match: humid(80),
			alert: "⚠️ High risk of early blight and late blight",
			recs: []string{
				"Apply Copper oxychloride (3g/liter)",
				"Improve air circulation",
				"Avoid overhead irrigation",
			},
		},
		{
			match: above(35),
			alert: "🌡️ Heat stress may cause flower drop",
			recs: []string{
				"Increase shade net coverage",
				"Apply calcium nitrate foliar spray",
				"Water in early morning or evening",
			},
		},
		{
			match: below(10),
			alert: "❄️ Cold stress may affect fruit setting",
			recs:  []string{"Use plastic mulch to retain soil heat", "Consider greenhouse cultivation"},
		},
		{
			match: optimal(20, 30, 60, 70),
			recs: []string{
				"✅ Optimal conditions for tomato growth",
				"Maintain regular pruning schedule",
				"Monitor for whitefly and aphids",
			},
		},
	},
	"cotton": {
		{
			match: humid(75),
			alert: "⚠️ High risk of bacterial blight and boll rot",
			recs: []string{
				"Apply Streptomycin sulfate (500 ppm)",
				"Remove infected plant parts",
				"Improve field drainage",
			},
		},
		{
			match: above(40),
			alert: "🌡️ Extreme heat may cause boll shedding",
			recs: []string{
				"Increase irrigation frequency",
				"Apply potassium nitrate spray",
				"Use shade nets during peak hours",
			},
		},
		{
			match: below(15),
			alert: "❄️ Cold stress may delay flowering",
			recs:  []string{"Delay sowing until temperature rises", "Use plastic mulch for soil warming"},
		},
		{
			match: optimal(25, 35, 50, 70),
			recs: []string{
				"✅ Optimal conditions for cotton growth",
				"Monitor for pink bollworm",
				"Maintain proper plant spacing",
				"Apply balanced NPK fertilizer",
			},
		},
	},
}

const (
	FavorableMessage = "🌤️ Weather conditions are favorable for crop growth"
	RegularPractices = "📋 Continue with regular farming practices"
	MonitorHealth    = "🔍 Monitor crop health regularly"
)

// Advise evaluates the rules for crop at temperature t (°C) and relative
// humidity h (%).
func Advise(crop string, t, h float64) Advice {
	a := Advice{Alerts: []string{}, Recommendations: []string{}}

	for _, r := range rules[strings.ToLower(crop)] {
		if !r.match(t, h) {
			continue
		}
		if r.alert != "" {
			a.Alerts = append(a.Alerts, r.alert)
		}
		a.Recommendations = append(a.Recommendations, r.recs...)
	}

	if len(a.Alerts) == 0 {
		a.Recommendations = append(a.Recommendations, FavorableMessage)
	}
	if len(a.Recommendations) == 0 {
		a.Recommendations = append(a.Recommendations, RegularPractices, MonitorHealth)
	}
	return a
}
