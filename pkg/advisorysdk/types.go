// Package advisorysdk provides a client and the wire types for the Harvest
// crop advisory service.
//
//	client := advisorysdk.NewClient("http://localhost:8001")
//	advice, err := client.GetAdvisory(ctx, advisorysdk.AdvisoryRequest{
//		Name:     "Ravi",
//		Location: "Ludhiana",
//		Crop:     "wheat",
//	})
package advisorysdk

import "time"

const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeValidation     = "validation_error"
	ErrorCodeServerError    = "server_error"
)

// MissingFieldsMessage is the message returned when name, location or crop is absent.
const MissingFieldsMessage = "Missing required fields: name, location, crop"

type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime,omitempty"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// AdvisoryRequest asks for advice for one crop at one location. Crop is
// matched case-insensitively; unknown crops get generic advice.
type AdvisoryRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Crop     string `json:"crop"`
}

type AdvisoryResponse struct {
	Location        string   `json:"location"`
	Temperature     float64  `json:"temperature"`
	Humidity        float64  `json:"humidity"`
	Description     string   `json:"description"`
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
}

// AdvisoryLog is one recorded advisory session.
type AdvisoryLog struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Crop            string    `json:"crop"`
	Temperature     float64   `json:"temperature"`
	Humidity        float64   `json:"humidity"`
	Alerts          []string  `json:"alerts"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}

type LogsResponse struct {
	Logs []AdvisoryLog `json:"logs"`
}
