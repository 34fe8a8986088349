package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/advisory/service"
	"github.com/aussiebroadwan/harvest/internal/advisory/store"
	"github.com/aussiebroadwan/harvest/pkg/advisorysdk"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

type AdvisoryHandler struct {
	AdvisoryService *service.AdvisoryService
}

// HandleAdvise godoc
//
//	@Summary		Get crop advice
//	@Description	Looks up the current weather for the location and returns alerts and recommendations for the crop. When the weather provider is unavailable a default reading of 25°C / 65% is used.
//	@Tags			Advisory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		advisorysdk.AdvisoryRequest				true	"Farmer name, location and crop"
//	@Success		200		{object}	advisorysdk.AdvisoryResponse			"Advice"
//	@Failure		400		{object}	advisorysdk.ValidationErrorResponse		"Missing required fields"
//	@Failure		500		{object}	advisorysdk.ErrorResponse				"Advisory could not be recorded"
//	@Router			/v1/advisories [post].
func (h *AdvisoryHandler) HandleAdvise(w http.ResponseWriter, r *http.Request) {
	var req advisorysdk.AdvisoryRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, advisorysdk.ErrorResponse{
			Error:            advisorysdk.ErrorCodeInvalidRequest,
			ErrorDescription: err.Error(),
		})
		return
	}
	if details := req.Validate(); details != nil {
		writeMissingFields(w, details)
		return
	}

	advisory, err := h.AdvisoryService.Advise(r.Context(), req.Name, req.Location, req.Crop)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			writeMissingFields(w, nil)
			return
		}
		writeServerError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, advisorysdk.AdvisoryResponse{
		Location:        advisory.Location,
		Temperature:     advisory.Reading.Temperature,
		Humidity:        advisory.Reading.Humidity,
		Description:     advisory.Reading.Description,
		Alerts:          advisory.Advice.Alerts,
		Recommendations: advisory.Advice.Recommendations,
		Success:         true,
		Message:         "Advisory generated successfully",
	})
}

// HandleLogs godoc
//
//	@Summary	List recent advisories
//	@Tags		Advisory
//	@Produce	json
//	@Param		limit	query		int							false	"Number of logs"	default(10)	maximum(100)
//	@Success	200		{object}	advisorysdk.LogsResponse	"Newest first"
//	@Failure	500		{object}	advisorysdk.ErrorResponse	"Storage failure"
//	@Router		/v1/advisories/logs [get].
func (h *AdvisoryHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	limit := httpx.QueryInt(r, "limit", service.DefaultLogLimit, service.MaxLogLimit)

	logs, err := h.AdvisoryService.RecentLogs(r.Context(), limit)
	if err != nil {
		writeServerError(w, r, err)
		return
	}

	httpx.NoCache(w)
	out := advisorysdk.LogsResponse{Logs: make([]advisorysdk.AdvisoryLog, 0, len(logs))}
	for _, l := range logs {
		out.Logs = append(out.Logs, logResponse(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func logResponse(l store.Log) advisorysdk.AdvisoryLog {
	return advisorysdk.AdvisoryLog{
		ID:              l.ID,
		Name:            l.Name,
		Location:        l.Location,
		Crop:            l.Crop,
		Temperature:     l.Temperature,
		Humidity:        l.Humidity,
		Alerts:          l.Alerts,
		Recommendations: l.Recommendations,
		CreatedAt:       l.CreatedAt,
	}
}

func writeMissingFields(w http.ResponseWriter, details map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, advisorysdk.ValidationErrorResponse{
		Code:    advisorysdk.ErrorCodeValidation,
		Message: advisorysdk.MissingFieldsMessage,
		Details: details,
	})
}

func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	httpx.WriteJSON(w, http.StatusInternalServerError, advisorysdk.ErrorResponse{
		Error:            advisorysdk.ErrorCodeServerError,
		ErrorDescription: "Error generating advisory",
	})
}
