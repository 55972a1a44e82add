package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/sleep-scoring/internal/api/validation"
	"github.com/blaisecz/sleep-scoring/internal/domain"
	"github.com/blaisecz/sleep-scoring/internal/service"
	"github.com/blaisecz/sleep-scoring/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SleepScoreHandler struct {
	service service.SleepScoreService
}

func NewSleepScoreHandler(service service.SleepScoreService) *SleepScoreHandler {
	return &SleepScoreHandler{service: service}
}

// Score handles POST /v1/users/{userId}/sleep-scores
// @Summary Score a night of raw sleep segments
// @Description Submit a raw wearable export (stage samples). The engine reconstructs episodes, picks the primary sleep, scores it and stores the session. Returns 422 when no episode qualifies as primary sleep or the reconstructed episode fails validation.
// @Tags sleep-scores
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.ScoreSleepRequest true "Raw stage segments"
// @Success 201 {object} domain.ScoreSleepResponse "Scored and stored session"
// @Failure 400 {object} problem.Problem "Malformed user ID or JSON body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid fields or no scoreable sleep in the export"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-scores [post]
func (h *SleepScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.ScoreSleepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.service.ScoreNight(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrNoPrimarySleep):
			problem.UnprocessableData("No episode in the export qualifies as primary sleep").Write(w)
		case errors.Is(err, domain.ErrEpisodeRejected):
			problem.UnprocessableData(err.Error()).Write(w)
		default:
			problem.InternalError("Failed to score sleep").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// List handles GET /v1/users/{userId}/sleep-sessions
// @Summary List scored sleep sessions
// @Description Fetch paginated session history. Filter by episode start range. Results sorted newest first.
// @Tags sleep-scores
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepSessionListResponse
// @Failure 400 {object} problem.Problem "Malformed user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-sessions [get]
func (h *SleepScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.ListSessions(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep sessions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.SleepSessionFilter, []problem.FieldError) {
	var filter domain.SleepSessionFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
