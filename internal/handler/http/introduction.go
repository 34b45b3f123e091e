package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/windfall/pitch_service/internal/errors"
	"github.com/windfall/pitch_service/internal/service"
	"github.com/windfall/pitch_service/pkg/response"
)

// IntroductionHandler handles investor-introduction requests.
type IntroductionHandler struct {
	log                 zerolog.Logger
	introductionService *service.IntroductionService
}

// NewIntroductionHandler creates a new Introduction handler.
func NewIntroductionHandler(log zerolog.Logger, introductionService *service.IntroductionService) *IntroductionHandler {
	return &IntroductionHandler{
		log:                 log,
		introductionService: introductionService,
	}
}

// Submit handles POST /api/v1/introductions
func (h *IntroductionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.IntroductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, errors.Validation("invalid request body"))
		return
	}

	ack, err := h.introductionService.SubmitIntroduction(r.Context(), req)
	if err != nil {
		h.log.Debug().Err(err).Msg("Introduction request rejected")
		handleError(w, err)
		return
	}

	response.Created(w, ack)
}

func handleError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(w, appErr.HTTPStatus(), appErr)
		return
	}
	response.Error(w, http.StatusInternalServerError, errors.Internal("internal server error"))
}
