package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/windfall/pitch_service/internal/errors"
	"github.com/windfall/pitch_service/internal/metrics"
)

// IntroductionStatus is the lifecycle state of an introduction request.
// New requests are always pending.
type IntroductionStatus string

const IntroductionPending IntroductionStatus = "pending"

var (
	industries    = []string{"fintech", "healthtech", "edtech", "saas", "ecommerce", "ai-ml", "blockchain", "other"}
	fundingStages = []string{"pre-seed", "seed", "series-a", "series-b", "series-c"}
	fundingRanges = []string{"under-100k", "100k-500k", "500k-1m", "1m-5m", "5m-10m", "over-10m"}
)

// IntroductionRequest is the investor-introduction intake form.
type IntroductionRequest struct {
	CompanyName         string `json:"company_name"`
	Industry            string `json:"industry"`
	FundingStage        string `json:"funding_stage"`
	FundingAmount       string `json:"funding_amount"`
	PitchSummary        string `json:"pitch_summary"`
	InvestorPreferences string `json:"investor_preferences,omitempty"`
}

// IntroductionAck confirms an introduction request was received.
type IntroductionAck struct {
	RequestID   string             `json:"request_id"`
	Status      IntroductionStatus `json:"status"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// IntroductionService validates investor-introduction requests. Requests are
// acknowledged and logged; matching happens outside this service.
type IntroductionService struct {
	log zerolog.Logger
	now func() time.Time
}

// NewIntroductionService creates a new Introduction service.
func NewIntroductionService(log zerolog.Logger) *IntroductionService {
	return &IntroductionService{
		log: log,
		now: time.Now,
	}
}

// SubmitIntroduction validates req and returns a pending acknowledgment.
func (s *IntroductionService) SubmitIntroduction(ctx context.Context, req IntroductionRequest) (*IntroductionAck, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ack := &IntroductionAck{
		RequestID:   fmt.Sprintf("intro_%s", uuid.New().String()),
		Status:      IntroductionPending,
		SubmittedAt: s.now().UTC(),
	}

	s.log.Info().
		Str("request_id", ack.RequestID).
		Str("industry", req.Industry).
		Str("funding_stage", req.FundingStage).
		Str("funding_amount", req.FundingAmount).
		Msg("Introduction request received")

	metrics.IntroductionsTotal.Inc()

	return ack, nil
}

// Validate checks required fields and option values.
func (r IntroductionRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return fieldError("company_name", "company_name is required")
	}
	if err := oneOf("industry", r.Industry, industries); err != nil {
		return err
	}
	if err := oneOf("funding_stage", r.FundingStage, fundingStages); err != nil {
		return err
	}
	if err := oneOf("funding_amount", r.FundingAmount, fundingRanges); err != nil {
		return err
	}
	if strings.TrimSpace(r.PitchSummary) == "" {
		return fieldError("pitch_summary", "pitch_summary is required")
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	if value == "" {
		return fieldError(field, field+" is required")
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fieldError(field, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
}

func fieldError(field, message string) *errors.AppError {
	return errors.Validation(message).WithDetails(map[string]interface{}{"field": field})
}
