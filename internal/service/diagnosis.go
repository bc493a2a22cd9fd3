package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xcov19-server/internal/conformance"
	"github.com/xcov19-server/internal/domain"
)

var _ domain.DiagnosisService = (*DiagnosisService)(nil)

// DiagnosisServiceClass is verified against domain.DiagnosisServiceContract
// when the package is initialised.
var DiagnosisServiceClass = conformance.MustDefine("DiagnosisServiceImpl",
	[]*conformance.Class{domain.DiagnosisServiceContract, conformance.ProtocolCheck},
	conformance.MethodOf("Diagnose", (*DiagnosisService).Diagnose, "ctx", "query"),
)

// DiagnosisService accepts diagnosis queries. Queries are acknowledged and
// queued; specialty lookup and persistence happen downstream.
type DiagnosisService struct {
	logger *logrus.Logger
	now    func() time.Time
}

// NewDiagnosisService creates a new diagnosis service
func NewDiagnosisService(logger *logrus.Logger) *DiagnosisService {
	return &DiagnosisService{
		logger: logger,
		now:    time.Now,
	}
}

// Diagnose validates the query and acknowledges it with a new query ID.
// Rejections are *domain.ServiceError values wrapping the validation failure.
func (s *DiagnosisService) Diagnose(ctx context.Context, query *domain.DiagnosisQuery) (*domain.DiagnosisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if query == nil {
		return nil, domain.NewServiceError(domain.ErrInvalidInput, "diagnosis query is required", "", nil)
	}
	if verr := validateQuery(query); verr != nil {
		return nil, domain.NewServiceError(domain.ErrValidation, "diagnosis query rejected", "", verr)
	}

	result := &domain.DiagnosisResult{
		QueryID:   uuid.New().String(),
		Status:    domain.QUEUED,
		Response:  "ok",
		CreatedAt: s.now().UTC(),
	}

	s.logger.WithFields(logrus.Fields{
		"query_id": result.QueryID,
		"symptoms": len(query.Symptoms),
	}).Info("Diagnosis query accepted")

	return result, nil
}

func validateQuery(query *domain.DiagnosisQuery) *domain.ValidationError {
	if len(query.Symptoms) == 0 {
		return domain.NewValidationError("symptoms", "at least one symptom is required", query.Symptoms)
	}
	for i, symptom := range query.Symptoms {
		if strings.TrimSpace(symptom) == "" {
			return domain.NewValidationError("symptoms", "symptoms must not be blank", i)
		}
	}
	if query.Age < 0 {
		return domain.NewValidationError("age", "age must not be negative", query.Age)
	}
	if query.Location != nil && !query.Location.Valid() {
		return domain.NewValidationError("location", "coordinates out of range", *query.Location)
	}
	return nil
}
