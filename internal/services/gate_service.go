package services

import (
	"context"
	"sync"
	"time"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/repositories"
	"ministry/tender-engine/internal/tender"
)

// WorkflowGateService answers award eligibility from the vendor workflow
// records and accepts progress reports from the upstream processes. Every
// read goes to the store; nothing is cached between calls.
type WorkflowGateService interface {
	Find(ctx context.Context, vendorID string) (*models.VendorWorkflowStatus, error)
	IsAwardEligible(ctx context.Context, vendorID string) (bool, error)
	GetWorkflow(ctx context.Context, vendorID string) (*models.VendorWorkflowView, error)
	RecordProgress(ctx context.Context, vendorID string, req models.VendorProgressRequest) (*models.VendorWorkflowView, error)
	// Subscribe registers fn to run after every stored progress change.
	Subscribe(fn func(models.VendorWorkflowStatus))
}

type workflowGateService struct {
	repo repositories.VendorWorkflowRepository
	now  func() time.Time

	mu          sync.Mutex
	subscribers []func(models.VendorWorkflowStatus)
}

func NewWorkflowGateService(repo repositories.VendorWorkflowRepository, clock func() time.Time) WorkflowGateService {
	if clock == nil {
		clock = time.Now
	}
	return &workflowGateService{repo: repo, now: clock}
}

// Find implements WorkflowGateService. A vendor without a record yields nil.
func (s *workflowGateService) Find(ctx context.Context, vendorID string) (*models.VendorWorkflowStatus, error) {
	status, err := s.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, apperrors.Collaborator("failed to read vendor workflow", err)
	}
	return status, nil
}

// IsAwardEligible implements WorkflowGateService.
func (s *workflowGateService) IsAwardEligible(ctx context.Context, vendorID string) (bool, error) {
	status, err := s.Find(ctx, vendorID)
	if err != nil {
		return false, err
	}
	return tender.IsAwardEligible(status), nil
}

// GetWorkflow implements WorkflowGateService.
func (s *workflowGateService) GetWorkflow(ctx context.Context, vendorID string) (*models.VendorWorkflowView, error) {
	status, err := s.Find(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return workflowView(vendorID, status), nil
}

// RecordProgress implements WorkflowGateService.
func (s *workflowGateService) RecordProgress(ctx context.Context, vendorID string, req models.VendorProgressRequest) (*models.VendorWorkflowView, error) {
	if vendorID == "" {
		return nil, apperrors.Validation("vendor id is required")
	}
	for _, step := range req.CompletedSteps {
		if !knownStep(step) {
			return nil, apperrors.Validation("unknown workflow step %q", step)
		}
	}
	switch req.FinalApprovalStatus {
	case "", models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		return nil, apperrors.Validation("unknown final approval status %q", req.FinalApprovalStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status, err := s.Find(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if status == nil {
		status = &models.VendorWorkflowStatus{
			VendorID:            vendorID,
			FinalApprovalStatus: models.ApprovalPending,
		}
	}
	if status.Steps == nil {
		status.Steps = make(map[models.WorkflowStep]models.StepRecord)
	}

	for _, step := range req.CompletedSteps {
		if status.Completed(step) {
			continue
		}
		status.MarkCompleted(step)
		completedAt := now
		status.Steps[step] = models.StepRecord{
			CompletedAt:       &completedAt,
			CertificateNumber: req.CertificateNumbers[step],
		}
	}
	if req.FinalApprovalStatus != "" {
		status.FinalApprovalStatus = req.FinalApprovalStatus
	}
	status.UpdatedAt = now

	if err := s.repo.Save(ctx, status); err != nil {
		return nil, apperrors.Collaborator("failed to store vendor workflow", err)
	}

	for _, fn := range s.subscribers {
		fn(*status)
	}
	return workflowView(vendorID, status), nil
}

// Subscribe implements WorkflowGateService.
func (s *workflowGateService) Subscribe(fn func(models.VendorWorkflowStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func workflowView(vendorID string, status *models.VendorWorkflowStatus) *models.VendorWorkflowView {
	view := &models.VendorWorkflowView{
		Eligible: tender.IsAwardEligible(status),
		Unmet:    tender.UnmetSteps(status),
	}
	if status != nil {
		view.Workflow = *status
		view.Exists = true
	} else {
		view.Workflow = models.VendorWorkflowStatus{
			VendorID:            vendorID,
			FinalApprovalStatus: models.ApprovalPending,
		}
	}
	return view
}

func knownStep(step models.WorkflowStep) bool {
	for _, known := range models.WorkflowSteps {
		if known == step {
			return true
		}
	}
	return false
}
