package tender

import (
	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
)

var PostAwardSteps = []models.PostAwardStep{
	models.StepNotifySuccessful,
	models.StepNotifyUnsuccessful,
	models.StepPublishFeed,
	models.StepCreateContract,
}

func ParsePostAwardStep(raw string) (models.PostAwardStep, error) {
	for _, step := range PostAwardSteps {
		if string(step) == raw {
			return step, nil
		}
	}
	return "", apperrors.Validation("unknown post-award step %q", raw)
}

// StepDone reports whether step is already complete in state.
func StepDone(state *models.PostAwardWorkflowState, step models.PostAwardStep) bool {
	switch step {
	case models.StepNotifySuccessful:
		return state.NotifiedSuccessful
	case models.StepNotifyUnsuccessful:
		return state.NotifiedUnsuccessful
	case models.StepPublishFeed:
		return state.PublishedToTransparencyFeed
	case models.StepCreateContract:
		return state.ContractCreated
	}
	return false
}

// MarkStep sets step's flag and reports whether it was previously unset.
// Steps are independent: none requires or implies another.
func MarkStep(state *models.PostAwardWorkflowState, step models.PostAwardStep) (bool, error) {
	if StepDone(state, step) {
		return false, nil
	}
	switch step {
	case models.StepNotifySuccessful:
		state.NotifiedSuccessful = true
	case models.StepNotifyUnsuccessful:
		state.NotifiedUnsuccessful = true
	case models.StepPublishFeed:
		state.PublishedToTransparencyFeed = true
	case models.StepCreateContract:
		state.ContractCreated = true
	default:
		return false, apperrors.Validation("unknown post-award step %q", step)
	}
	return true, nil
}

func IsComplete(state *models.PostAwardWorkflowState) bool {
	if state == nil {
		return false
	}
	return state.NotifiedSuccessful &&
		state.NotifiedUnsuccessful &&
		state.PublishedToTransparencyFeed &&
		state.ContractCreated
}
