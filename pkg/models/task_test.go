package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *TaskRecord {
	return &TaskRecord{
		TaskID:          "task-1",
		UserID:          "u1",
		Query:           "what is maestro",
		TemplateName:    "standard",
		Plan:            []string{StageIntent, StageRetrieval, StageReasoning, StageModeration, StageResponsePackaging},
		CompletedStages: []string{StageIntent},
		CurrentStage:    StageRetrieval,
		Status:          StatusInProgress,
		StartedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		TTLSeconds:      600,
	}
}

func TestValidateAcceptsWellFormedRecord(t *testing.T) {
	require.NoError(t, validRecord().Validate())
}

func TestValidateRejectsNonPrefixCompletedStages(t *testing.T) {
	rec := validRecord()
	rec.CompletedStages = []string{StageRetrieval}
	assert.Error(t, rec.Validate())

	rec = validRecord()
	rec.CompletedStages = append(rec.Plan, "extra")
	assert.Error(t, rec.Validate())
}

func TestValidateRejectsCurrentStageMismatch(t *testing.T) {
	rec := validRecord()
	rec.CurrentStage = StageReasoning
	assert.Error(t, rec.Validate())
}

func TestValidateTerminalRequiresNullCurrentStage(t *testing.T) {
	rec := validRecord()
	rec.Status = StatusFailed
	rec.Error = &TaskError{Kind: ErrKindStageFailed, Message: "boom", Stage: StageRetrieval}
	assert.Error(t, rec.Validate(), "terminal status with current_stage set must fail")

	rec.CurrentStage = ""
	require.NoError(t, rec.Validate())
}

func TestValidateResponseIffComplete(t *testing.T) {
	rec := validRecord()
	rec.Response = &Response{Content: "answer"}
	assert.Error(t, rec.Validate(), "response on a non-complete task must fail")

	rec = validRecord()
	rec.CompletedStages = rec.Plan
	rec.CurrentStage = ""
	rec.Status = StatusComplete
	assert.Error(t, rec.Validate(), "complete without response must fail")

	rec.Response = &Response{Content: "answer", Confidence: 0.9}
	require.NoError(t, rec.Validate())
}

func TestValidateErrorStageMustBeInPlan(t *testing.T) {
	rec := validRecord()
	rec.Status = StatusFailed
	rec.CurrentStage = ""
	rec.Error = &TaskError{Kind: ErrKindStageFailed, Message: "boom", Stage: "no_such_stage"}
	assert.Error(t, rec.Validate())
}

func TestNextStage(t *testing.T) {
	rec := validRecord()
	assert.Equal(t, StageRetrieval, rec.NextStage())

	rec.CompletedStages = rec.Plan
	assert.Equal(t, "", rec.NextStage())
}

func TestCloneIsDeep(t *testing.T) {
	rec := validRecord()
	rec.RetrievalHits = []RetrievalHit{{ID: "d1", Score: 0.9}}
	rec.StageResults = map[string]map[string]any{
		StageIntent: {ResultKeyNeedsWeb: false},
	}

	cp := rec.Clone()
	cp.Plan[0] = "mutated"
	cp.RetrievalHits[0].ID = "mutated"
	cp.StageResults[StageIntent][ResultKeyNeedsWeb] = true

	assert.Equal(t, StageIntent, rec.Plan[0])
	assert.Equal(t, "d1", rec.RetrievalHits[0].ID)
	assert.Equal(t, false, rec.StageResults[StageIntent][ResultKeyNeedsWeb])
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	for _, s := range []TaskStatus{StatusComplete, StatusFailed, StatusAborted, StatusTimedOut} {
		assert.True(t, s.Terminal(), string(s))
	}
}
