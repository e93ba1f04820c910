package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/emotion"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() *dto.SubmitEmotionDTO {
	emotionType := "joy"
	reason := "호수 산책이 좋았다"
	message := "내일도 걷자"
	return &dto.SubmitEmotionDTO{
		EmotionType:     &emotionType,
		EmotionReason:   &reason,
		HelpfulActions:  []string{"walking", "barefoot_walking"},
		PositiveChanges: []string{"relaxed"},
		SelfMessage:     &message,
	}
}

func TestSubmitRecordOwnedByUser(t *testing.T) {
	recordRepo := &fakeRecordRepo{}
	svc := NewEmotionService(recordRepo)

	result, err := svc.SubmitRecord(context.Background(), model.OwnedBy(42), validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, "joy", result.EmotionType)
	assert.NotEmpty(t, result.EmotionLabel)

	assert.Len(t, recordRepo.records, 1)
	saved := recordRepo.records[0]
	assert.Equal(t, uint64(42), *saved.UserID)
	assert.Nil(t, saved.SessionID)
}

func TestSubmitRecordAnonymousSession(t *testing.T) {
	recordRepo := &fakeRecordRepo{}
	svc := NewEmotionService(recordRepo)

	_, err := svc.SubmitRecord(context.Background(), model.AnonymousOwner("sess-1"), validSubmission())
	assert.NoError(t, err)

	saved := recordRepo.records[0]
	assert.Nil(t, saved.UserID)
	assert.Equal(t, "sess-1", *saved.SessionID)
}

func TestSubmitRecordValidationError(t *testing.T) {
	svc := NewEmotionService(&fakeRecordRepo{})

	req := validSubmission()
	bad := "euphoria"
	req.EmotionType = &bad

	_, err := svc.SubmitRecord(context.Background(), model.OwnedBy(1), req)
	var verr *emotion.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, emotion.CodeInvalidEmotionType, verr.Code)
}

func TestSubmitRecordOwnerUnset(t *testing.T) {
	recordRepo := &fakeRecordRepo{}
	svc := NewEmotionService(recordRepo)

	_, err := svc.SubmitRecord(context.Background(), model.Owner{}, validSubmission())
	var verr *emotion.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, emotion.CodeLoginRequired, verr.Code)
	assert.Empty(t, recordRepo.records)
}

func TestGetSummary(t *testing.T) {
	recordRepo := &fakeRecordRepo{records: weekRecords("2026-W30", "joy", "joy", "sadness", "calm")}
	svc := NewEmotionService(recordRepo)

	result, err := svc.GetSummary(context.Background(), model.OwnedBy(1))
	assert.NoError(t, err)
	assert.Equal(t, 4, result.TotalRecords)
	assert.Equal(t, "joy", result.MostFrequent)
	assert.Equal(t, 75, result.PositiveRatio)
	assert.NotEmpty(t, result.Insight)
	assert.NotEmpty(t, result.Counts[0].Label)
}
