package emotion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() *Submission {
	emotionType := "joy"
	reason := "felt great"
	message := "well done"
	return &Submission{
		EmotionType:     &emotionType,
		EmotionReason:   &reason,
		HelpfulActions:  []string{"walking"},
		PositiveChanges: []string{"happy"},
		SelfMessage:     &message,
	}
}

func TestValidateAccept(t *testing.T) {
	assert.Nil(t, Validate(validSubmission()))
}

func TestValidateFieldCodes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *Submission)
		wantCode string
	}{
		{"nil submission handled via missing type", func(s *Submission) { s.EmotionType = nil }, CodeInvalidInput},
		{"unknown emotion type", func(s *Submission) { *s.EmotionType = "ecstatic" }, CodeInvalidEmotionType},
		{"missing reason", func(s *Submission) { s.EmotionReason = nil }, CodeInvalidReason},
		{"reason too long", func(s *Submission) { long := strings.Repeat("가", MaxReasonLength+1); s.EmotionReason = &long }, CodeReasonTooLong},
		{"empty actions", func(s *Submission) { s.HelpfulActions = nil }, CodeInvalidActions},
		{"unknown action", func(s *Submission) { s.HelpfulActions = []string{"walking", "flying"} }, CodeInvalidActionType},
		{"empty changes", func(s *Submission) { s.PositiveChanges = []string{} }, CodeInvalidChanges},
		{"unknown change", func(s *Submission) { s.PositiveChanges = []string{"invincible"} }, CodeInvalidChangeType},
		{"missing message", func(s *Submission) { s.SelfMessage = nil }, CodeInvalidMessage},
		{"message too long", func(s *Submission) { long := strings.Repeat("a", MaxMessageLength+1); s.SelfMessage = &long }, CodeMessageTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(sub)
			err := Validate(sub)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.NotEmpty(t, err.Message)
		})
	}
}

func TestValidateBoundaryLengths(t *testing.T) {
	sub := validSubmission()
	reason := strings.Repeat("가", MaxReasonLength)
	sub.EmotionReason = &reason
	message := strings.Repeat("b", MaxMessageLength)
	sub.SelfMessage = &message

	assert.Nil(t, Validate(sub))
}

func TestValidateShortCircuitOrder(t *testing.T) {
	// 同时缺多个字段时，按校验顺序只报第一个
	sub := validSubmission()
	sub.EmotionReason = nil
	sub.SelfMessage = nil

	err := Validate(sub)
	require.NotNil(t, err)
	assert.Equal(t, CodeInvalidReason, err.Code)
}

func TestValidateNilSubmission(t *testing.T) {
	err := Validate(nil)
	require.NotNil(t, err)
	assert.Equal(t, CodeInvalidInput, err.Code)
}
