package emotion

const (
	MaxReasonLength  = 2000
	MaxMessageLength = 500
)

// 校验错误码，前端据此渲染对应表单项的提示
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidEmotionType = "INVALID_EMOTION_TYPE"
	CodeInvalidReason      = "INVALID_REASON"
	CodeReasonTooLong      = "REASON_TOO_LONG"
	CodeInvalidActions     = "INVALID_ACTIONS"
	CodeInvalidActionType  = "INVALID_ACTION_TYPE"
	CodeInvalidChanges     = "INVALID_CHANGES"
	CodeInvalidChangeType  = "INVALID_CHANGE_TYPE"
	CodeInvalidMessage     = "INVALID_MESSAGE"
	CodeMessageTooLong     = "MESSAGE_TOO_LONG"
	CodeLoginRequired      = "LOGIN_REQUIRED"
)

// ValidationError 带机器可读错误码的校验失败
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Submission 一次情绪记录提交。指针字段区分 "未提交" 与 "提交了空串"。
type Submission struct {
	EmotionType        *string
	EmotionReason      *string
	HelpfulActions     []string
	PositiveChanges    []string
	SelfMessage        *string
	ExperienceLocation *string
}

// Validate 按固定顺序校验提交内容，首个失败即返回，不存在部分成功。
// 返回 nil 表示通过。
func Validate(sub *Submission) *ValidationError {
	if sub == nil || sub.EmotionType == nil {
		return newValidationError(CodeInvalidInput, "감정을 선택해 주세요")
	}
	if !IsEmotionType(*sub.EmotionType) {
		return newValidationError(CodeInvalidEmotionType, "알 수 없는 감정 유형입니다")
	}

	if sub.EmotionReason == nil {
		return newValidationError(CodeInvalidReason, "감정의 이유를 입력해 주세요")
	}
	if len([]rune(*sub.EmotionReason)) > MaxReasonLength {
		return newValidationError(CodeReasonTooLong, "감정의 이유는 2000자 이내로 입력해 주세요")
	}

	if len(sub.HelpfulActions) == 0 {
		return newValidationError(CodeInvalidActions, "도움이 된 행동을 선택해 주세요")
	}
	for _, action := range sub.HelpfulActions {
		if !IsHelpfulAction(action) {
			return newValidationError(CodeInvalidActionType, "알 수 없는 행동 유형입니다")
		}
	}

	if len(sub.PositiveChanges) == 0 {
		return newValidationError(CodeInvalidChanges, "긍정적인 변화를 선택해 주세요")
	}
	for _, change := range sub.PositiveChanges {
		if !IsPositiveChange(change) {
			return newValidationError(CodeInvalidChangeType, "알 수 없는 변화 유형입니다")
		}
	}

	if sub.SelfMessage == nil {
		return newValidationError(CodeInvalidMessage, "나에게 보내는 메시지를 입력해 주세요")
	}
	if len([]rune(*sub.SelfMessage)) > MaxMessageLength {
		return newValidationError(CodeMessageTooLong, "메시지는 500자 이내로 입력해 주세요")
	}

	return nil
}
