package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("요청 값이 올바르지 않습니다")
	ErrLoginRequired     = errors.New("로그인이 필요합니다")
	ErrUserNotFound      = errors.New("사용자를 찾을 수 없습니다")
	ErrUsernameNotFound  = errors.New("존재하지 않는 계정입니다")
	ErrPasswordIncorrect = errors.New("비밀번호가 올바르지 않습니다")
	ErrPostNotFound      = errors.New("게시글을 찾을 수 없습니다")
	ErrCommentNotFound   = errors.New("댓글을 찾을 수 없습니다")
	ErrNewsNotFound      = errors.New("소식을 찾을 수 없습니다")
	ErrProductNotFound   = errors.New("상품을 찾을 수 없습니다")
	ErrTrackNotFound     = errors.New("오디오 트랙을 찾을 수 없습니다")
	ErrReportNotFound    = errors.New("주간 리포트가 없습니다")
	ErrNoWeekRecords     = errors.New("해당 주에 기록이 없습니다")
	ErrOAuthCodeInvalid  = errors.New("인증 코드가 유효하지 않습니다")
	ErrFileNotSupported  = errors.New("지원하지 않는 파일 형식입니다")
	UnauthorizedError    = errors.New("권한이 없습니다")
	UnExpectedError      = errors.New("일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrLoginRequired:     Unauthorized,
	ErrUserNotFound:      NotFound,
	ErrUsernameNotFound:  NotFound,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrNewsNotFound:      NotFound,
	ErrProductNotFound:   NotFound,
	ErrTrackNotFound:     NotFound,
	ErrReportNotFound:    NotFound,
	ErrNoWeekRecords:     NotFound,
	ErrOAuthCodeInvalid:  Unauthorized,
	ErrFileNotSupported:  BadRequest,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
