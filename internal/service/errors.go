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
	ErrParamInvalid    = errors.New("参数错误")
	ErrUserNotFound    = errors.New("用户不存在")
	ErrContentNotFound = errors.New("内容不存在")
	ErrMetricNotFound  = errors.New("指标尚未生成")
	ErrProfileNotFound = errors.New("用户画像不存在")
	ErrNegativeCount   = errors.New("互动计数不能为负数")
	ErrNoHistory       = errors.New("用户暂无历史内容")
	UnauthorizedError  = errors.New("权限不足")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrUserNotFound:    NotFound,
	ErrContentNotFound: NotFound,
	ErrMetricNotFound:  NotFound,
	ErrProfileNotFound: NotFound,
	ErrNegativeCount:   BadRequest,
	ErrNoHistory:       NotFound,
	UnauthorizedError:  Unauthorized,
	UnExpectedError:    InternalServerError,
}
