package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockinterview/internal/ai"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/errs"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
	"github.com/ecodeclub/mockinterview/internal/quota"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	interviewNotFoundResult = ginx.Result{
		Code: errs.InterviewNotFound.Code,
		Msg:  errs.InterviewNotFound.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	invalidStateResult = ginx.Result{
		Code: errs.InvalidState.Code,
		Msg:  errs.InvalidState.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	quotaExceededResult = ginx.Result{
		Code: errs.QuotaExceeded.Code,
		Msg:  errs.QuotaExceeded.Msg,
	}
	upstreamResult = ginx.Result{
		Code: errs.Upstream.Code,
		Msg:  errs.Upstream.Msg,
	}
)

// errorResult 业务错误不往上抛，其余的交给 ginx 打日志
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInterviewNotFound):
		return interviewNotFoundResult, nil
	case errors.Is(err, domain.ErrForbidden):
		return forbiddenResult, nil
	case errors.Is(err, domain.ErrInvalidState):
		return invalidStateResult, nil
	case errors.Is(err, domain.ErrInvalidType), errors.Is(err, domain.ErrEmptyContent):
		return invalidInputResult, nil
	case errors.Is(err, quota.ErrQuotaExceeded):
		return quotaExceededResult, nil
	case errors.Is(err, ai.ErrUpstream), errors.Is(err, domain.ErrInvalidScore):
		return upstreamResult, err
	default:
		return systemErrorResult, err
	}
}
