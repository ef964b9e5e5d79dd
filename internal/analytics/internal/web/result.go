package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/errs"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	analyticsNotFoundResult = ginx.Result{
		Code: errs.AnalyticsNotFound.Code,
		Msg:  errs.AnalyticsNotFound.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrAnalyticsNotFound):
		return analyticsNotFoundResult, nil
	case errors.Is(err, domain.ErrForbidden):
		return forbiddenResult, nil
	default:
		return systemErrorResult, err
	}
}
