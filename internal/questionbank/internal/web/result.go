package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	questionNotFoundResult = ginx.Result{
		Code: errs.QuestionNotFound.Code,
		Msg:  errs.QuestionNotFound.Msg,
	}
	invalidQuestionResult = ginx.Result{
		Code: errs.InvalidQuestion.Code,
		Msg:  errs.InvalidQuestion.Msg,
	}
)
