package domain

import "errors"

var (
	ErrEmptyQuestionText = errors.New("题目内容不能为空")
	ErrInvalidEnum       = errors.New("分类、级别或难度不合法")
)
