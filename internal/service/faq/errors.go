package faq

import "errors"

var (
	ErrCategoryNotFound       = errors.New("faq category not found")
	ErrItemNotFound           = errors.New("faq item not found")
	ErrTitleRequired          = errors.New("title is required")
	ErrQuestionAnswerRequired = errors.New("question and answer are required")
)
