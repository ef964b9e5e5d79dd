package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
)

type Question struct {
	Id              int64    `json:"id,omitempty"`
	Category        string   `json:"category,omitempty"`
	Level           string   `json:"level,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	Text            string   `json:"text,omitempty"`
	SuggestedAnswer string   `json:"suggestedAnswer,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Active          bool     `json:"active"`
	Utime           int64    `json:"utime,omitempty"`
}

func (q Question) toDomain() domain.Question {
	return domain.Question{
		Id:              q.Id,
		Category:        domain.Category(q.Category),
		Level:           domain.Level(q.Level),
		Difficulty:      domain.Difficulty(q.Difficulty),
		Text:            q.Text,
		SuggestedAnswer: q.SuggestedAnswer,
		Tags:            q.Tags,
		Active:          q.Active,
	}
}

func newQuestion(q domain.Question) Question {
	return Question{
		Id:              q.Id,
		Category:        q.Category.String(),
		Level:           q.Level.String(),
		Difficulty:      q.Difficulty.String(),
		Text:            q.Text,
		SuggestedAnswer: q.SuggestedAnswer,
		Tags:            q.Tags,
		Active:          q.Active,
		Utime:           q.Utime,
	}
}

type SaveReq struct {
	Question Question `json:"question"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type QuestionList struct {
	Total     int64      `json:"total"`
	Questions []Question `json:"questions"`
}

func newQuestionList(qs []domain.Question, total int64) QuestionList {
	return QuestionList{
		Total: total,
		Questions: slice.Map(qs, func(idx int, src domain.Question) Question {
			return newQuestion(src)
		}),
	}
}

type ClassifyReq struct {
	Resume string `json:"resume"`
	Job    string `json:"job"`
}

type Classification struct {
	Level      string   `json:"level"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

func newClassification(c domain.Classification) Classification {
	return Classification{
		Level: c.Level.String(),
		Categories: slice.Map(c.Categories, func(idx int, src domain.Category) string {
			return src.String()
		}),
		Tags: c.Tags,
	}
}
