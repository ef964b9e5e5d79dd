// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
)

type StartReq struct {
	Type   string `json:"type"`
	Resume string `json:"resume"`
	Job    string `json:"job"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type MessageReq struct {
	Id      int64  `json:"id"`
	Content string `json:"content"`
}

type RecentReq struct {
	Id    int64 `json:"id"`
	Limit int   `json:"limit,omitempty"`
}

type ListReq struct {
	Status    string `json:"status,omitempty"`
	Type      string `json:"type,omitempty"`
	Offset    int    `json:"offset,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

func (r ListReq) toDomain() domain.ListFilter {
	return domain.ListFilter{
		Status:    domain.Status(r.Status),
		Type:      domain.Type(r.Type),
		Offset:    r.Offset,
		Limit:     r.Limit,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

type Interview struct {
	Id          int64  `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Resume      string `json:"resume"`
	Job         string `json:"job"`
	Feedback    string `json:"feedback,omitempty"`
	Insights    string `json:"insights,omitempty"`
	Score       *int   `json:"score,omitempty"`
	StartedAt   int64  `json:"startedAt,omitempty"`
	CompletedAt int64  `json:"completedAt,omitempty"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

func newInterview(itv domain.Interview) Interview {
	res := Interview{
		Id:          itv.Id,
		Type:        itv.Type.String(),
		Status:      itv.Status.String(),
		Resume:      itv.Resume,
		Job:         itv.Job,
		StartedAt:   itv.StartedAt,
		CompletedAt: itv.CompletedAt,
		Ctime:       itv.Ctime,
		Utime:       itv.Utime,
	}
	// 只有结束了的面试才有评价，0 分也是合法的分数
	if itv.IsCompleted() {
		score := itv.Score
		res.Score = &score
		res.Feedback = itv.Feedback
		res.Insights = itv.Insights
	}
	return res
}

type Message struct {
	Id       int64          `json:"id"`
	Role     string         `json:"role"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Ctime    int64          `json:"ctime"`
}

func newMessage(msg domain.Message) Message {
	return Message{
		Id:       msg.Id,
		Role:     msg.Role.String(),
		Content:  msg.Content,
		Metadata: msg.Metadata,
		Ctime:    msg.Ctime,
	}
}

func newMessages(msgs []domain.Message) []Message {
	return slice.Map(msgs, func(idx int, src domain.Message) Message {
		return newMessage(src)
	})
}

type Question struct {
	Id         int64  `json:"id"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Text       string `json:"text"`
}

type StartResp struct {
	Interview    Interview  `json:"interview"`
	FirstMessage Message    `json:"firstMessage"`
	Questions    []Question `json:"questions"`
}

func newStartResp(res service.StartResult) StartResp {
	return StartResp{
		Interview:    newInterview(res.Interview),
		FirstMessage: newMessage(res.FirstMessage),
		Questions: slice.Map(res.Questions, func(idx int, src domain.Question) Question {
			return Question{
				Id:         src.Id,
				Category:   src.Category,
				Difficulty: src.Difficulty,
				Text:       src.Text,
			}
		}),
	}
}

type MessageResp struct {
	UserMessage      Message `json:"userMessage"`
	AssistantMessage Message `json:"assistantMessage"`
}

type HistoryResp struct {
	Interview Interview `json:"interview"`
	Messages  []Message `json:"messages"`
}

type InterviewList struct {
	Total      int64       `json:"total"`
	Interviews []Interview `json:"interviews"`
}

func newInterviewList(itvs []domain.Interview, total int64) InterviewList {
	return InterviewList{
		Total: total,
		Interviews: slice.Map(itvs, func(idx int, src domain.Interview) Interview {
			return newInterview(src)
		}),
	}
}
