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
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
)

type IdReq struct {
	// Id 面试 ID
	Id int64 `json:"id"`
}

type Analytics struct {
	Id                   int64             `json:"id"`
	InterviewId          int64             `json:"interviewId"`
	OverallScore         int               `json:"overallScore"`
	CommunicationQuality int               `json:"communicationQuality"`
	DepthOfKnowledge     int               `json:"depthOfKnowledge"`
	ClarityScore         int               `json:"clarityScore"`
	AvgResponseTime      *int64            `json:"avgResponseTime"`
	TotalDuration        *int64            `json:"totalDuration"`
	TotalMessages        int               `json:"totalMessages"`
	CategoryScores       []CategoryScore   `json:"categoryScores"`
	DifficultyScores     []DifficultyScore `json:"difficultyScores"`
	Ctime                int64             `json:"ctime"`
}

type CategoryScore struct {
	Category          string `json:"category"`
	Score             int    `json:"score"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	QuestionsCorrect  int    `json:"questionsCorrect"`
}

type DifficultyScore struct {
	Difficulty        string `json:"difficulty"`
	Score             int    `json:"score"`
	QuestionsAnswered int    `json:"questionsAnswered"`
}

func newAnalytics(a domain.InterviewAnalytics) Analytics {
	return Analytics{
		Id:                   a.Id,
		InterviewId:          a.InterviewId,
		OverallScore:         a.OverallScore,
		CommunicationQuality: a.CommunicationQuality,
		DepthOfKnowledge:     a.DepthOfKnowledge,
		ClarityScore:         a.ClarityScore,
		AvgResponseTime:      a.AvgResponseTime,
		TotalDuration:        a.TotalDuration,
		TotalMessages:        a.TotalMessages,
		CategoryScores: slice.Map(a.CategoryScores, func(idx int, src domain.CategoryScore) CategoryScore {
			return CategoryScore{
				Category:          src.Category,
				Score:             src.Score,
				QuestionsAnswered: src.QuestionsAnswered,
				QuestionsCorrect:  src.QuestionsCorrect,
			}
		}),
		DifficultyScores: slice.Map(a.DifficultyScores, func(idx int, src domain.DifficultyScore) DifficultyScore {
			return DifficultyScore{
				Difficulty:        src.Difficulty,
				Score:             src.Score,
				QuestionsAnswered: src.QuestionsAnswered,
			}
		}),
		Ctime: a.Ctime,
	}
}
