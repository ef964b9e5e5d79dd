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

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScore = errors.New("分数必须在 0 到 100 之间")
	ErrInvalidCount = errors.New("计数不合法")
	ErrForbidden    = errors.New("无权查看该面试的分析报告")
	// ErrNotCompleted 只有结束了的面试才能分析
	ErrNotCompleted = errors.New("面试还没有结束")
)

type InterviewAnalytics struct {
	Id          int64
	InterviewId int64
	Uid         int64

	OverallScore         int
	CommunicationQuality int
	DepthOfKnowledge     int
	ClarityScore         int
	// AvgResponseTime 单位秒，用户消息少于两条的时候为 nil
	AvgResponseTime *int64
	// TotalDuration 单位分钟，消息少于两条的时候为 nil
	TotalDuration *int64
	TotalMessages int

	CategoryScores   []CategoryScore
	DifficultyScores []DifficultyScore

	Ctime int64
	Utime int64
}

func (a InterviewAnalytics) Validate() error {
	for _, s := range []int{a.OverallScore, a.CommunicationQuality, a.DepthOfKnowledge, a.ClarityScore} {
		if err := checkScore(s); err != nil {
			return err
		}
	}
	if a.AvgResponseTime != nil && *a.AvgResponseTime < 0 {
		return fmt.Errorf("%w: 平均响应时间 %d", ErrInvalidCount, *a.AvgResponseTime)
	}
	if a.TotalDuration != nil && *a.TotalDuration < 0 {
		return fmt.Errorf("%w: 总时长 %d", ErrInvalidCount, *a.TotalDuration)
	}
	if a.TotalMessages < 0 {
		return fmt.Errorf("%w: 消息数 %d", ErrInvalidCount, a.TotalMessages)
	}
	return nil
}

func (a InterviewAnalytics) BelongsTo(uid int64) bool {
	return a.Uid == uid
}

type CategoryScore struct {
	Id                int64
	Category          string
	Score             int
	QuestionsAnswered int
	QuestionsCorrect  int
}

func NewCategoryScore(category string, score, answered, correct int) (CategoryScore, error) {
	if err := checkScore(score); err != nil {
		return CategoryScore{}, err
	}
	if answered < 0 || correct < 0 || correct > answered {
		return CategoryScore{}, fmt.Errorf("%w: answered %d, correct %d", ErrInvalidCount, answered, correct)
	}
	return CategoryScore{
		Category:          category,
		Score:             score,
		QuestionsAnswered: answered,
		QuestionsCorrect:  correct,
	}, nil
}

type DifficultyScore struct {
	Id                int64
	Difficulty        string
	Score             int
	QuestionsAnswered int
}

func NewDifficultyScore(difficulty string, score, answered int) (DifficultyScore, error) {
	if err := checkScore(score); err != nil {
		return DifficultyScore{}, err
	}
	if answered < 0 {
		return DifficultyScore{}, fmt.Errorf("%w: answered %d", ErrInvalidCount, answered)
	}
	return DifficultyScore{
		Difficulty:        difficulty,
		Score:             score,
		QuestionsAnswered: answered,
	}, nil
}

func checkScore(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	return nil
}
