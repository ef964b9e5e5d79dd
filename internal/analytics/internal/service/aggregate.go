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

package service

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview"
)

const (
	// passScore 总分达到这个值，这场面试的题目都算答对
	passScore    = 70
	defaultScore = 50
)

var technicalTerms = []string{
	"arquitetura",
	"performance",
	"otimização",
	"escalabilidade",
	"refatoração",
	"design pattern",
	"solid",
	"microservices",
	"api",
	"database",
	"cache",
	"docker",
	"kubernetes",
	"ci/cd",
}

// aggregate 从面试记录里面算出报告，不读写存储
func aggregate(snap interview.Snapshot) (domain.InterviewAnalytics, error) {
	itv := snap.Interview
	users := slice.FilterMap(snap.Messages, func(idx int, src interview.Message) (interview.Message, bool) {
		return src, src.FromUser()
	})

	categories := newBuckets(slice.Map(snap.Questions, func(idx int, src interview.UsedQuestion) string {
		return src.Category
	}), itv.Score)
	cs := make([]domain.CategoryScore, 0, len(categories))
	for _, b := range categories {
		c, err := domain.NewCategoryScore(b.key, b.score(), b.count, b.correct)
		if err != nil {
			return domain.InterviewAnalytics{}, err
		}
		cs = append(cs, c)
	}

	difficulties := newBuckets(slice.Map(snap.Questions, func(idx int, src interview.UsedQuestion) string {
		return src.Difficulty
	}), itv.Score)
	ds := make([]domain.DifficultyScore, 0, len(difficulties))
	for _, b := range difficulties {
		d, err := domain.NewDifficultyScore(b.key, b.score(), b.count)
		if err != nil {
			return domain.InterviewAnalytics{}, err
		}
		ds = append(ds, d)
	}

	res := domain.InterviewAnalytics{
		InterviewId:          itv.Id,
		Uid:                  itv.Uid,
		OverallScore:         itv.Score,
		CommunicationQuality: communicationQuality(users),
		DepthOfKnowledge:     depthOfKnowledge(users),
		ClarityScore:         clarityScore(users),
		AvgResponseTime:      avgResponseTime(users),
		TotalDuration:        totalDuration(snap.Messages),
		TotalMessages:        len(snap.Messages),
		CategoryScores:       cs,
		DifficultyScores:     ds,
	}
	return res, res.Validate()
}

// bucket 没有单题得分，每道题都记一次面试总分
type bucket struct {
	key     string
	count   int
	total   int
	correct int
}

func (b bucket) score() int {
	if b.count == 0 {
		return 0
	}
	return int(math.Round(float64(b.total) / float64(b.count)))
}

// newBuckets 按照第一次出现的顺序分组
func newBuckets(keys []string, score int) []bucket {
	res := make([]bucket, 0, len(keys))
	idx := make(map[string]int, len(keys))
	for _, key := range keys {
		i, ok := idx[key]
		if !ok {
			i = len(res)
			idx[key] = i
			res = append(res, bucket{key: key})
		}
		res[i].count++
		res[i].total += score
		if score >= passScore {
			res[i].correct++
		}
	}
	return res
}

func communicationQuality(users []interview.Message) int {
	if len(users) == 0 {
		return defaultScore
	}
	total := 0
	for _, msg := range users {
		total += utf8.RuneCountInString(msg.Content)
	}
	avg := float64(total) / float64(len(users))
	switch {
	case avg < 50:
		return 40
	case avg > 1000:
		return 60
	case avg >= 100 && avg <= 500:
		return 80
	default:
		return 70
	}
}

func depthOfKnowledge(users []interview.Message) int {
	if len(users) == 0 {
		return defaultScore
	}
	hits := 0
	for _, msg := range users {
		content := strings.ToLower(msg.Content)
		for _, term := range technicalTerms {
			if strings.Contains(content, term) {
				hits++
			}
		}
	}
	avg := float64(hits) / float64(len(users))
	switch {
	case avg >= 3:
		return 90
	case avg >= 2:
		return 75
	case avg >= 1:
		return 60
	default:
		return defaultScore
	}
}

// clarityScore 有标点并且多于三个词的回答算结构清晰
func clarityScore(users []interview.Message) int {
	if len(users) == 0 {
		return defaultScore
	}
	wellStructured := 0
	for _, msg := range users {
		if strings.ContainsAny(msg.Content, ".!?") && len(strings.Fields(msg.Content)) > 3 {
			wellStructured++
		}
	}
	return int(math.Round(float64(wellStructured) / float64(len(users)) * 100))
}

// avgResponseTime 相邻两条用户消息间隔的平均值，单位秒
func avgResponseTime(users []interview.Message) *int64 {
	if len(users) < 2 {
		return nil
	}
	// 相邻间隔之和就是首尾之差
	gap := users[len(users)-1].Ctime - users[0].Ctime
	res := int64(math.Round(float64(gap) / float64(len(users)-1) / 1000))
	return &res
}

// totalDuration 第一条到最后一条消息的时长，单位分钟
func totalDuration(msgs []interview.Message) *int64 {
	if len(msgs) < 2 {
		return nil
	}
	res := int64(math.Round(float64(msgs[len(msgs)-1].Ctime-msgs[0].Ctime) / 60000))
	return &res
}
