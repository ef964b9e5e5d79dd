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
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// askedThreshold 关键词足够多的时候，命中 70% 就认为问过了
	askedThreshold = 0.7
	minKeywords    = 3
)

// UsageTracker 记录面试分配了哪些题目，并且根据面试官说过的话推断哪些已经问过
type UsageTracker interface {
	// Record 重复的题目会被忽略
	Record(ctx context.Context, uid, interviewId int64, questionIds []int64) error
	// AskedQuestions 只看 ASSISTANT 的消息，返回已经问过的题目 ID
	AskedQuestions(questions []domain.Question, messages []domain.Message) []int64
}

type usageTracker struct {
	repo   repository.QuestionUsageRepository
	logger *elog.Component
}

func NewUsageTracker(repo repository.QuestionUsageRepository) UsageTracker {
	return &usageTracker{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (t *usageTracker) Record(ctx context.Context, uid, interviewId int64, questionIds []int64) error {
	ids := distinct(questionIds)
	switch len(ids) {
	case 0:
		return nil
	case 1:
		return t.recordOne(ctx, uid, interviewId, ids[0])
	}
	now := time.Now().UnixMilli()
	return t.repo.BulkCreate(ctx, slice.Map(ids, func(idx int, src int64) repository.Usage {
		return repository.Usage{
			InterviewId: interviewId,
			QuestionId:  src,
			Uid:         uid,
			AskedAt:     now,
		}
	}))
}

func (t *usageTracker) recordOne(ctx context.Context, uid, interviewId, questionId int64) error {
	used, err := t.repo.HasQuestionBeenUsed(ctx, interviewId, questionId)
	if err != nil {
		return err
	}
	if used {
		return nil
	}
	err = t.repo.Create(ctx, repository.Usage{
		InterviewId: interviewId,
		QuestionId:  questionId,
		Uid:         uid,
		AskedAt:     time.Now().UnixMilli(),
	})
	if errors.Is(err, repository.ErrDuplicatedUsage) {
		// 并发分配同一道题，唯一索引兜底
		t.logger.Warn("重复分配题目",
			elog.Int64("interviewId", interviewId),
			elog.Int64("questionId", questionId))
		return nil
	}
	return err
}

func (t *usageTracker) AskedQuestions(questions []domain.Question, messages []domain.Message) []int64 {
	said := slice.FilterMap(messages, func(idx int, src domain.Message) (string, bool) {
		return normalize(src.Content), src.FromAssistant()
	})
	res := make([]int64, 0, len(questions))
	if len(said) == 0 {
		return res
	}
	for _, q := range questions {
		if wasAsked(keywords(normalize(q.Text)), said) {
			res = append(res, q.Id)
		}
	}
	return res
}

// wasAsked 没有关键词的题目，面试官说过话就算问过了
func wasAsked(kws []string, said []string) bool {
	for _, s := range said {
		matched := 0
		for _, kw := range kws {
			if strings.Contains(s, kw) {
				matched++
			}
		}
		if len(kws) >= minKeywords {
			if float64(matched)/float64(len(kws)) >= askedThreshold {
				return true
			}
			continue
		}
		if matched == len(kws) {
			return true
		}
	}
	return false
}

var punctuation = strings.NewReplacer(
	".", "", ",", "", ";", "", ":", "", "!", "", "?", "",
	"(", "", ")", "", "[", "", "]", "", "{", "", "}", "",
	`"`, "", "'", "", "“", "", "”", "", "‘", "", "’", "",
)

// normalize 小写，去掉重音和标点，合并空白
func normalize(text string) string {
	text = strings.ToLower(text)
	// transformer 有状态，不能共享
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, text); err == nil {
		text = folded
	}
	return strings.Join(strings.Fields(punctuation.Replace(text)), " ")
}

// 去掉重音之后的葡萄牙语停用词
var stopwords = map[string]struct{}{
	"o": {}, "a": {}, "os": {}, "as": {}, "um": {}, "uma": {},
	"de": {}, "do": {}, "da": {}, "dos": {}, "das": {},
	"em": {}, "no": {}, "na": {}, "nos": {}, "nas": {},
	"para": {}, "com": {}, "por": {}, "e": {}, "ou": {},
	"que": {}, "qual": {}, "quais": {}, "como": {}, "quando": {}, "onde": {},
	"sao": {}, "ser": {}, "foi": {}, "eram": {},
	"voce": {}, "seu": {}, "sua": {}, "seus": {}, "suas": {},
	"me": {}, "te": {}, "se": {}, "lhe": {}, "sobre": {},
	"ele": {}, "ela": {},
}

func keywords(normalized string) []string {
	return slice.FilterMap(strings.Fields(normalized), func(idx int, src string) (string, bool) {
		if len([]rune(src)) <= 2 {
			return "", false
		}
		_, stop := stopwords[src]
		return src, !stop
	})
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
