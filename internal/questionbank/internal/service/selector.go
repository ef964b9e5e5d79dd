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

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/repository"
)

const (
	DefaultMaxQuestions = 5
	// 多查一些，给后面的均衡挑选留余地
	overFetchFactor = 3
)

type SelectRequest struct {
	Classification domain.Classification
	ExcludeIds     []int64
	// 负数表示用默认值
	Max int
}

//go:generate mockgen -source=./selector.go -destination=../../mocks/selector.mock.go -package=qbmocks -typed=true Selector
type Selector interface {
	// Select 返回的题目互不相同，不会包含 ExcludeIds，数量不超过 Max
	// 题库不够的时候返回能找到的，不会报错
	Select(ctx context.Context, req SelectRequest) ([]domain.Question, error)
}

type balancedSelector struct {
	repo repository.QuestionRepository
}

func NewSelector(repo repository.QuestionRepository) Selector {
	return &balancedSelector{repo: repo}
}

func (s *balancedSelector) Select(ctx context.Context, req SelectRequest) ([]domain.Question, error) {
	limit := req.Max
	if limit < 0 {
		limit = DefaultMaxQuestions
	}
	if limit == 0 {
		return []domain.Question{}, nil
	}
	cls := req.Classification
	fetched, err := s.repo.FindByCriteria(ctx, domain.Criteria{
		Categories: cls.Categories,
		Levels:     []domain.Level{cls.Level},
		Tags:       cls.Tags,
		Limit:      limit * overFetchFactor,
		ExcludeIds: req.ExcludeIds,
	})
	if err != nil {
		return nil, err
	}
	pool := s.distinct(fetched, req.ExcludeIds)
	if len(pool) <= limit {
		return pool, nil
	}
	return s.balance(pool, cls.Categories, limit), nil
}

// distinct 去重，顺便把排除的题目再过滤一遍
func (s *balancedSelector) distinct(questions []domain.Question, exclude []int64) []domain.Question {
	seen := make(map[int64]struct{}, len(questions)+len(exclude))
	for _, id := range exclude {
		seen[id] = struct{}{}
	}
	res := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.Id]; ok {
			continue
		}
		seen[q.Id] = struct{}{}
		res = append(res, q)
	}
	return res
}

// balance 每个分类最多 ceil(limit/分类数) 道，不够再按原顺序补齐
func (s *balancedSelector) balance(pool []domain.Question, categories []domain.Category, limit int) []domain.Question {
	selected := make([]domain.Question, 0, limit)
	picked := make(map[int64]struct{}, limit)

	if len(categories) > 0 {
		buckets := mapx.NewMultiBuiltinMap[domain.Category, domain.Question](len(categories))
		for _, q := range pool {
			_ = buckets.Put(q.Category, q)
		}
		perCategory := (limit + len(categories) - 1) / len(categories)
		for _, cat := range categories {
			if len(selected) >= limit {
				break
			}
			bucket, _ := buckets.Get(cat)
			taken := 0
			for _, q := range bucket {
				if taken >= perCategory || len(selected) >= limit {
					break
				}
				if _, ok := picked[q.Id]; ok {
					continue
				}
				selected = append(selected, q)
				picked[q.Id] = struct{}{}
				taken++
			}
		}
	}

	for _, q := range pool {
		if len(selected) >= limit {
			break
		}
		if _, ok := picked[q.Id]; ok {
			continue
		}
		selected = append(selected, q)
		picked[q.Id] = struct{}{}
	}
	return selected[:min(len(selected), limit)]
}
