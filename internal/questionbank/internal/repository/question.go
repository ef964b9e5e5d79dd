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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/repository/cache"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrQuestionNotFound = dao.ErrRecordNotFound

type QuestionRepository interface {
	Save(ctx context.Context, q domain.Question) (int64, error)
	SetActive(ctx context.Context, id int64, active bool) error
	FindById(ctx context.Context, id int64) (domain.Question, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Question, error)
	// FindByCriteria 分类、级别、难度是 AND，标签是 OR，标签在内存里过滤
	FindByCriteria(ctx context.Context, c domain.Criteria) ([]domain.Question, error)
	FindAll(ctx context.Context, offset, limit int) ([]domain.Question, error)
	Count(ctx context.Context) (int64, error)
	ExistByText(ctx context.Context, text string) (bool, error)
}

type CachedQuestionRepository struct {
	dao    dao.QuestionDAO
	cache  cache.QuestionCache
	logger *elog.Component
}

func NewCachedQuestionRepository(d dao.QuestionDAO, c cache.QuestionCache) QuestionRepository {
	return &CachedQuestionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedQuestionRepository) Save(ctx context.Context, q domain.Question) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(q))
	if err != nil {
		return 0, err
	}
	repo.evict(ctx, id)
	return id, nil
}

func (repo *CachedQuestionRepository) SetActive(ctx context.Context, id int64, active bool) error {
	err := repo.dao.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	repo.evict(ctx, id)
	return nil
}

func (repo *CachedQuestionRepository) FindById(ctx context.Context, id int64) (domain.Question, error) {
	q, err := repo.cache.Get(ctx, id)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, cache.ErrQuestionNotFound) {
		repo.logger.Error("从缓存中读取题目失败", elog.Int64("id", id), elog.FieldErr(err))
	}
	entity, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	q = repo.toDomain(entity)
	if err = repo.cache.Set(ctx, q); err != nil {
		repo.logger.Error("回写题目缓存失败", elog.Int64("id", id), elog.FieldErr(err))
	}
	return q, nil
}

func (repo *CachedQuestionRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Question, error) {
	entities, err := repo.dao.GetByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	// 按照传入的顺序返回，找不到的直接跳过
	m := make(map[int64]dao.Question, len(entities))
	for _, e := range entities {
		m[e.Id] = e
	}
	res := make([]domain.Question, 0, len(entities))
	for _, id := range ids {
		if e, ok := m[id]; ok {
			res = append(res, repo.toDomain(e))
		}
	}
	return res, nil
}

func (repo *CachedQuestionRepository) FindByCriteria(ctx context.Context, c domain.Criteria) ([]domain.Question, error) {
	entities, err := repo.dao.FindByCriteria(ctx, dao.Criteria{
		Categories:   slice.Map(c.Categories, func(idx int, src domain.Category) string { return src.String() }),
		Levels:       slice.Map(c.Levels, func(idx int, src domain.Level) string { return src.String() }),
		Difficulties: slice.Map(c.Difficulties, func(idx int, src domain.Difficulty) string { return src.String() }),
		Limit:        c.Limit,
		ExcludeIds:   c.ExcludeIds,
	})
	if err != nil {
		return nil, err
	}
	res := slice.Map(entities, func(idx int, src dao.Question) domain.Question {
		return repo.toDomain(src)
	})
	if len(c.Tags) == 0 {
		return res, nil
	}
	return slice.FilterMap(res, func(idx int, src domain.Question) (domain.Question, bool) {
		return src, src.HasAnyTag(c.Tags)
	}), nil
}

func (repo *CachedQuestionRepository) FindAll(ctx context.Context, offset, limit int) ([]domain.Question, error) {
	entities, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Question) domain.Question {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedQuestionRepository) Count(ctx context.Context) (int64, error) {
	return repo.dao.Count(ctx)
}

func (repo *CachedQuestionRepository) ExistByText(ctx context.Context, text string) (bool, error) {
	return repo.dao.ExistByText(ctx, text)
}

func (repo *CachedQuestionRepository) evict(ctx context.Context, id int64) {
	if err := repo.cache.Delete(ctx, id); err != nil {
		repo.logger.Error("删除题目缓存失败", elog.Int64("id", id), elog.FieldErr(err))
	}
}

func (repo *CachedQuestionRepository) toDomain(q dao.Question) domain.Question {
	return domain.Question{
		Id:              q.Id,
		Category:        domain.Category(q.Category),
		Level:           domain.Level(q.Level),
		Difficulty:      domain.Difficulty(q.Difficulty),
		Text:            q.Text,
		SuggestedAnswer: q.SuggestedAnswer,
		Tags:            q.Tags.Val,
		Active:          q.IsActive,
		Ctime:           q.Ctime,
		Utime:           q.Utime,
	}
}

func (repo *CachedQuestionRepository) toEntity(q domain.Question) dao.Question {
	return dao.Question{
		Id:              q.Id,
		Category:        q.Category.String(),
		Level:           q.Level.String(),
		Difficulty:      q.Difficulty.String(),
		Text:            q.Text,
		SuggestedAnswer: q.SuggestedAnswer,
		Tags: sqlx.JsonColumn[[]string]{
			Val:   q.Tags,
			Valid: len(q.Tags) > 0,
		},
		IsActive: q.Active,
	}
}
