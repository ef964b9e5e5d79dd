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
	"database/sql"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository/cache"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAnalyticsNotFound   = dao.ErrRecordNotFound
	ErrDuplicatedAnalytics = dao.ErrDuplicated
)

type AnalyticsRepository interface {
	Create(ctx context.Context, a domain.InterviewAnalytics) (int64, error)
	// FindByInterviewId 返回报告以及全部分项得分
	FindByInterviewId(ctx context.Context, interviewId int64) (domain.InterviewAnalytics, error)
	FindAnalyzedInterviewIds(ctx context.Context, interviewIds []int64) ([]int64, error)
	// DeleteByInterviewId 删除报告并且淘汰缓存
	DeleteByInterviewId(ctx context.Context, interviewId int64) error
}

type CachedAnalyticsRepository struct {
	dao    dao.AnalyticsDAO
	cache  cache.AnalyticsCache
	logger *elog.Component
}

func NewCachedAnalyticsRepository(d dao.AnalyticsDAO, c cache.AnalyticsCache) AnalyticsRepository {
	return &CachedAnalyticsRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedAnalyticsRepository) Create(ctx context.Context, a domain.InterviewAnalytics) (int64, error) {
	cs := slice.Map(a.CategoryScores, func(idx int, src domain.CategoryScore) dao.CategoryScore {
		return dao.CategoryScore{
			Category:          src.Category,
			Score:             src.Score,
			QuestionsAnswered: src.QuestionsAnswered,
			QuestionsCorrect:  src.QuestionsCorrect,
		}
	})
	ds := slice.Map(a.DifficultyScores, func(idx int, src domain.DifficultyScore) dao.DifficultyScore {
		return dao.DifficultyScore{
			Difficulty:        src.Difficulty,
			Score:             src.Score,
			QuestionsAnswered: src.QuestionsAnswered,
		}
	})
	return repo.dao.Create(ctx, repo.toEntity(a), cs, ds)
}

func (repo *CachedAnalyticsRepository) FindByInterviewId(ctx context.Context, interviewId int64) (domain.InterviewAnalytics, error) {
	a, err := repo.cache.Get(ctx, interviewId)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, cache.ErrAnalyticsNotFound) {
		repo.logger.Error("从缓存中读取分析报告失败", elog.Int64("interviewId", interviewId), elog.FieldErr(err))
	}

	entity, err := repo.dao.FindByInterviewId(ctx, interviewId)
	if err != nil {
		return domain.InterviewAnalytics{}, err
	}
	var (
		eg errgroup.Group
		cs []dao.CategoryScore
		ds []dao.DifficultyScore
	)
	eg.Go(func() error {
		var err error
		cs, err = repo.dao.FindCategoryScores(ctx, entity.Id)
		return err
	})
	eg.Go(func() error {
		var err error
		ds, err = repo.dao.FindDifficultyScores(ctx, entity.Id)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.InterviewAnalytics{}, err
	}
	a = repo.toDomain(entity, cs, ds)
	if err = repo.cache.Set(ctx, a); err != nil {
		repo.logger.Error("回写分析报告缓存失败", elog.Int64("interviewId", interviewId), elog.FieldErr(err))
	}
	return a, nil
}

func (repo *CachedAnalyticsRepository) FindAnalyzedInterviewIds(ctx context.Context, interviewIds []int64) ([]int64, error) {
	return repo.dao.FindAnalyzedInterviewIds(ctx, interviewIds)
}

func (repo *CachedAnalyticsRepository) DeleteByInterviewId(ctx context.Context, interviewId int64) error {
	if err := repo.dao.DeleteByInterviewId(ctx, interviewId); err != nil {
		return err
	}
	return repo.cache.Delete(ctx, interviewId)
}

func (repo *CachedAnalyticsRepository) toEntity(a domain.InterviewAnalytics) dao.InterviewAnalytics {
	return dao.InterviewAnalytics{
		Id:                   a.Id,
		InterviewId:          a.InterviewId,
		Uid:                  a.Uid,
		OverallScore:         a.OverallScore,
		CommunicationQuality: a.CommunicationQuality,
		DepthOfKnowledge:     a.DepthOfKnowledge,
		ClarityScore:         a.ClarityScore,
		AvgResponseTime:      nullInt64(a.AvgResponseTime),
		TotalDuration:        nullInt64(a.TotalDuration),
		TotalMessages:        a.TotalMessages,
	}
}

func (repo *CachedAnalyticsRepository) toDomain(a dao.InterviewAnalytics,
	cs []dao.CategoryScore, ds []dao.DifficultyScore) domain.InterviewAnalytics {
	return domain.InterviewAnalytics{
		Id:                   a.Id,
		InterviewId:          a.InterviewId,
		Uid:                  a.Uid,
		OverallScore:         a.OverallScore,
		CommunicationQuality: a.CommunicationQuality,
		DepthOfKnowledge:     a.DepthOfKnowledge,
		ClarityScore:         a.ClarityScore,
		AvgResponseTime:      int64Ptr(a.AvgResponseTime),
		TotalDuration:        int64Ptr(a.TotalDuration),
		TotalMessages:        a.TotalMessages,
		CategoryScores: slice.Map(cs, func(idx int, src dao.CategoryScore) domain.CategoryScore {
			return domain.CategoryScore{
				Id:                src.Id,
				Category:          src.Category,
				Score:             src.Score,
				QuestionsAnswered: src.QuestionsAnswered,
				QuestionsCorrect:  src.QuestionsCorrect,
			}
		}),
		DifficultyScores: slice.Map(ds, func(idx int, src dao.DifficultyScore) domain.DifficultyScore {
			return domain.DifficultyScore{
				Id:                src.Id,
				Difficulty:        src.Difficulty,
				Score:             src.Score,
				QuestionsAnswered: src.QuestionsAnswered,
			}
		}),
		Ctime: a.Ctime,
		Utime: a.Utime,
	}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	res := v.Int64
	return &res
}
