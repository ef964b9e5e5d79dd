package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository/cache"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository/dao"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyticsDAO struct {
	rows    map[int64]dao.InterviewAnalytics
	cs      []dao.CategoryScore
	ds      []dao.DifficultyScore
	finds   int
	created dao.InterviewAnalytics
}

func (s *stubAnalyticsDAO) Create(_ context.Context, a dao.InterviewAnalytics,
	cs []dao.CategoryScore, ds []dao.DifficultyScore) (int64, error) {
	s.created, s.cs, s.ds = a, cs, ds
	return 7, nil
}

func (s *stubAnalyticsDAO) FindByInterviewId(_ context.Context, interviewId int64) (dao.InterviewAnalytics, error) {
	s.finds++
	a, ok := s.rows[interviewId]
	if !ok {
		return dao.InterviewAnalytics{}, dao.ErrRecordNotFound
	}
	return a, nil
}

func (s *stubAnalyticsDAO) FindCategoryScores(_ context.Context, _ int64) ([]dao.CategoryScore, error) {
	return s.cs, nil
}

func (s *stubAnalyticsDAO) FindDifficultyScores(_ context.Context, _ int64) ([]dao.DifficultyScore, error) {
	return s.ds, nil
}

func (s *stubAnalyticsDAO) FindAnalyzedInterviewIds(_ context.Context, interviewIds []int64) ([]int64, error) {
	res := make([]int64, 0, len(interviewIds))
	for _, id := range interviewIds {
		if _, ok := s.rows[id]; ok {
			res = append(res, id)
		}
	}
	return res, nil
}

func (s *stubAnalyticsDAO) DeleteByInterviewId(_ context.Context, interviewId int64) error {
	delete(s.rows, interviewId)
	return nil
}

func newTestRepo(t *testing.T, d dao.AnalyticsDAO) AnalyticsRepository {
	mr := miniredis.RunT(t)
	c := cache.NewAnalyticsECache(eredis.NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()})), time.Hour)
	return NewCachedAnalyticsRepository(d, c)
}

func TestCachedAnalyticsRepository_Create(t *testing.T) {
	d := &stubAnalyticsDAO{}
	repo := newTestRepo(t, d)
	zero := int64(0)
	id, err := repo.Create(context.Background(), domain.InterviewAnalytics{
		InterviewId:     1,
		Uid:             3,
		OverallScore:    85,
		AvgResponseTime: &zero,
		TotalMessages:   1,
		CategoryScores: []domain.CategoryScore{
			{Category: "BACKEND", Score: 85, QuestionsAnswered: 1, QuestionsCorrect: 1},
		},
		DifficultyScores: []domain.DifficultyScore{
			{Difficulty: "HARD", Score: 85, QuestionsAnswered: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	// 0 秒也是有效值，没有值才是 NULL
	assert.Equal(t, sql.NullInt64{Int64: 0, Valid: true}, d.created.AvgResponseTime)
	assert.Equal(t, sql.NullInt64{}, d.created.TotalDuration)
	assert.Equal(t, []dao.CategoryScore{
		{Category: "BACKEND", Score: 85, QuestionsAnswered: 1, QuestionsCorrect: 1},
	}, d.cs)
	assert.Equal(t, []dao.DifficultyScore{
		{Difficulty: "HARD", Score: 85, QuestionsAnswered: 1},
	}, d.ds)
}

func TestCachedAnalyticsRepository_FindByInterviewId(t *testing.T) {
	d := &stubAnalyticsDAO{
		rows: map[int64]dao.InterviewAnalytics{
			1: {
				Id:            7,
				InterviewId:   1,
				Uid:           3,
				OverallScore:  85,
				TotalDuration: sql.NullInt64{Int64: 10, Valid: true},
				TotalMessages: 4,
				Ctime:         100,
				Utime:         100,
			},
		},
		cs: []dao.CategoryScore{{Id: 1, AnalyticsId: 7, Category: "BACKEND", Score: 85, QuestionsAnswered: 2, QuestionsCorrect: 2}},
		ds: []dao.DifficultyScore{{Id: 2, AnalyticsId: 7, Difficulty: "HARD", Score: 85, QuestionsAnswered: 2}},
	}
	repo := newTestRepo(t, d)
	ctx := context.Background()

	duration := int64(10)
	want := domain.InterviewAnalytics{
		Id:            7,
		InterviewId:   1,
		Uid:           3,
		OverallScore:  85,
		TotalDuration: &duration,
		TotalMessages: 4,
		CategoryScores: []domain.CategoryScore{
			{Id: 1, Category: "BACKEND", Score: 85, QuestionsAnswered: 2, QuestionsCorrect: 2},
		},
		DifficultyScores: []domain.DifficultyScore{
			{Id: 2, Difficulty: "HARD", Score: 85, QuestionsAnswered: 2},
		},
		Ctime: 100,
		Utime: 100,
	}
	got, err := repo.FindByInterviewId(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Nil(t, got.AvgResponseTime)

	// 第二次走缓存
	got, err = repo.FindByInterviewId(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, d.finds)

	_, err = repo.FindByInterviewId(ctx, 2)
	assert.ErrorIs(t, err, ErrAnalyticsNotFound)

	ids, err := repo.FindAnalyzedInterviewIds(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

func TestCachedAnalyticsRepository_DeleteByInterviewId(t *testing.T) {
	d := &stubAnalyticsDAO{
		rows: map[int64]dao.InterviewAnalytics{
			1: {Id: 7, InterviewId: 1, Uid: 3, OverallScore: 85},
		},
	}
	repo := newTestRepo(t, d)
	ctx := context.Background()

	// 先把缓存填上
	_, err := repo.FindByInterviewId(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByInterviewId(ctx, 1))
	_, err = repo.FindByInterviewId(ctx, 1)
	assert.ErrorIs(t, err, ErrAnalyticsNotFound)
	// 缓存被淘汰了，第二次查询落到了数据库
	assert.Equal(t, 2, d.finds)
}
