package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsECache(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewAnalyticsECache(eredis.NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()})), time.Hour)
	ctx := context.Background()

	_, err := c.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrAnalyticsNotFound)

	duration := int64(10)
	a := domain.InterviewAnalytics{
		Id:                   7,
		InterviewId:          1,
		Uid:                  3,
		OverallScore:         85,
		CommunicationQuality: 80,
		DepthOfKnowledge:     60,
		ClarityScore:         100,
		TotalDuration:        &duration,
		TotalMessages:        4,
		CategoryScores: []domain.CategoryScore{
			{Id: 1, Category: "BACKEND", Score: 85, QuestionsAnswered: 1, QuestionsCorrect: 1},
		},
		DifficultyScores: []domain.DifficultyScore{
			{Id: 1, Difficulty: "HARD", Score: 85, QuestionsAnswered: 1},
		},
	}
	require.NoError(t, c.Set(ctx, a))
	assert.True(t, mr.Exists("analytics:interview:1"))

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Nil(t, got.AvgResponseTime)

	require.NoError(t, c.Delete(ctx, 1))
	assert.False(t, mr.Exists("analytics:interview:1"))
	_, err = c.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrAnalyticsNotFound)
	// 删除不存在的 key 不报错
	assert.NoError(t, c.Delete(ctx, 1))
}
