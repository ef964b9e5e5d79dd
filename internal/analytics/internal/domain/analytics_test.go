package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategoryScore(t *testing.T) {
	testCases := []struct {
		name     string
		score    int
		answered int
		correct  int

		wantErr error
	}{
		{name: "合法", score: 85, answered: 2, correct: 2},
		{name: "全部为 0", score: 0, answered: 0, correct: 0},
		{name: "分数越界", score: 101, answered: 1, wantErr: ErrInvalidScore},
		{name: "负分", score: -1, answered: 1, wantErr: ErrInvalidScore},
		{name: "答对比回答多", score: 80, answered: 1, correct: 2, wantErr: ErrInvalidCount},
		{name: "负数", score: 80, answered: -1, correct: -1, wantErr: ErrInvalidCount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := NewCategoryScore("BACKEND", tc.score, tc.answered, tc.correct)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, CategoryScore{
					Category:          "BACKEND",
					Score:             tc.score,
					QuestionsAnswered: tc.answered,
					QuestionsCorrect:  tc.correct,
				}, cs)
			}
		})
	}
}

func TestNewDifficultyScore(t *testing.T) {
	_, err := NewDifficultyScore("HARD", 100, 3)
	assert.NoError(t, err)
	_, err = NewDifficultyScore("HARD", 120, 3)
	assert.ErrorIs(t, err, ErrInvalidScore)
	_, err = NewDifficultyScore("HARD", 50, -3)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestInterviewAnalytics_Validate(t *testing.T) {
	negative := int64(-1)
	ok := InterviewAnalytics{OverallScore: 80, CommunicationQuality: 40, DepthOfKnowledge: 50, ClarityScore: 100}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.ClarityScore = 101
	assert.ErrorIs(t, bad.Validate(), ErrInvalidScore)

	bad = ok
	bad.TotalDuration = &negative
	assert.ErrorIs(t, bad.Validate(), ErrInvalidCount)

	bad = ok
	bad.TotalMessages = -2
	assert.ErrorIs(t, bad.Validate(), ErrInvalidCount)
}
