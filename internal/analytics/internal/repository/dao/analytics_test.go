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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMAnalyticsDAO_Create(t *testing.T) {
	testCases := []struct {
		name string
		mock func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)

		wantId  int64
		wantErr error
	}{
		{
			name: "报告和分项一起写入",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `interview_analytics` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("INSERT INTO `analytics_category_scores` .*").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectExec("INSERT INTO `analytics_difficulty_scores` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
				return mockDB, mock
			},
			wantId: 7,
		},
		{
			name: "重复分析",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `interview_analytics` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: ErrDuplicated,
		},
		{
			name: "分项写入失败整体回滚",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `interview_analytics` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("INSERT INTO `analytics_category_scores` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			dao := NewGORMAnalyticsDAO(openMockDB(t, mockDB))
			id, err := dao.Create(context.Background(),
				InterviewAnalytics{InterviewId: 1, Uid: 3, OverallScore: 80},
				[]CategoryScore{{Category: "BACKEND", Score: 80, QuestionsAnswered: 2, QuestionsCorrect: 2},
					{Category: "GENERAL", Score: 80, QuestionsAnswered: 1, QuestionsCorrect: 1}},
				[]DifficultyScore{{Difficulty: "HARD", Score: 80, QuestionsAnswered: 3}})
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMAnalyticsDAO_FindByInterviewId(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `interview_analytics` WHERE interview_id = \\? ORDER BY .* LIMIT \\?").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "interview_id", "uid", "overall_score", "avg_response_time", "total_duration", "total_messages"}).
			AddRow(7, 1, 3, 80, nil, 10, 4))
	dao := NewGORMAnalyticsDAO(openMockDB(t, mockDB))
	res, err := dao.FindByInterviewId(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, InterviewAnalytics{
		Id:            7,
		InterviewId:   1,
		Uid:           3,
		OverallScore:  80,
		TotalDuration: sql.NullInt64{Int64: 10, Valid: true},
		TotalMessages: 4,
	}, res)
}

func TestGORMAnalyticsDAO_FindAnalyzedInterviewIds(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT `interview_id` FROM `interview_analytics` WHERE interview_id IN \\(\\?,\\?,\\?\\)").
		WithArgs(1, 2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"interview_id"}).AddRow(2))
	dao := NewGORMAnalyticsDAO(openMockDB(t, mockDB))
	ids, err := dao.FindAnalyzedInterviewIds(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	// 空集合不查数据库
	ids, err = dao.FindAnalyzedInterviewIds(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMAnalyticsDAO_DeleteByInterviewId(t *testing.T) {
	testCases := []struct {
		name string
		mock func(mock sqlmock.Sqlmock)

		wantErr error
	}{
		{
			name: "报告和分项一起删除",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `interview_analytics` WHERE interview_id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id", "interview_id"}).AddRow(7, 1))
				mock.ExpectExec("DELETE FROM `analytics_category_scores` WHERE analytics_id = \\?").
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("DELETE FROM `analytics_difficulty_scores` WHERE analytics_id = \\?").
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `interview_analytics` WHERE id = \\?").
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "没有报告",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `interview_analytics` WHERE interview_id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id", "interview_id"}))
				mock.ExpectCommit()
			},
		},
		{
			name: "删除分项失败整体回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `interview_analytics` WHERE interview_id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id", "interview_id"}).AddRow(7, 1))
				mock.ExpectExec("DELETE FROM `analytics_category_scores` WHERE analytics_id = \\?").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			dao := NewGORMAnalyticsDAO(openMockDB(t, mockDB))
			err = dao.DeleteByInterviewId(context.Background(), 1)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func openMockDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
