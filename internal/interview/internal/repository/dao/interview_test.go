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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMInterviewDAO_FindByUid(t *testing.T) {
	columns := []string{"id", "uid", "type", "status", "resume", "job", "feedback", "insights", "score", "started_at", "completed_at", "ctime", "utime"}
	testCases := []struct {
		name string
		cond ListCond
		mock func(t *testing.T) *sql.DB

		wantRes []Interview
		wantErr error
	}{
		{
			name: "按照状态过滤",
			cond: ListCond{Status: "COMPLETED", Limit: 10, OrderBy: "score asc"},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows(columns).
					AddRow(1, 2, "TEXT", "COMPLETED", "Go", "Backend", "bom", "estude", 85, 10, 20, 1, 20)
				mock.ExpectQuery("SELECT \\* FROM `interviews` WHERE uid = \\? AND status = \\? ORDER BY score asc .*").
					WillReturnRows(rows)
				return mockDB
			},
			wantRes: []Interview{
				{
					Id:          1,
					Uid:         2,
					Type:        "TEXT",
					Status:      "COMPLETED",
					Resume:      "Go",
					Job:         "Backend",
					Feedback:    sql.NullString{String: "bom", Valid: true},
					Insights:    sql.NullString{String: "estude", Valid: true},
					Score:       sql.NullInt64{Int64: 85, Valid: true},
					StartedAt:   sql.NullInt64{Int64: 10, Valid: true},
					CompletedAt: sql.NullInt64{Int64: 20, Valid: true},
					Ctime:       1,
					Utime:       20,
				},
			},
		},
		{
			name: "类型过滤并且分页",
			cond: ListCond{Type: "AUDIO", Offset: 10, Limit: 10, OrderBy: "ctime desc"},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("SELECT \\* FROM `interviews` WHERE uid = \\? AND type = \\? ORDER BY ctime desc LIMIT \\? OFFSET \\?").
					WillReturnRows(sqlmock.NewRows(columns))
				return mockDB
			},
			wantRes: []Interview{},
		},
		{
			name: "数据库错误",
			cond: ListCond{Limit: 10, OrderBy: "ctime desc"},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("SELECT \\* FROM `interviews` .*").
					WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dao := NewGORMInterviewDAO(openMockDB(t, tc.mock(t)))
			res, err := dao.FindByUid(context.Background(), 2, tc.cond)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.ElementsMatch(t, tc.wantRes, res)
		})
	}
}

func TestGORMInterviewDAO_Update(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `interviews` SET .* WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	dao := NewGORMInterviewDAO(openMockDB(t, mockDB))
	err = dao.Update(context.Background(), Interview{
		Id:     1,
		Status: "CANCELLED",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMInterviewDAO_FindLatestMessages(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"id", "interview_id", "role", "content", "metadata", "ctime"}).
		AddRow(3, 1, "USER", "resposta", nil, 30).
		AddRow(2, 1, "ASSISTANT", "pergunta", `{"tokens":12}`, 20)
	mock.ExpectQuery("SELECT \\* FROM `interview_messages` WHERE interview_id = \\? ORDER BY ctime DESC, id DESC LIMIT \\?").
		WillReturnRows(rows)
	dao := NewGORMInterviewDAO(openMockDB(t, mockDB))
	res, err := dao.FindLatestMessages(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(3), res[0].Id)
	assert.False(t, res[0].Metadata.Valid)
	assert.True(t, res[1].Metadata.Valid)
	assert.Equal(t, float64(12), res[1].Metadata.Val["tokens"])
}

func TestGORMInterviewDAO_Delete(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `interview_messages` WHERE interview_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `interview_questions` WHERE interview_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `interviews` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	dao := NewGORMInterviewDAO(openMockDB(t, mockDB))
	require.NoError(t, dao.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
