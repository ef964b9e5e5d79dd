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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository/dao"
)

var ErrDuplicatedUsage = dao.ErrDuplicated

// Usage 面试和题库题目的关联
type Usage struct {
	InterviewId int64
	QuestionId  int64
	Uid         int64
	AskedAt     int64
}

type QuestionUsageRepository interface {
	Create(ctx context.Context, u Usage) error
	BulkCreate(ctx context.Context, us []Usage) error
	// FindByInterviewId 按照分配时间排序
	FindByInterviewId(ctx context.Context, interviewId int64) ([]Usage, error)
	FindQuestionIdsByInterviewId(ctx context.Context, interviewId int64) ([]int64, error)
	HasQuestionBeenUsed(ctx context.Context, interviewId, questionId int64) (bool, error)
	DeleteByInterviewId(ctx context.Context, interviewId int64) error
	FindQuestionIdsByUid(ctx context.Context, uid int64) ([]int64, error)
}

type questionUsageRepository struct {
	dao dao.QuestionUsageDAO
}

func NewQuestionUsageRepository(d dao.QuestionUsageDAO) QuestionUsageRepository {
	return &questionUsageRepository{dao: d}
}

func (repo *questionUsageRepository) Create(ctx context.Context, u Usage) error {
	return repo.dao.Create(ctx, repo.toEntity(u))
}

func (repo *questionUsageRepository) BulkCreate(ctx context.Context, us []Usage) error {
	return repo.dao.BulkCreate(ctx, slice.Map(us, func(idx int, src Usage) dao.InterviewQuestion {
		return repo.toEntity(src)
	}))
}

func (repo *questionUsageRepository) FindByInterviewId(ctx context.Context, interviewId int64) ([]Usage, error) {
	qs, err := repo.dao.FindByInterviewId(ctx, interviewId)
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(idx int, src dao.InterviewQuestion) Usage {
		return Usage{
			InterviewId: src.InterviewId,
			QuestionId:  src.QuestionId,
			Uid:         src.Uid,
			AskedAt:     src.AskedAt,
		}
	}), nil
}

func (repo *questionUsageRepository) FindQuestionIdsByInterviewId(ctx context.Context, interviewId int64) ([]int64, error) {
	us, err := repo.FindByInterviewId(ctx, interviewId)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src Usage) int64 {
		return src.QuestionId
	}), nil
}

func (repo *questionUsageRepository) HasQuestionBeenUsed(ctx context.Context, interviewId, questionId int64) (bool, error) {
	return repo.dao.Exist(ctx, interviewId, questionId)
}

func (repo *questionUsageRepository) DeleteByInterviewId(ctx context.Context, interviewId int64) error {
	return repo.dao.DeleteByInterviewId(ctx, interviewId)
}

func (repo *questionUsageRepository) FindQuestionIdsByUid(ctx context.Context, uid int64) ([]int64, error) {
	return repo.dao.FindQuestionIdsByUid(ctx, uid)
}

func (repo *questionUsageRepository) toEntity(u Usage) dao.InterviewQuestion {
	return dao.InterviewQuestion{
		InterviewId: u.InterviewId,
		QuestionId:  u.QuestionId,
		Uid:         u.Uid,
		AskedAt:     u.AskedAt,
	}
}
