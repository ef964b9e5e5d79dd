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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository/dao"
)

var ErrInterviewNotFound = dao.ErrRecordNotFound

type InterviewRepository interface {
	Create(ctx context.Context, itv domain.Interview) (int64, error)
	Update(ctx context.Context, itv domain.Interview) error
	FindById(ctx context.Context, id int64) (domain.Interview, error)
	FindByUid(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Interview, error)
	CountByUid(ctx context.Context, uid int64, filter domain.ListFilter) (int64, error)
	FindCompletedBetween(ctx context.Context, start, end int64, offset, limit int) ([]domain.Interview, error)
	Delete(ctx context.Context, id int64) error

	CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
	// FindMessages 按照时间正序
	FindMessages(ctx context.Context, interviewId int64) ([]domain.Message, error)
	// FindLatestMessages 取最新的 limit 条，返回的时候仍然是时间正序
	FindLatestMessages(ctx context.Context, interviewId int64, limit int) ([]domain.Message, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (repo *interviewRepository) Create(ctx context.Context, itv domain.Interview) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(itv))
}

func (repo *interviewRepository) Update(ctx context.Context, itv domain.Interview) error {
	return repo.dao.Update(ctx, repo.toEntity(itv))
}

func (repo *interviewRepository) FindById(ctx context.Context, id int64) (domain.Interview, error) {
	itv, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return repo.toDomain(itv), nil
}

func (repo *interviewRepository) FindByUid(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Interview, error) {
	itvs, err := repo.dao.FindByUid(ctx, uid, repo.toCond(filter))
	if err != nil {
		return nil, err
	}
	return slice.Map(itvs, func(idx int, src dao.Interview) domain.Interview {
		return repo.toDomain(src)
	}), nil
}

func (repo *interviewRepository) CountByUid(ctx context.Context, uid int64, filter domain.ListFilter) (int64, error) {
	return repo.dao.CountByUid(ctx, uid, repo.toCond(filter))
}

func (repo *interviewRepository) FindCompletedBetween(ctx context.Context, start, end int64, offset, limit int) ([]domain.Interview, error) {
	itvs, err := repo.dao.FindCompletedBetween(ctx, start, end, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(itvs, func(idx int, src dao.Interview) domain.Interview {
		return repo.toDomain(src)
	}), nil
}

func (repo *interviewRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *interviewRepository) CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error) {
	id, err := repo.dao.CreateMessage(ctx, repo.toMessageEntity(msg))
	msg.Id = id
	return msg, err
}

func (repo *interviewRepository) FindMessages(ctx context.Context, interviewId int64) ([]domain.Message, error) {
	msgs, err := repo.dao.FindMessages(ctx, interviewId)
	if err != nil {
		return nil, err
	}
	return slice.Map(msgs, func(idx int, src dao.Message) domain.Message {
		return repo.toMessageDomain(src)
	}), nil
}

func (repo *interviewRepository) FindLatestMessages(ctx context.Context, interviewId int64, limit int) ([]domain.Message, error) {
	msgs, err := repo.dao.FindLatestMessages(ctx, interviewId, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Message, len(msgs))
	for i, m := range msgs {
		res[len(msgs)-1-i] = repo.toMessageDomain(m)
	}
	return res, nil
}

func (repo *interviewRepository) toCond(filter domain.ListFilter) dao.ListCond {
	filter = filter.Normalize()
	return dao.ListCond{
		Status:  filter.Status.String(),
		Type:    filter.Type.String(),
		Offset:  filter.Offset,
		Limit:   filter.Limit,
		OrderBy: fmt.Sprintf("%s %s", filter.SortBy, filter.SortOrder),
	}
}

func (repo *interviewRepository) toEntity(itv domain.Interview) dao.Interview {
	completed := itv.Status == domain.StatusCompleted
	return dao.Interview{
		Id:          itv.Id,
		Uid:         itv.Uid,
		Type:        itv.Type.String(),
		Status:      itv.Status.String(),
		Resume:      itv.Resume,
		Job:         itv.Job,
		Feedback:    sql.NullString{String: itv.Feedback, Valid: completed},
		Insights:    sql.NullString{String: itv.Insights, Valid: completed},
		Score:       sql.NullInt64{Int64: int64(itv.Score), Valid: completed},
		StartedAt:   sqlx.NewNullInt64(itv.StartedAt),
		CompletedAt: sqlx.NewNullInt64(itv.CompletedAt),
		Ctime:       itv.Ctime,
		Utime:       itv.Utime,
	}
}

func (repo *interviewRepository) toDomain(itv dao.Interview) domain.Interview {
	return domain.Interview{
		Id:          itv.Id,
		Uid:         itv.Uid,
		Type:        domain.Type(itv.Type),
		Status:      domain.Status(itv.Status),
		Resume:      itv.Resume,
		Job:         itv.Job,
		Feedback:    itv.Feedback.String,
		Insights:    itv.Insights.String,
		Score:       int(itv.Score.Int64),
		StartedAt:   itv.StartedAt.Int64,
		CompletedAt: itv.CompletedAt.Int64,
		Ctime:       itv.Ctime,
		Utime:       itv.Utime,
	}
}

func (repo *interviewRepository) toMessageEntity(msg domain.Message) dao.Message {
	return dao.Message{
		Id:          msg.Id,
		InterviewId: msg.InterviewId,
		Role:        msg.Role.String(),
		Content:     msg.Content,
		Metadata: sqlx.JsonColumn[map[string]any]{
			Val:   msg.Metadata,
			Valid: len(msg.Metadata) > 0,
		},
		Ctime: msg.Ctime,
	}
}

func (repo *interviewRepository) toMessageDomain(msg dao.Message) domain.Message {
	return domain.Message{
		Id:          msg.Id,
		InterviewId: msg.InterviewId,
		Role:        domain.Role(msg.Role),
		Content:     msg.Content,
		Metadata:    msg.Metadata.Val,
		Ctime:       msg.Ctime,
	}
}
