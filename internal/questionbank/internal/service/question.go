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
	"errors"

	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrQuestionNotFound = errors.New("题目不存在")

//go:generate mockgen -source=./question.go -destination=../../mocks/question.mock.go -package=qbmocks -typed=true Service
type Service interface {
	Save(ctx context.Context, q domain.Question) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Question, error)
	List(ctx context.Context, offset, limit int) ([]domain.Question, int64, error)
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	// FindByIds 找不到的会被跳过，顺序和 ids 一致
	FindByIds(ctx context.Context, ids []int64) ([]domain.Question, error)
	// Seed 导入题目，题目内容已经存在的跳过，返回真正插入的数量
	Seed(ctx context.Context, qs []domain.Question) (int, error)
}

type service struct {
	repo   repository.QuestionRepository
	logger *elog.Component
}

func NewService(repo repository.QuestionRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, q domain.Question) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, q)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Question, error) {
	q, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrQuestionNotFound) {
		return domain.Question{}, ErrQuestionNotFound
	}
	return q, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Question, int64, error) {
	var (
		eg    errgroup.Group
		qs    []domain.Question
		total int64
	)
	eg.Go(func() error {
		var err error
		qs, err = s.repo.FindAll(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return qs, total, eg.Wait()
}

func (s *service) Activate(ctx context.Context, id int64) error {
	return s.repo.SetActive(ctx, id, true)
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	return s.repo.SetActive(ctx, id, false)
}

func (s *service) FindByIds(ctx context.Context, ids []int64) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}
	return s.repo.FindByIds(ctx, ids)
}

func (s *service) Seed(ctx context.Context, qs []domain.Question) (int, error) {
	cnt := 0
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			s.logger.Warn("跳过非法的种子题目", elog.String("text", q.Text), elog.FieldErr(err))
			continue
		}
		exist, err := s.repo.ExistByText(ctx, q.Text)
		if err != nil {
			return cnt, err
		}
		if exist {
			continue
		}
		q.Active = true
		if _, err = s.repo.Save(ctx, q); err != nil {
			return cnt, err
		}
		cnt++
	}
	return cnt, nil
}
