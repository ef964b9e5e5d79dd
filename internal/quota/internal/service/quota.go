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
	"time"

	"github.com/ecodeclub/mockinterview/internal/quota/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/repository"
)

var ErrQuotaExceeded = errors.New("本月面试次数已经用完")

//go:generate mockgen -source=./quota.go -destination=../../mocks/quota.mock.go -package=quotamocks -typed=true Service
type Service interface {
	// Check 本月对应类型的面试次数还有剩余就返回 nil
	Check(ctx context.Context, uid int64, plan domain.Plan, kind domain.Kind) error
	Increment(ctx context.Context, uid int64, kind domain.Kind) error
	Usage(ctx context.Context, uid int64) (domain.Usage, error)
}

type service struct {
	repo   repository.UsageRepository
	limits domain.Limits
	now    func() time.Time
}

func NewService(repo repository.UsageRepository, limits domain.Limits) Service {
	return &service{
		repo:   repo,
		limits: limits,
		now:    time.Now,
	}
}

func (s *service) Check(ctx context.Context, uid int64, plan domain.Plan, kind domain.Kind) error {
	if !kind.Valid() {
		return domain.ErrInvalidKind
	}
	u, err := s.repo.FindByUidAndMonth(ctx, uid, domain.Month(s.now()))
	if err != nil {
		return err
	}
	if u.Used(kind) >= s.limits.Of(plan) {
		return ErrQuotaExceeded
	}
	return nil
}

func (s *service) Increment(ctx context.Context, uid int64, kind domain.Kind) error {
	if !kind.Valid() {
		return domain.ErrInvalidKind
	}
	return s.repo.Increment(ctx, uid, domain.Month(s.now()), kind)
}

func (s *service) Usage(ctx context.Context, uid int64) (domain.Usage, error) {
	return s.repo.FindByUidAndMonth(ctx, uid, domain.Month(s.now()))
}
