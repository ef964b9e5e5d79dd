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
	"errors"

	"github.com/ecodeclub/mockinterview/internal/quota/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/repository/dao"
)

type UsageRepository interface {
	// FindByUidAndMonth 没有记录的时候返回计数都是 0 的 Usage
	FindByUidAndMonth(ctx context.Context, uid int64, month string) (domain.Usage, error)
	Increment(ctx context.Context, uid int64, month string, kind domain.Kind) error
}

type usageRepository struct {
	dao dao.UsageDAO
}

func NewUsageRepository(d dao.UsageDAO) UsageRepository {
	return &usageRepository{dao: d}
}

func (r *usageRepository) FindByUidAndMonth(ctx context.Context, uid int64, month string) (domain.Usage, error) {
	u, err := r.dao.FindByUidAndMonth(ctx, uid, month)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Usage{Uid: uid, Month: month}, nil
	}
	if err != nil {
		return domain.Usage{}, err
	}
	return domain.Usage{
		Uid:        u.Uid,
		Month:      u.Month,
		TextCount:  u.TextCount,
		AudioCount: u.AudioCount,
	}, nil
}

func (r *usageRepository) Increment(ctx context.Context, uid int64, month string, kind domain.Kind) error {
	column := dao.ColumnTextCount
	if kind == domain.KindAudio {
		column = dao.ColumnAudioCount
	}
	return r.dao.Increment(ctx, uid, month, column)
}
