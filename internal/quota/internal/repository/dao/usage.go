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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type UsageDAO interface {
	FindByUidAndMonth(ctx context.Context, uid int64, month string) (UserUsage, error)
	// Increment 没有记录就插入，有记录就把对应的计数加一
	Increment(ctx context.Context, uid int64, month string, column string) error
}

type GORMUsageDAO struct {
	db *egorm.Component
}

func NewGORMUsageDAO(db *egorm.Component) UsageDAO {
	return &GORMUsageDAO{db: db}
}

func (d *GORMUsageDAO) FindByUidAndMonth(ctx context.Context, uid int64, month string) (UserUsage, error) {
	var res UserUsage
	err := d.db.WithContext(ctx).Where("uid = ? AND month = ?", uid, month).First(&res).Error
	return res, err
}

func (d *GORMUsageDAO) Increment(ctx context.Context, uid int64, month string, column string) error {
	now := time.Now().UnixMilli()
	u := UserUsage{
		Uid:   uid,
		Month: month,
		Ctime: now,
		Utime: now,
	}
	if column == ColumnAudioCount {
		u.AudioCount = 1
	} else {
		u.TextCount = 1
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			column:  gorm.Expr(column + " + 1"),
			"utime": now,
		}),
	}).Create(&u).Error
}

const (
	ColumnTextCount  = "text_count"
	ColumnAudioCount = "audio_count"
)

type UserUsage struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	Uid        int64  `gorm:"not null;uniqueIndex:uk_uid_month;comment:用户ID"`
	Month      string `gorm:"type:char(7);not null;uniqueIndex:uk_uid_month;comment:YYYY-MM"`
	TextCount  int    `gorm:"not null;default:0;comment:文字面试次数"`
	AudioCount int    `gorm:"not null;default:0;comment:语音面试次数"`
	Ctime      int64
	Utime      int64
}

func (UserUsage) TableName() string {
	return "user_usages"
}
