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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 查询的默认上限
const defaultQueryLimit = 100

var ErrRecordNotFound = gorm.ErrRecordNotFound

type QuestionDAO interface {
	Save(ctx context.Context, q Question) (int64, error)
	SetActive(ctx context.Context, id int64, active bool) error
	GetById(ctx context.Context, id int64) (Question, error)
	GetByIds(ctx context.Context, ids []int64) ([]Question, error)
	FindByCriteria(ctx context.Context, c Criteria) ([]Question, error)
	List(ctx context.Context, offset, limit int) ([]Question, error)
	Count(ctx context.Context) (int64, error)
	// ExistByText 种子数据用来去重
	ExistByText(ctx context.Context, text string) (bool, error)
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (dao *GORMQuestionDAO) Save(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"category":         q.Category,
			"level":            q.Level,
			"difficulty":       q.Difficulty,
			"text":             q.Text,
			"suggested_answer": q.SuggestedAnswer,
			"tags":             q.Tags,
			"is_active":        q.IsActive,
			"utime":            now,
		}),
	}).Create(&q).Error
	return q.Id, err
}

func (dao *GORMQuestionDAO) SetActive(ctx context.Context, id int64, active bool) error {
	return dao.db.WithContext(ctx).Model(&Question{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active": active,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMQuestionDAO) GetById(ctx context.Context, id int64) (Question, error) {
	var q Question
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	return q, err
}

func (dao *GORMQuestionDAO) GetByIds(ctx context.Context, ids []int64) ([]Question, error) {
	var res []Question
	if len(ids) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

// FindByCriteria 标签不在这里过滤，JSON 列没办法高效地按集合查询
func (dao *GORMQuestionDAO) FindByCriteria(ctx context.Context, c Criteria) ([]Question, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	db := dao.db.WithContext(ctx).Where("is_active = ?", true)
	if len(c.Categories) > 0 {
		db = db.Where("category IN ?", c.Categories)
	}
	if len(c.Levels) > 0 {
		db = db.Where("level IN ?", c.Levels)
	}
	if len(c.Difficulties) > 0 {
		db = db.Where("difficulty IN ?", c.Difficulties)
	}
	if len(c.ExcludeIds) > 0 {
		db = db.Where("id NOT IN ?", c.ExcludeIds)
	}
	var res []Question
	err := db.Order("ctime DESC").Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMQuestionDAO) List(ctx context.Context, offset, limit int) ([]Question, error) {
	var res []Question
	err := dao.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMQuestionDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&Question{}).Count(&res).Error
	return res, err
}

func (dao *GORMQuestionDAO) ExistByText(ctx context.Context, text string) (bool, error) {
	var q Question
	err := dao.db.WithContext(ctx).Select("id").Where("text = ?", text).First(&q).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

type Criteria struct {
	Categories   []string
	Levels       []string
	Difficulties []string
	Limit        int
	ExcludeIds   []int64
}

type Question struct {
	Id              int64                     `gorm:"primaryKey,autoIncrement"`
	Category        string                    `gorm:"type:varchar(32);index:idx_category_level,priority:1;comment:技术分类"`
	Level           string                    `gorm:"type:varchar(16);index:idx_category_level,priority:2;comment:JUNIOR/PLENO/SENIOR/STAFF/PRINCIPAL"`
	Difficulty      string                    `gorm:"type:varchar(16);comment:EASY/MEDIUM/HARD"`
	Text            string                    `gorm:"type:varchar(1024);comment:题目"`
	SuggestedAnswer string                    `gorm:"type:text;comment:参考答案"`
	Tags            sqlx.JsonColumn[[]string] `gorm:"type:varchar(512);comment:JSON 数组"`
	IsActive        bool                      `gorm:"index;comment:下线的题目不会被选中"`
	Ctime           int64
	Utime           int64 `gorm:"index"`
}

func (Question) TableName() string {
	return "questions"
}
