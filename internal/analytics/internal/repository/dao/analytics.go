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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicated     = errors.New("该面试已经有分析报告了")
)

type AnalyticsDAO interface {
	// Create 报告和分项得分在同一个事务里面写入，重复写入返回 ErrDuplicated
	Create(ctx context.Context, a InterviewAnalytics, cs []CategoryScore, ds []DifficultyScore) (int64, error)
	FindByInterviewId(ctx context.Context, interviewId int64) (InterviewAnalytics, error)
	FindCategoryScores(ctx context.Context, analyticsId int64) ([]CategoryScore, error)
	FindDifficultyScores(ctx context.Context, analyticsId int64) ([]DifficultyScore, error)
	// FindAnalyzedInterviewIds 过滤出已经有报告的面试
	FindAnalyzedInterviewIds(ctx context.Context, interviewIds []int64) ([]int64, error)
	// DeleteByInterviewId 报告和分项得分一起删除，没有报告也不报错
	DeleteByInterviewId(ctx context.Context, interviewId int64) error
}

type GORMAnalyticsDAO struct {
	db *egorm.Component
}

func NewGORMAnalyticsDAO(db *egorm.Component) AnalyticsDAO {
	return &GORMAnalyticsDAO{db: db}
}

func (d *GORMAnalyticsDAO) Create(ctx context.Context, a InterviewAnalytics, cs []CategoryScore, ds []DifficultyScore) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		if len(cs) > 0 {
			cs = slice.Map(cs, func(idx int, src CategoryScore) CategoryScore {
				src.AnalyticsId, src.Ctime = a.Id, now
				return src
			})
			if err := tx.Create(&cs).Error; err != nil {
				return err
			}
		}
		if len(ds) > 0 {
			ds = slice.Map(ds, func(idx int, src DifficultyScore) DifficultyScore {
				src.AnalyticsId, src.Ctime = a.Id, now
				return src
			})
			return tx.Create(&ds).Error
		}
		return nil
	})
	if err == nil {
		return a.Id, nil
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicated
		}
	}
	return 0, err
}

func (d *GORMAnalyticsDAO) FindByInterviewId(ctx context.Context, interviewId int64) (InterviewAnalytics, error) {
	var res InterviewAnalytics
	err := d.db.WithContext(ctx).Where("interview_id = ?", interviewId).First(&res).Error
	return res, err
}

func (d *GORMAnalyticsDAO) FindCategoryScores(ctx context.Context, analyticsId int64) ([]CategoryScore, error) {
	var res []CategoryScore
	err := d.db.WithContext(ctx).Where("analytics_id = ?", analyticsId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMAnalyticsDAO) FindDifficultyScores(ctx context.Context, analyticsId int64) ([]DifficultyScore, error) {
	var res []DifficultyScore
	err := d.db.WithContext(ctx).Where("analytics_id = ?", analyticsId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMAnalyticsDAO) FindAnalyzedInterviewIds(ctx context.Context, interviewIds []int64) ([]int64, error) {
	if len(interviewIds) == 0 {
		return []int64{}, nil
	}
	var res []int64
	err := d.db.WithContext(ctx).Model(&InterviewAnalytics{}).
		Where("interview_id IN ?", interviewIds).
		Pluck("interview_id", &res).Error
	return res, err
}

func (d *GORMAnalyticsDAO) DeleteByInterviewId(ctx context.Context, interviewId int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a InterviewAnalytics
		err := tx.Where("interview_id = ?", interviewId).First(&a).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = tx.Where("analytics_id = ?", a.Id).Delete(&CategoryScore{}).Error; err != nil {
			return err
		}
		if err = tx.Where("analytics_id = ?", a.Id).Delete(&DifficultyScore{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", a.Id).Delete(&InterviewAnalytics{}).Error
	})
}

type InterviewAnalytics struct {
	Id                   int64         `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	InterviewId          int64         `gorm:"not null;uniqueIndex:uk_interview_id;comment:面试ID，一场面试只有一份报告"`
	Uid                  int64         `gorm:"not null;index:idx_uid;comment:用户ID"`
	OverallScore         int           `gorm:"not null;comment:面试总分"`
	CommunicationQuality int           `gorm:"not null;comment:表达质量"`
	DepthOfKnowledge     int           `gorm:"not null;comment:技术深度"`
	ClarityScore         int           `gorm:"not null;comment:清晰度"`
	AvgResponseTime      sql.NullInt64 `gorm:"comment:平均回答间隔，单位秒"`
	TotalDuration        sql.NullInt64 `gorm:"comment:总时长，单位分钟"`
	TotalMessages        int           `gorm:"not null;comment:消息总数"`
	Ctime                int64
	Utime                int64
}

func (InterviewAnalytics) TableName() string {
	return "interview_analytics"
}

type CategoryScore struct {
	Id                int64  `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	AnalyticsId       int64  `gorm:"not null;uniqueIndex:uk_analytics_category,priority:1;comment:报告ID"`
	Category          string `gorm:"type:varchar(32);not null;uniqueIndex:uk_analytics_category,priority:2"`
	Score             int    `gorm:"not null"`
	QuestionsAnswered int    `gorm:"not null"`
	QuestionsCorrect  int    `gorm:"not null"`
	Ctime             int64
}

func (CategoryScore) TableName() string {
	return "analytics_category_scores"
}

type DifficultyScore struct {
	Id                int64  `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	AnalyticsId       int64  `gorm:"not null;uniqueIndex:uk_analytics_difficulty,priority:1;comment:报告ID"`
	Difficulty        string `gorm:"type:varchar(16);not null;uniqueIndex:uk_analytics_difficulty,priority:2"`
	Score             int    `gorm:"not null"`
	QuestionsAnswered int    `gorm:"not null"`
	Ctime             int64
}

func (DifficultyScore) TableName() string {
	return "analytics_difficulty_scores"
}
