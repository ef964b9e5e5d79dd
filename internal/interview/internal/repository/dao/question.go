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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm/clause"
)

var ErrDuplicated = errors.New("该题目已经分配给这场面试")

type QuestionUsageDAO interface {
	// Create 重复插入返回 ErrDuplicated
	Create(ctx context.Context, q InterviewQuestion) error
	// BulkCreate 冲突的行直接跳过
	BulkCreate(ctx context.Context, qs []InterviewQuestion) error
	FindByInterviewId(ctx context.Context, interviewId int64) ([]InterviewQuestion, error)
	Exist(ctx context.Context, interviewId, questionId int64) (bool, error)
	DeleteByInterviewId(ctx context.Context, interviewId int64) error
	// FindQuestionIdsByUid 用户历史上所有面试用过的题目
	FindQuestionIdsByUid(ctx context.Context, uid int64) ([]int64, error)
}

type GORMQuestionUsageDAO struct {
	db *egorm.Component
}

func NewGORMQuestionUsageDAO(db *egorm.Component) QuestionUsageDAO {
	return &GORMQuestionUsageDAO{db: db}
}

func (d *GORMQuestionUsageDAO) Create(ctx context.Context, q InterviewQuestion) error {
	now := time.Now().UnixMilli()
	q.Ctime = now
	if q.AskedAt == 0 {
		q.AskedAt = now
	}
	err := d.db.WithContext(ctx).Create(&q).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrDuplicated
		}
	}
	return err
}

func (d *GORMQuestionUsageDAO) BulkCreate(ctx context.Context, qs []InterviewQuestion) error {
	if len(qs) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	qs = slice.Map(qs, func(idx int, src InterviewQuestion) InterviewQuestion {
		src.Ctime = now
		if src.AskedAt == 0 {
			src.AskedAt = now
		}
		return src
	})
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&qs).Error
}

func (d *GORMQuestionUsageDAO) FindByInterviewId(ctx context.Context, interviewId int64) ([]InterviewQuestion, error) {
	var res []InterviewQuestion
	err := d.db.WithContext(ctx).
		Where("interview_id = ?", interviewId).
		Order("asked_at ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMQuestionUsageDAO) Exist(ctx context.Context, interviewId, questionId int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&InterviewQuestion{}).
		Where("interview_id = ? AND question_id = ?", interviewId, questionId).
		Count(&cnt).Error
	return cnt > 0, err
}

func (d *GORMQuestionUsageDAO) DeleteByInterviewId(ctx context.Context, interviewId int64) error {
	return d.db.WithContext(ctx).Where("interview_id = ?", interviewId).Delete(&InterviewQuestion{}).Error
}

func (d *GORMQuestionUsageDAO) FindQuestionIdsByUid(ctx context.Context, uid int64) ([]int64, error) {
	var res []int64
	err := d.db.WithContext(ctx).Model(&InterviewQuestion{}).
		Distinct("question_id").
		Where("uid = ?", uid).
		Pluck("question_id", &res).Error
	return res, err
}

// InterviewQuestion 面试用到了哪些题目
type InterviewQuestion struct {
	Id          int64 `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	InterviewId int64 `gorm:"not null;uniqueIndex:uk_interview_question,priority:1;comment:面试ID"`
	QuestionId  int64 `gorm:"not null;uniqueIndex:uk_interview_question,priority:2;comment:题库题目ID"`
	Uid         int64 `gorm:"not null;index:idx_uid;comment:冗余的用户ID，用于排除历史题目"`
	AskedAt     int64 `gorm:"not null;comment:分配时间"`
	Ctime       int64
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}
