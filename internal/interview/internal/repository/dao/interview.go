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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type InterviewDAO interface {
	Create(ctx context.Context, itv Interview) (int64, error)
	// Update 只更新状态机相关的字段
	Update(ctx context.Context, itv Interview) error
	FindById(ctx context.Context, id int64) (Interview, error)
	FindByUid(ctx context.Context, uid int64, cond ListCond) ([]Interview, error)
	CountByUid(ctx context.Context, uid int64, cond ListCond) (int64, error)
	// FindCompletedBetween 按照 completed_at 找出 [start, end) 之间结束的面试
	FindCompletedBetween(ctx context.Context, start, end int64, offset, limit int) ([]Interview, error)
	// Delete 在同一个事务里删除面试、它的消息以及分配的题目
	Delete(ctx context.Context, id int64) error

	CreateMessage(ctx context.Context, msg Message) (int64, error)
	FindMessages(ctx context.Context, interviewId int64) ([]Message, error)
	// FindLatestMessages 按照时间倒序取最新的 limit 条
	FindLatestMessages(ctx context.Context, interviewId int64, limit int) ([]Message, error)
	DeleteMessages(ctx context.Context, interviewId int64) error
}

type ListCond struct {
	Status string
	Type   string
	Offset int
	Limit  int
	// OrderBy 必须是调用方校验过的字段
	OrderBy string
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (d *GORMInterviewDAO) Create(ctx context.Context, itv Interview) (int64, error) {
	now := time.Now().UnixMilli()
	itv.Ctime, itv.Utime = now, now
	err := d.db.WithContext(ctx).Create(&itv).Error
	return itv.Id, err
}

func (d *GORMInterviewDAO) Update(ctx context.Context, itv Interview) error {
	return d.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ?", itv.Id).
		Updates(map[string]any{
			"status":       itv.Status,
			"feedback":     itv.Feedback,
			"insights":     itv.Insights,
			"score":        itv.Score,
			"started_at":   itv.StartedAt,
			"completed_at": itv.CompletedAt,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (d *GORMInterviewDAO) FindById(ctx context.Context, id int64) (Interview, error) {
	var res Interview
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) FindByUid(ctx context.Context, uid int64, cond ListCond) ([]Interview, error) {
	var res []Interview
	err := d.listQuery(ctx, uid, cond).
		Order(cond.OrderBy).
		Offset(cond.Offset).
		Limit(cond.Limit).
		Find(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) CountByUid(ctx context.Context, uid int64, cond ListCond) (int64, error) {
	var res int64
	err := d.listQuery(ctx, uid, cond).Count(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) listQuery(ctx context.Context, uid int64, cond ListCond) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&Interview{}).Where("uid = ?", uid)
	if cond.Status != "" {
		db = db.Where("status = ?", cond.Status)
	}
	if cond.Type != "" {
		db = db.Where("type = ?", cond.Type)
	}
	return db
}

func (d *GORMInterviewDAO) FindCompletedBetween(ctx context.Context, start, end int64, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := d.db.WithContext(ctx).
		Where("status = ? AND completed_at >= ? AND completed_at < ?", "COMPLETED", start, end).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("interview_id = ?", id).Delete(&Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("interview_id = ?", id).Delete(&InterviewQuestion{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Interview{}).Error
	})
}

func (d *GORMInterviewDAO) CreateMessage(ctx context.Context, msg Message) (int64, error) {
	if msg.Ctime == 0 {
		msg.Ctime = time.Now().UnixMilli()
	}
	err := d.db.WithContext(ctx).Create(&msg).Error
	return msg.Id, err
}

func (d *GORMInterviewDAO) FindMessages(ctx context.Context, interviewId int64) ([]Message, error) {
	var res []Message
	err := d.db.WithContext(ctx).
		Where("interview_id = ?", interviewId).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) FindLatestMessages(ctx context.Context, interviewId int64, limit int) ([]Message, error) {
	var res []Message
	err := d.db.WithContext(ctx).
		Where("interview_id = ?", interviewId).
		Order("ctime DESC, id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMInterviewDAO) DeleteMessages(ctx context.Context, interviewId int64) error {
	return d.db.WithContext(ctx).Where("interview_id = ?", interviewId).Delete(&Message{}).Error
}

type Interview struct {
	Id          int64          `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	Uid         int64          `gorm:"not null;index:idx_uid_ctime,priority:1;comment:用户ID"`
	Type        string         `gorm:"type:varchar(16);not null;comment:面试类型 TEXT/AUDIO"`
	Status      string         `gorm:"type:varchar(16);not null;comment:PENDING/IN_PROGRESS/COMPLETED/CANCELLED"`
	Resume      string         `gorm:"type:text;comment:简历描述"`
	Job         string         `gorm:"type:text;comment:岗位描述"`
	Feedback    sql.NullString `gorm:"type:text;comment:面试反馈"`
	Insights    sql.NullString `gorm:"type:text;comment:改进建议"`
	Score       sql.NullInt64  `gorm:"comment:总分 0-100，只有 COMPLETED 才有"`
	StartedAt   sql.NullInt64  `gorm:"comment:开始时间"`
	CompletedAt sql.NullInt64  `gorm:"index:idx_completed_at;comment:结束时间"`
	Ctime       int64          `gorm:"index:idx_uid_ctime,priority:2"`
	Utime       int64
}

func (Interview) TableName() string {
	return "interviews"
}

type Message struct {
	Id          int64                           `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	InterviewId int64                           `gorm:"not null;index:idx_interview_ctime,priority:1;comment:面试ID"`
	Role        string                          `gorm:"type:varchar(16);not null;comment:USER/ASSISTANT/SYSTEM"`
	Content     string                          `gorm:"type:text;not null;comment:消息内容"`
	Metadata    sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:元数据，例如 tokens"`
	Ctime       int64                           `gorm:"index:idx_interview_ctime,priority:2"`
}

func (Message) TableName() string {
	return "interview_messages"
}
