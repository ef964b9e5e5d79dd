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

package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrForbidden    = errors.New("无权访问该面试")
	ErrInvalidState = errors.New("面试当前状态不允许该操作")
	ErrInvalidScore = errors.New("评分必须在 0 到 100 之间")
	ErrInvalidType  = errors.New("非法的面试类型")
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Type string

const (
	TypeText  Type = "TEXT"
	TypeAudio Type = "AUDIO"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) Valid() bool {
	return t == TypeText || t == TypeAudio
}

// Interview 一场模拟面试
// Feedback、Insights 和 Score 只有在 COMPLETED 之后才有意义
type Interview struct {
	Id     int64
	Uid    int64
	Type   Type
	Status Status
	Resume string
	Job    string

	Feedback string
	Insights string
	Score    int

	StartedAt   int64
	CompletedAt int64
	Ctime       int64
	Utime       int64
}

// Start PENDING -> IN_PROGRESS
func (i *Interview) Start() error {
	if i.Status != StatusPending {
		return fmt.Errorf("%w: 只有 PENDING 的面试可以开始, 当前 %s", ErrInvalidState, i.Status)
	}
	now := time.Now().UnixMilli()
	i.Status = StatusInProgress
	i.StartedAt = now
	i.Utime = now
	return nil
}

// Complete IN_PROGRESS -> COMPLETED
func (i *Interview) Complete(feedback, insights string, score int) error {
	if i.Status != StatusInProgress {
		return fmt.Errorf("%w: 只有 IN_PROGRESS 的面试可以结束, 当前 %s", ErrInvalidState, i.Status)
	}
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	now := time.Now().UnixMilli()
	i.Status = StatusCompleted
	i.Feedback = feedback
	i.Insights = insights
	i.Score = score
	i.CompletedAt = now
	i.Utime = now
	return nil
}

// Cancel 已经取消的面试再取消一次只会更新时间
func (i *Interview) Cancel() error {
	if i.IsCompleted() {
		return fmt.Errorf("%w: 不能取消状态为 %s 的面试", ErrInvalidState, i.Status)
	}
	i.Status = StatusCancelled
	i.Utime = time.Now().UnixMilli()
	return nil
}

func (i Interview) CanSendMessage() bool {
	return i.Status == StatusInProgress
}

func (i Interview) BelongsTo(uid int64) bool {
	return i.Uid == uid
}

func (i Interview) IsCompleted() bool {
	return i.Status == StatusCompleted
}

func (i Interview) IsCancelled() bool {
	return i.Status == StatusCancelled
}

type ListFilter struct {
	Status Status
	Type   Type
	Offset int
	Limit  int
	// SortBy 只支持 ctime、utime、score、started_at 和 completed_at
	SortBy    string
	SortOrder string
}

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

var sortable = map[string]struct{}{
	"ctime":        {},
	"utime":        {},
	"score":        {},
	"started_at":   {},
	"completed_at": {},
}

// Normalize 填充默认值：第一页，每页 10 条，按照创建时间倒序
func (f ListFilter) Normalize() ListFilter {
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if _, ok := sortable[f.SortBy]; !ok {
		f.SortBy = "ctime"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
	return f
}
