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

package event

import (
	"context"
	"strconv"

	"github.com/ecodeclub/mockinterview/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const (
	CompletedTopic = "interview_completed_events"
	DeletedTopic   = "interview_deleted_events"
)

// CompletedEvent 面试结束之后发出，分析模块据此生成报告
type CompletedEvent struct {
	InterviewId int64 `json:"interviewId"`
	Uid         int64 `json:"uid"`
	Score       int   `json:"score"`
}

type CompletedEventProducer interface {
	Produce(ctx context.Context, evt CompletedEvent) error
}

// DeletedEvent 面试被删除之后发出，分析模块据此删除报告
type DeletedEvent struct {
	InterviewId int64 `json:"interviewId"`
	Uid         int64 `json:"uid"`
}

type DeletedEventProducer interface {
	Produce(ctx context.Context, evt DeletedEvent) error
}

// NewCompletedEventProducer 按面试 ID 分区
func NewCompletedEventProducer(q mq.MQ) (CompletedEventProducer, error) {
	p, err := mqx.NewGeneralProducer[CompletedEvent](q, CompletedTopic)
	if err != nil {
		return nil, err
	}
	return p.WithKey(func(evt CompletedEvent) string {
		return strconv.FormatInt(evt.InterviewId, 10)
	}), nil
}

// NewDeletedEventProducer 和结束事件一样按面试 ID 分区
func NewDeletedEventProducer(q mq.MQ) (DeletedEventProducer, error) {
	p, err := mqx.NewGeneralProducer[DeletedEvent](q, DeletedTopic)
	if err != nil {
		return nil, err
	}
	return p.WithKey(func(evt DeletedEvent) string {
		return strconv.FormatInt(evt.InterviewId, 10)
	}), nil
}
