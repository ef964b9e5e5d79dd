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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/service"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type InterviewCompletedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewInterviewCompletedConsumer(svc service.Service, q mq.MQ) (*InterviewCompletedConsumer, error) {
	groupID := "analytics"
	consumer, err := q.Consumer(interview.CompletedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &InterviewCompletedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start ctx 被取消之后退出
func (c *InterviewCompletedConsumer) Start(ctx context.Context) {
	go consumeUntilDone(ctx, c.Consume, c.logger, "消费面试结束事件失败")
}

func (c *InterviewCompletedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt interview.CompletedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, err = c.svc.Analyze(ctx, evt.InterviewId)
	if errors.Is(err, domain.ErrNotCompleted) || errors.Is(err, interview.ErrInterviewNotFound) {
		// 面试被删除或者状态不对，重试也没用
		c.logger.Warn("忽略面试结束事件",
			elog.FieldErr(err),
			elog.Any("event", evt))
		return nil
	}
	return err
}

type InterviewDeletedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewInterviewDeletedConsumer(svc service.Service, q mq.MQ) (*InterviewDeletedConsumer, error) {
	groupID := "analytics"
	consumer, err := q.Consumer(interview.DeletedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &InterviewDeletedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *InterviewDeletedConsumer) Start(ctx context.Context) {
	go consumeUntilDone(ctx, c.Consume, c.logger, "消费面试删除事件失败")
}

// Consume 面试删除了，报告也跟着删除
func (c *InterviewDeletedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt interview.DeletedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.svc.Delete(ctx, evt.InterviewId)
}

func consumeUntilDone(ctx context.Context, consume func(ctx context.Context) error,
	logger *elog.Component, msg string) {
	for ctx.Err() == nil {
		er := consume(ctx)
		if er != nil && ctx.Err() == nil {
			logger.Error(msg, elog.FieldErr(er))
		}
	}
}
