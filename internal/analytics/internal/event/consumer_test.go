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
	"testing"
	"time"

	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	analyticsmocks "github.com/ecodeclub/mockinterview/internal/analytics/mocks"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInterviewCompletedConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(svc *analyticsmocks.MockService)
		wantErr error
	}{
		{
			name: "生成报告",
			mock: func(svc *analyticsmocks.MockService) {
				svc.EXPECT().Analyze(gomock.Any(), int64(1)).Return(domain.InterviewAnalytics{Id: 9}, nil)
			},
		},
		{
			name: "面试已经被删除",
			mock: func(svc *analyticsmocks.MockService) {
				svc.EXPECT().Analyze(gomock.Any(), int64(1)).
					Return(domain.InterviewAnalytics{}, interview.ErrInterviewNotFound)
			},
		},
		{
			name: "数据库错误",
			mock: func(svc *analyticsmocks.MockService) {
				svc.EXPECT().Analyze(gomock.Any(), int64(1)).
					Return(domain.InterviewAnalytics{}, errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ctx := context.Background()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, interview.CompletedTopic, 1))
			svc := analyticsmocks.NewMockService(ctrl)
			tc.mock(svc)
			c, err := NewInterviewCompletedConsumer(svc, q)
			require.NoError(t, err)

			producer, err := q.Producer(interview.CompletedTopic)
			require.NoError(t, err)
			val, err := json.Marshal(interview.CompletedEvent{InterviewId: 1, Uid: 3, Score: 85})
			require.NoError(t, err)
			_, err = producer.Produce(ctx, &mq.Message{Value: val})
			require.NoError(t, err)

			assert.Equal(t, tc.wantErr, c.Consume(ctx))
		})
	}
}

func TestInterviewCompletedConsumer_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, interview.CompletedTopic, 1))
	svc := analyticsmocks.NewMockService(ctrl)
	// 处理完第一条消息之后取消
	svc.EXPECT().Analyze(gomock.Any(), int64(1)).
		DoAndReturn(func(ctx context.Context, id int64) (domain.InterviewAnalytics, error) {
			cancel()
			return domain.InterviewAnalytics{Id: 9}, nil
		})
	c, err := NewInterviewCompletedConsumer(svc, q)
	require.NoError(t, err)

	producer, err := q.Producer(interview.CompletedTopic)
	require.NoError(t, err)
	val, err := json.Marshal(interview.CompletedEvent{InterviewId: 1, Uid: 3, Score: 85})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: val})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		consumeUntilDone(ctx, c.Consume, c.logger, "消费面试结束事件失败")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("取消之后没有退出")
	}
}

func TestInterviewDeletedConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(svc *analyticsmocks.MockService)
		wantErr error
	}{
		{
			name: "删除报告",
			mock: func(svc *analyticsmocks.MockService) {
				svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name: "数据库错误",
			mock: func(svc *analyticsmocks.MockService) {
				svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ctx := context.Background()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, interview.DeletedTopic, 1))
			svc := analyticsmocks.NewMockService(ctrl)
			tc.mock(svc)
			c, err := NewInterviewDeletedConsumer(svc, q)
			require.NoError(t, err)

			producer, err := q.Producer(interview.DeletedTopic)
			require.NoError(t, err)
			val, err := json.Marshal(interview.DeletedEvent{InterviewId: 1, Uid: 3})
			require.NoError(t, err)
			_, err = producer.Produce(ctx, &mq.Message{Value: val})
			require.NoError(t, err)

			assert.Equal(t, tc.wantErr, c.Consume(ctx))
		})
	}
}
