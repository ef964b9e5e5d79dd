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

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ecodeclub/mockinterview/internal/ai"
	aimocks "github.com/ecodeclub/mockinterview/internal/ai/mocks"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/event"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/questionbank"
	qbmocks "github.com/ecodeclub/mockinterview/internal/questionbank/mocks"
	"github.com/ecodeclub/mockinterview/internal/quota"
	quotamocks "github.com/ecodeclub/mockinterview/internal/quota/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const restQuestion = "O que é REST?"

type testMocks struct {
	qb         *qbmocks.MockService
	classifier *qbmocks.MockClassifier
	selector   *qbmocks.MockSelector
	ai         *aimocks.MockService
	quota      *quotamocks.MockService
	deleted    *stubDeletedProducer
}

func newTestService(ctrl *gomock.Controller, repo repository.InterviewRepository,
	usage *memoryUsageRepo, producer event.CompletedEventProducer) (Service, testMocks) {
	m := testMocks{
		qb:         qbmocks.NewMockService(ctrl),
		classifier: qbmocks.NewMockClassifier(ctrl),
		selector:   qbmocks.NewMockSelector(ctrl),
		ai:         aimocks.NewMockService(ctrl),
		quota:      quotamocks.NewMockService(ctrl),
		deleted:    &stubDeletedProducer{},
	}
	svc := NewService(repo, usage, NewUsageTracker(usage), NewPromptAssembler(),
		m.qb, m.classifier, m.selector, m.ai, m.quota, producer, m.deleted)
	return svc, m
}

func bankQuestions() []questionbank.Question {
	return []questionbank.Question{
		{Id: 10, Category: questionbank.CategoryBackend, Difficulty: questionbank.DifficultyHard, Text: capQuestion},
		{Id: 11, Category: questionbank.CategoryGeneral, Difficulty: questionbank.DifficultyEasy, Text: restQuestion},
	}
}

func TestService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemoryInterviewRepo()
	usage := newMemoryUsageRepo()
	// 以前的面试用过 9 号题目
	usage.rows = append(usage.rows, repository.Usage{InterviewId: 1, QuestionId: 9, Uid: 3})
	svc, m := newTestService(ctrl, repo, usage, &stubProducer{})

	cls := questionbank.Classification{
		Level:      questionbank.LevelSenior,
		Categories: []questionbank.Category{questionbank.CategoryBackend, questionbank.CategoryGeneral},
		Tags:       []string{"Go"},
	}
	m.quota.EXPECT().Check(gomock.Any(), int64(3), quota.PlanFree, quota.KindText).Return(nil)
	m.classifier.EXPECT().Classify("Dev Go senior", "Vaga backend senior").Return(cls)
	m.selector.EXPECT().Select(gomock.Any(), questionbank.SelectRequest{
		Classification: cls,
		ExcludeIds:     []int64{9},
		Max:            questionbank.DefaultMaxQuestions,
	}).Return(bankQuestions(), nil)
	m.ai.EXPECT().Chat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.ChatRequest) (ai.ChatResponse, error) {
			require.Len(t, req.Messages, 2)
			assert.Equal(t, int64(3), req.Uid)
			assert.Equal(t, ai.RoleSystem, req.Messages[0].Role)
			assert.Equal(t, ai.RoleUser, req.Messages[1].Role)
			assert.Contains(t, req.Messages[1].Content, "1. "+capQuestion+"\n2. "+restQuestion)
			return ai.ChatResponse{Content: "Olá! Vamos começar.", Tokens: 42}, nil
		})
	m.quota.EXPECT().Increment(gomock.Any(), int64(3), quota.KindText).Return(nil)

	res, err := svc.Start(context.Background(), 3, quota.PlanFree, StartRequest{
		Type:   domain.TypeText,
		Resume: "Dev Go senior",
		Job:    "Vaga backend senior",
	})
	require.NoError(t, err)
	itv := res.Interview
	assert.Equal(t, domain.StatusInProgress, itv.Status)
	assert.True(t, itv.StartedAt > 0)
	assert.Equal(t, itv, repo.interviews[itv.Id])
	assert.Equal(t, domain.RoleAssistant, res.FirstMessage.Role)
	assert.Equal(t, "Olá! Vamos começar.", res.FirstMessage.Content)
	assert.Equal(t, map[string]any{"tokens": int64(42)}, res.FirstMessage.Metadata)
	assert.Equal(t, []domain.Question{
		{Id: 10, Category: "BACKEND", Difficulty: "HARD", Text: capQuestion},
		{Id: 11, Category: "GENERAL", Difficulty: "EASY", Text: restQuestion},
	}, res.Questions)

	ids, err := usage.FindQuestionIdsByInterviewId(context.Background(), itv.Id)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, ids)
}

func TestService_StartWithoutBankQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemoryInterviewRepo()
	usage := newMemoryUsageRepo()
	svc, m := newTestService(ctrl, repo, usage, &stubProducer{})

	m.quota.EXPECT().Check(gomock.Any(), int64(3), quota.PlanPremium, quota.KindAudio).Return(nil)
	m.classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(questionbank.Classification{
		Level:      questionbank.LevelPleno,
		Categories: []questionbank.Category{questionbank.CategoryGeneral},
	})
	m.selector.EXPECT().Select(gomock.Any(), gomock.Any()).Return([]questionbank.Question{}, nil)
	m.ai.EXPECT().Chat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.ChatRequest) (ai.ChatResponse, error) {
			assert.NotContains(t, req.Messages[1].Content, "PERGUNTAS SUGERIDAS")
			return ai.ChatResponse{Content: "Olá!"}, nil
		})
	m.quota.EXPECT().Increment(gomock.Any(), int64(3), quota.KindAudio).Return(nil)

	res, err := svc.Start(context.Background(), 3, quota.PlanPremium, StartRequest{Type: domain.TypeAudio})
	require.NoError(t, err)
	assert.Nil(t, res.FirstMessage.Metadata)
	assert.Empty(t, res.Questions)
	assert.Empty(t, usage.rows)
}

func TestService_StartFailed(t *testing.T) {
	testCases := []struct {
		name string
		mock func(m testMocks)
		req  StartRequest

		wantErr error
	}{
		{
			name:    "非法的面试类型",
			mock:    func(m testMocks) {},
			req:     StartRequest{Type: "VIDEO"},
			wantErr: domain.ErrInvalidType,
		},
		{
			name: "本月次数用完",
			mock: func(m testMocks) {
				m.quota.EXPECT().Check(gomock.Any(), int64(3), quota.PlanFree, quota.KindText).
					Return(quota.ErrQuotaExceeded)
			},
			req:     StartRequest{Type: domain.TypeText},
			wantErr: quota.ErrQuotaExceeded,
		},
		{
			name: "大模型调用失败",
			mock: func(m testMocks) {
				m.quota.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(questionbank.Classification{})
				m.selector.EXPECT().Select(gomock.Any(), gomock.Any()).Return([]questionbank.Question{}, nil)
				m.ai.EXPECT().Chat(gomock.Any(), gomock.Any()).
					Return(ai.ChatResponse{}, fmt.Errorf("%w: timeout", ai.ErrUpstream))
			},
			req:     StartRequest{Type: domain.TypeText},
			wantErr: ai.ErrUpstream,
		},
		{
			name: "大模型返回空内容",
			mock: func(m testMocks) {
				m.quota.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(questionbank.Classification{})
				m.selector.EXPECT().Select(gomock.Any(), gomock.Any()).Return([]questionbank.Question{}, nil)
				m.ai.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(ai.ChatResponse{Content: "  "}, nil)
			},
			req:     StartRequest{Type: domain.TypeText},
			wantErr: ai.ErrUpstream,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl, newMemoryInterviewRepo(), newMemoryUsageRepo(), &stubProducer{})
			tc.mock(m)
			_, err := svc.Start(context.Background(), 3, quota.PlanFree, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// 面试 1 进行中，面试官已经问过 CAP，面试 2 还没有开始
func sendMessageFixture() (*memoryInterviewRepo, *memoryUsageRepo) {
	repo := newMemoryInterviewRepo(
		domain.Interview{Id: 1, Uid: 3, Type: domain.TypeText, Status: domain.StatusInProgress, Resume: "Dev Go", Job: "Backend"},
		domain.Interview{Id: 2, Uid: 3, Type: domain.TypeText, Status: domain.StatusPending},
	)
	repo.messages = []domain.Message{
		{Id: 1, InterviewId: 1, Role: domain.RoleAssistant, Content: "Olá! Explique o teorema CAP e a influência dele em sistemas distribuídos.", Ctime: 1},
	}
	usage := newMemoryUsageRepo()
	usage.rows = []repository.Usage{
		{InterviewId: 1, QuestionId: 10, Uid: 3, AskedAt: 1},
		{InterviewId: 1, QuestionId: 11, Uid: 3, AskedAt: 1},
	}
	repo.usage = usage
	return repo, usage
}

func TestService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, usage := sendMessageFixture()
	svc, m := newTestService(ctrl, repo, usage, &stubProducer{})

	m.qb.EXPECT().FindByIds(gomock.Any(), []int64{10, 11}).Return(bankQuestions(), nil)
	m.ai.EXPECT().Chat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.ChatRequest) (ai.ChatResponse, error) {
			require.Len(t, req.Messages, 4)
			assert.Equal(t, ai.RoleSystem, req.Messages[0].Role)
			assert.Equal(t, ai.RoleSystem, req.Messages[1].Role)
			// CAP 已经问过了，只剩下 REST
			assert.Contains(t, req.Messages[1].Content, "PERGUNTAS AINDA NÃO FEITAS")
			assert.Contains(t, req.Messages[1].Content, "1. "+restQuestion)
			assert.NotContains(t, req.Messages[1].Content, capQuestion)
			assert.Equal(t, ai.Message{Role: ai.RoleAssistant, Content: repo.messages[0].Content}, req.Messages[2])
			assert.Equal(t, ai.Message{Role: ai.RoleUser, Content: "CAP trata de consistência."}, req.Messages[3])
			return ai.ChatResponse{Content: "Ótimo. E REST?", Tokens: 7}, nil
		})

	res, err := svc.SendMessage(context.Background(), 3, 1, "CAP trata de consistência.")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.UserMessage.Role)
	assert.Equal(t, "Ótimo. E REST?", res.AssistantMessage.Content)
	assert.Equal(t, map[string]any{"tokens": int64(7)}, res.AssistantMessage.Metadata)
	assert.Len(t, repo.messages, 3)
}

func TestService_SendMessageFailed(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		id      int64
		content string

		wantErr error
	}{
		{name: "面试不存在", uid: 3, id: 404, content: "oi", wantErr: ErrInterviewNotFound},
		{name: "不是自己的面试", uid: 4, id: 1, content: "oi", wantErr: domain.ErrForbidden},
		{name: "面试还没有开始", uid: 3, id: 2, content: "oi", wantErr: domain.ErrInvalidState},
		{name: "空消息", uid: 3, id: 1, content: " \n ", wantErr: domain.ErrEmptyContent},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, usage := sendMessageFixture()
			svc, _ := newTestService(ctrl, repo, usage, &stubProducer{})
			_, err := svc.SendMessage(context.Background(), tc.uid, tc.id, tc.content)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, repo.messages, 1)
		})
	}
}

func TestService_Complete(t *testing.T) {
	testCases := []struct {
		name     string
		status   domain.Status
		mock     func(m testMocks)
		producer *stubProducer

		wantErr    error
		wantStatus domain.Status
		wantEvents []event.CompletedEvent
	}{
		{
			name:   "结束成功",
			status: domain.StatusInProgress,
			mock: func(m testMocks) {
				m.ai.EXPECT().Feedback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.FeedbackRequest) (ai.Feedback, error) {
						require.Len(t, req.Messages, 1)
						assert.Equal(t, ai.RoleAssistant, req.Messages[0].Role)
						assert.Equal(t, "Dev Go", req.Resume)
						assert.Equal(t, "Backend", req.Job)
						return ai.Feedback{Feedback: "Bom", Insights: "Estude CAP", Score: 85}, nil
					})
			},
			producer:   &stubProducer{},
			wantStatus: domain.StatusCompleted,
			wantEvents: []event.CompletedEvent{{InterviewId: 1, Uid: 3, Score: 85}},
		},
		{
			name:   "分数越界",
			status: domain.StatusInProgress,
			mock: func(m testMocks) {
				m.ai.EXPECT().Feedback(gomock.Any(), gomock.Any()).
					Return(ai.Feedback{Feedback: "Bom", Insights: "x", Score: 101}, nil)
			},
			producer:   &stubProducer{},
			wantErr:    domain.ErrInvalidScore,
			wantStatus: domain.StatusInProgress,
		},
		{
			name:       "已经结束了",
			status:     domain.StatusCompleted,
			mock:       func(m testMocks) {},
			producer:   &stubProducer{},
			wantErr:    domain.ErrInvalidState,
			wantStatus: domain.StatusCompleted,
		},
		{
			name:       "已经取消了",
			status:     domain.StatusCancelled,
			mock:       func(m testMocks) {},
			producer:   &stubProducer{},
			wantErr:    domain.ErrInvalidState,
			wantStatus: domain.StatusCancelled,
		},
		{
			name:   "大模型失败",
			status: domain.StatusInProgress,
			mock: func(m testMocks) {
				m.ai.EXPECT().Feedback(gomock.Any(), gomock.Any()).
					Return(ai.Feedback{}, fmt.Errorf("%w: bad json", ai.ErrUpstream))
			},
			producer:   &stubProducer{},
			wantErr:    ai.ErrUpstream,
			wantStatus: domain.StatusInProgress,
		},
		{
			name:   "发送事件失败不影响结束",
			status: domain.StatusInProgress,
			mock: func(m testMocks) {
				m.ai.EXPECT().Feedback(gomock.Any(), gomock.Any()).
					Return(ai.Feedback{Feedback: "Bom", Insights: "x", Score: 0}, nil)
			},
			producer:   &stubProducer{err: errors.New("mock mq error")},
			wantStatus: domain.StatusCompleted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, usage := sendMessageFixture()
			itv := repo.interviews[1]
			itv.Status = tc.status
			repo.interviews[1] = itv
			svc, m := newTestService(ctrl, repo, usage, tc.producer)
			tc.mock(m)

			res, err := svc.Complete(context.Background(), 3, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantStatus, repo.interviews[1].Status)
			assert.Equal(t, tc.wantEvents, tc.producer.evts)
			if err != nil {
				return
			}
			assert.Equal(t, res, repo.interviews[1])
			assert.True(t, res.CompletedAt > 0)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemoryInterviewRepo(
		domain.Interview{Id: 1, Uid: 3, Status: domain.StatusInProgress},
		domain.Interview{Id: 2, Uid: 3, Status: domain.StatusCompleted, Score: 80},
	)
	svc, _ := newTestService(ctrl, repo, newMemoryUsageRepo(), &stubProducer{})

	res, err := svc.Cancel(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Status)
	assert.Equal(t, domain.StatusCancelled, repo.interviews[1].Status)

	// 重复取消
	res, err = svc.Cancel(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Status)
	assert.Equal(t, 2, repo.updates)

	_, err = svc.Cancel(context.Background(), 3, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.StatusCompleted, repo.interviews[2].Status)

	_, err = svc.Cancel(context.Background(), 4, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, usage := sendMessageFixture()
	usage.rows = append(usage.rows, repository.Usage{InterviewId: 2, QuestionId: 12, Uid: 3, AskedAt: 1})
	svc, m := newTestService(ctrl, repo, usage, &stubProducer{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 3, 1), domain.ErrInvalidState)
	assert.ErrorIs(t, svc.Delete(context.Background(), 4, 2), domain.ErrForbidden)
	assert.Empty(t, m.deleted.evts)

	_, err := svc.Cancel(context.Background(), 3, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), 3, 1))
	_, err = svc.Detail(context.Background(), 3, 1)
	assert.ErrorIs(t, err, ErrInterviewNotFound)
	assert.Empty(t, repo.messages)
	// 只删除这场面试分配的题目
	assert.Equal(t, []repository.Usage{{InterviewId: 2, QuestionId: 12, Uid: 3, AskedAt: 1}}, usage.rows)
	assert.Equal(t, []event.DeletedEvent{{InterviewId: 1, Uid: 3}}, m.deleted.evts)

	// 发送事件失败不影响删除
	m.deleted.err = errors.New("mock mq error")
	require.NoError(t, svc.Delete(context.Background(), 3, 2))
	_, err = svc.Detail(context.Background(), 3, 2)
	assert.ErrorIs(t, err, ErrInterviewNotFound)
	assert.Empty(t, usage.rows)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := newMemoryInterviewRepo(
		domain.Interview{Id: 1, Uid: 3, Status: domain.StatusCompleted},
		domain.Interview{Id: 2, Uid: 3, Status: domain.StatusCancelled},
		domain.Interview{Id: 3, Uid: 4, Status: domain.StatusCompleted},
	)
	svc, _ := newTestService(ctrl, repo, newMemoryUsageRepo(), &stubProducer{})

	itvs, total, err := svc.List(context.Background(), 3, domain.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []int64{2, 1}, []int64{itvs[0].Id, itvs[1].Id})

	itvs, total, err = svc.List(context.Background(), 3, domain.ListFilter{Status: domain.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), itvs[0].Id)
}

func TestService_HistoryAndRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, usage := sendMessageFixture()
	repo.messages = append(repo.messages,
		domain.Message{Id: 2, InterviewId: 1, Role: domain.RoleUser, Content: "a", Ctime: 2},
		domain.Message{Id: 3, InterviewId: 1, Role: domain.RoleAssistant, Content: "b", Ctime: 3},
	)
	svc, _ := newTestService(ctrl, repo, usage, &stubProducer{})

	itv, msgs, err := svc.History(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), itv.Id)
	assert.Len(t, msgs, 3)

	msgs, err = svc.RecentMessages(context.Background(), 3, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, []int64{msgs[0].Id, msgs[1].Id})

	_, _, err = svc.History(context.Background(), 4, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, usage := sendMessageFixture()
	svc, m := newTestService(ctrl, repo, usage, &stubProducer{})
	m.qb.EXPECT().FindByIds(gomock.Any(), []int64{10, 11}).Return(bankQuestions(), nil)

	snapshot, err := svc.Snapshot(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snapshot.Interview.Id)
	assert.Len(t, snapshot.Messages, 1)
	assert.Equal(t, []domain.UsedQuestion{
		{Question: domain.Question{Id: 10, Category: "BACKEND", Difficulty: "HARD", Text: capQuestion}, AskedAt: 1},
		{Question: domain.Question{Id: 11, Category: "GENERAL", Difficulty: "EASY", Text: restQuestion}, AskedAt: 1},
	}, snapshot.Questions)

	_, err = svc.Snapshot(context.Background(), 404)
	assert.ErrorIs(t, err, ErrInterviewNotFound)
}

type stubProducer struct {
	evts []event.CompletedEvent
	err  error
}

func (s *stubProducer) Produce(_ context.Context, evt event.CompletedEvent) error {
	if s.err != nil {
		return s.err
	}
	s.evts = append(s.evts, evt)
	return nil
}

type stubDeletedProducer struct {
	evts []event.DeletedEvent
	err  error
}

func (s *stubDeletedProducer) Produce(_ context.Context, evt event.DeletedEvent) error {
	if s.err != nil {
		return s.err
	}
	s.evts = append(s.evts, evt)
	return nil
}
