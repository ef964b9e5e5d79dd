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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/ai"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/event"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/questionbank"
	"github.com/ecodeclub/mockinterview/internal/quota"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrInterviewNotFound = errors.New("面试不存在")

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 200
)

type StartRequest struct {
	Type   domain.Type
	Resume string
	Job    string
}

type StartResult struct {
	Interview    domain.Interview
	FirstMessage domain.Message
	// Questions 从题库里挑出来的建议题目，可能为空
	Questions []domain.Question
}

type MessageResult struct {
	UserMessage      domain.Message
	AssistantMessage domain.Message
}

//go:generate mockgen -source=./interview.go -destination=../../mocks/interview.mock.go -package=interviewmocks -typed=true Service
type Service interface {
	Start(ctx context.Context, uid int64, plan quota.Plan, req StartRequest) (StartResult, error)
	SendMessage(ctx context.Context, uid, id int64, content string) (MessageResult, error)
	Complete(ctx context.Context, uid, id int64) (domain.Interview, error)
	Cancel(ctx context.Context, uid, id int64) (domain.Interview, error)
	// Delete 进行中的面试要先取消才能删除
	Delete(ctx context.Context, uid, id int64) error
	History(ctx context.Context, uid, id int64) (domain.Interview, []domain.Message, error)
	// RecentMessages 最新的 limit 条消息，按照时间正序
	RecentMessages(ctx context.Context, uid, id int64, limit int) ([]domain.Message, error)
	Detail(ctx context.Context, uid, id int64) (domain.Interview, error)
	List(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Interview, int64, error)

	// Snapshot 给分析模块用的，不校验归属
	Snapshot(ctx context.Context, id int64) (domain.Snapshot, error)
	CompletedBetween(ctx context.Context, start, end int64, offset, limit int) ([]domain.Interview, error)
}

type service struct {
	repo       repository.InterviewRepository
	usageRepo  repository.QuestionUsageRepository
	tracker    UsageTracker
	prompts    PromptAssembler
	qbSvc      questionbank.Service
	classifier questionbank.Classifier
	selector   questionbank.Selector
	aiSvc      ai.Service
	quotaSvc   quota.Service
	producer   event.CompletedEventProducer
	deleted    event.DeletedEventProducer
	logger     *elog.Component
}

func NewService(repo repository.InterviewRepository,
	usageRepo repository.QuestionUsageRepository,
	tracker UsageTracker,
	prompts PromptAssembler,
	qbSvc questionbank.Service,
	classifier questionbank.Classifier,
	selector questionbank.Selector,
	aiSvc ai.Service,
	quotaSvc quota.Service,
	producer event.CompletedEventProducer,
	deleted event.DeletedEventProducer) Service {
	return &service{
		repo:       repo,
		usageRepo:  usageRepo,
		tracker:    tracker,
		prompts:    prompts,
		qbSvc:      qbSvc,
		classifier: classifier,
		selector:   selector,
		aiSvc:      aiSvc,
		quotaSvc:   quotaSvc,
		producer:   producer,
		deleted:    deleted,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Start(ctx context.Context, uid int64, plan quota.Plan, req StartRequest) (StartResult, error) {
	if !req.Type.Valid() {
		return StartResult{}, domain.ErrInvalidType
	}
	kind := quota.Kind(req.Type)
	if err := s.quotaSvc.Check(ctx, uid, plan, kind); err != nil {
		return StartResult{}, err
	}

	itv := domain.Interview{
		Uid:    uid,
		Type:   req.Type,
		Status: domain.StatusPending,
		Resume: req.Resume,
		Job:    req.Job,
	}
	id, err := s.repo.Create(ctx, itv)
	if err != nil {
		return StartResult{}, err
	}
	itv.Id = id
	if err = itv.Start(); err != nil {
		return StartResult{}, err
	}
	if err = s.repo.Update(ctx, itv); err != nil {
		return StartResult{}, err
	}

	questions, err := s.selectQuestions(ctx, uid, req.Resume, req.Job)
	if err != nil {
		return StartResult{}, err
	}
	resp, err := s.aiSvc.Chat(ctx, ai.ChatRequest{
		Uid: uid,
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: s.prompts.SystemPrompt()},
			{Role: ai.RoleUser, Content: s.prompts.StartPrompt(itv.Resume, itv.Job, questions)},
		},
	})
	if err != nil {
		return StartResult{}, err
	}
	first, err := s.saveReply(ctx, id, resp)
	if err != nil {
		return StartResult{}, err
	}

	ids := slice.Map(questions, func(idx int, src domain.Question) int64 {
		return src.Id
	})
	if err = s.tracker.Record(ctx, uid, id, ids); err != nil {
		return StartResult{}, err
	}
	if err = s.quotaSvc.Increment(ctx, uid, kind); err != nil {
		return StartResult{}, err
	}
	return StartResult{
		Interview:    itv,
		FirstMessage: first,
		Questions:    questions,
	}, nil
}

// selectQuestions 排除用户以前面试用过的题目
func (s *service) selectQuestions(ctx context.Context, uid int64, resume, job string) ([]domain.Question, error) {
	used, err := s.usageRepo.FindQuestionIdsByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	qs, err := s.selector.Select(ctx, questionbank.SelectRequest{
		Classification: s.classifier.Classify(resume, job),
		ExcludeIds:     used,
		Max:            questionbank.DefaultMaxQuestions,
	})
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(idx int, src questionbank.Question) domain.Question {
		return s.toQuestion(src)
	}), nil
}

func (s *service) SendMessage(ctx context.Context, uid, id int64, content string) (MessageResult, error) {
	itv, err := s.owned(ctx, uid, id)
	if err != nil {
		return MessageResult{}, err
	}
	if !itv.CanSendMessage() {
		return MessageResult{}, fmt.Errorf("%w: 面试状态为 %s, 不能发送消息", domain.ErrInvalidState, itv.Status)
	}
	userMsg, err := domain.NewMessage(id, domain.RoleUser, content, nil)
	if err != nil {
		return MessageResult{}, err
	}
	userMsg, err = s.repo.CreateMessage(ctx, userMsg)
	if err != nil {
		return MessageResult{}, err
	}

	history, err := s.repo.FindMessages(ctx, id)
	if err != nil {
		return MessageResult{}, err
	}
	used, err := s.usedQuestions(ctx, id)
	if err != nil {
		return MessageResult{}, err
	}
	questions := slice.Map(used, func(idx int, src domain.UsedQuestion) domain.Question {
		return src.Question
	})
	var asked []int64
	if len(questions) > 0 {
		asked = s.tracker.AskedQuestions(questions, history)
	}

	msgs := make([]ai.Message, 0, len(history)+2)
	msgs = append(msgs,
		ai.Message{Role: ai.RoleSystem, Content: s.prompts.SystemPrompt()},
		ai.Message{Role: ai.RoleSystem, Content: s.prompts.ContextPrompt(itv.Resume, itv.Job, questions, asked)},
	)
	msgs = append(msgs, s.toAIMessages(history)...)
	resp, err := s.aiSvc.Chat(ctx, ai.ChatRequest{Uid: uid, Messages: msgs})
	if err != nil {
		return MessageResult{}, err
	}
	reply, err := s.saveReply(ctx, id, resp)
	if err != nil {
		return MessageResult{}, err
	}
	return MessageResult{UserMessage: userMsg, AssistantMessage: reply}, nil
}

func (s *service) saveReply(ctx context.Context, id int64, resp ai.ChatResponse) (domain.Message, error) {
	var metadata map[string]any
	if resp.Tokens > 0 {
		metadata = map[string]any{"tokens": resp.Tokens}
	}
	msg, err := domain.NewMessage(id, domain.RoleAssistant, resp.Content, metadata)
	if err != nil {
		// 模型返回了空内容
		return domain.Message{}, fmt.Errorf("%w: %w", ai.ErrUpstream, err)
	}
	return s.repo.CreateMessage(ctx, msg)
}

func (s *service) Complete(ctx context.Context, uid, id int64) (domain.Interview, error) {
	itv, err := s.owned(ctx, uid, id)
	if err != nil {
		return domain.Interview{}, err
	}
	if itv.Status != domain.StatusInProgress {
		return domain.Interview{}, fmt.Errorf("%w: 面试状态为 %s, 不能结束", domain.ErrInvalidState, itv.Status)
	}
	history, err := s.repo.FindMessages(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	fb, err := s.aiSvc.Feedback(ctx, ai.FeedbackRequest{
		Uid:      uid,
		Resume:   itv.Resume,
		Job:      itv.Job,
		Messages: s.toAIMessages(history),
	})
	if err != nil {
		return domain.Interview{}, err
	}
	// 模型给出的分数越界直接失败，不做截断
	if err = itv.Complete(fb.Feedback, fb.Insights, fb.Score); err != nil {
		return domain.Interview{}, err
	}
	if err = s.repo.Update(ctx, itv); err != nil {
		return domain.Interview{}, err
	}
	err = s.producer.Produce(ctx, event.CompletedEvent{
		InterviewId: itv.Id,
		Uid:         itv.Uid,
		Score:       itv.Score,
	})
	if err != nil {
		// 分析模块有补偿任务兜底
		s.logger.Error("发送面试结束事件失败",
			elog.FieldErr(err),
			elog.Int64("interviewId", itv.Id))
	}
	return itv, nil
}

func (s *service) Cancel(ctx context.Context, uid, id int64) (domain.Interview, error) {
	itv, err := s.owned(ctx, uid, id)
	if err != nil {
		return domain.Interview{}, err
	}
	if err = itv.Cancel(); err != nil {
		return domain.Interview{}, err
	}
	return itv, s.repo.Update(ctx, itv)
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	itv, err := s.owned(ctx, uid, id)
	if err != nil {
		return err
	}
	if itv.Status == domain.StatusInProgress {
		return fmt.Errorf("%w: 进行中的面试不能删除", domain.ErrInvalidState)
	}
	// 消息和分配的题目在同一个事务里删掉
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	err = s.deleted.Produce(ctx, event.DeletedEvent{InterviewId: id, Uid: uid})
	if err != nil {
		s.logger.Error("发送面试删除事件失败",
			elog.FieldErr(err),
			elog.Int64("interviewId", id))
	}
	return nil
}

func (s *service) History(ctx context.Context, uid, id int64) (domain.Interview, []domain.Message, error) {
	itv, err := s.owned(ctx, uid, id)
	if err != nil {
		return domain.Interview{}, nil, err
	}
	msgs, err := s.repo.FindMessages(ctx, id)
	return itv, msgs, err
}

func (s *service) RecentMessages(ctx context.Context, uid, id int64, limit int) ([]domain.Message, error) {
	if _, err := s.owned(ctx, uid, id); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repo.FindLatestMessages(ctx, id, limit)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Interview, error) {
	return s.owned(ctx, uid, id)
}

func (s *service) List(ctx context.Context, uid int64, filter domain.ListFilter) ([]domain.Interview, int64, error) {
	var (
		eg    errgroup.Group
		itvs  []domain.Interview
		total int64
	)
	filter = filter.Normalize()
	// 并发执行两个查询
	eg.Go(func() error {
		var err error
		itvs, err = s.repo.FindByUid(ctx, uid, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid, filter)
		return err
	})
	return itvs, total, eg.Wait()
}

func (s *service) Snapshot(ctx context.Context, id int64) (domain.Snapshot, error) {
	itv, err := s.find(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	var (
		eg        errgroup.Group
		msgs      []domain.Message
		questions []domain.UsedQuestion
	)
	eg.Go(func() error {
		var err error
		msgs, err = s.repo.FindMessages(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		questions, err = s.usedQuestions(ctx, id)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{
		Interview: itv,
		Messages:  msgs,
		Questions: questions,
	}, nil
}

func (s *service) CompletedBetween(ctx context.Context, start, end int64, offset, limit int) ([]domain.Interview, error) {
	return s.repo.FindCompletedBetween(ctx, start, end, offset, limit)
}

// usedQuestions 题库里已经被删掉的题目会被跳过
func (s *service) usedQuestions(ctx context.Context, id int64) ([]domain.UsedQuestion, error) {
	usages, err := s.usageRepo.FindByInterviewId(ctx, id)
	if err != nil || len(usages) == 0 {
		return []domain.UsedQuestion{}, err
	}
	askedAt := make(map[int64]int64, len(usages))
	ids := make([]int64, 0, len(usages))
	for _, u := range usages {
		askedAt[u.QuestionId] = u.AskedAt
		ids = append(ids, u.QuestionId)
	}
	qs, err := s.qbSvc.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(idx int, src questionbank.Question) domain.UsedQuestion {
		return domain.UsedQuestion{
			Question: s.toQuestion(src),
			AskedAt:  askedAt[src.Id],
		}
	}), nil
}

func (s *service) find(ctx context.Context, id int64) (domain.Interview, error) {
	itv, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrInterviewNotFound) {
		return domain.Interview{}, ErrInterviewNotFound
	}
	return itv, err
}

// owned 先确认存在，再确认归属
func (s *service) owned(ctx context.Context, uid, id int64) (domain.Interview, error) {
	itv, err := s.find(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	if !itv.BelongsTo(uid) {
		return domain.Interview{}, domain.ErrForbidden
	}
	return itv, nil
}

func (s *service) toAIMessages(msgs []domain.Message) []ai.Message {
	return slice.Map(msgs, func(idx int, src domain.Message) ai.Message {
		return ai.Message{
			Role:    ai.Role(strings.ToLower(src.Role.String())),
			Content: src.Content,
		}
	})
}

func (s *service) toQuestion(q questionbank.Question) domain.Question {
	return domain.Question{
		Id:         q.Id,
		Category:   q.Category.String(),
		Difficulty: q.Difficulty.String(),
		Text:       q.Text,
	}
}
