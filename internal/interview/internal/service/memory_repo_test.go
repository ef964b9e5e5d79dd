package service

import (
	"context"
	"sort"

	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository"
)

// memoryInterviewRepo 测试用的内存实现
type memoryInterviewRepo struct {
	interviews map[int64]domain.Interview
	messages   []domain.Message
	nextId     int64
	updates    int
	// usage 和真实实现一样，删除面试的时候一起删掉分配的题目
	usage *memoryUsageRepo
}

func newMemoryInterviewRepo(itvs ...domain.Interview) *memoryInterviewRepo {
	repo := &memoryInterviewRepo{interviews: make(map[int64]domain.Interview), nextId: 100}
	for _, itv := range itvs {
		repo.interviews[itv.Id] = itv
	}
	return repo
}

func (m *memoryInterviewRepo) Create(_ context.Context, itv domain.Interview) (int64, error) {
	m.nextId++
	itv.Id = m.nextId
	m.interviews[itv.Id] = itv
	return itv.Id, nil
}

func (m *memoryInterviewRepo) Update(_ context.Context, itv domain.Interview) error {
	m.updates++
	m.interviews[itv.Id] = itv
	return nil
}

func (m *memoryInterviewRepo) FindById(_ context.Context, id int64) (domain.Interview, error) {
	itv, ok := m.interviews[id]
	if !ok {
		return domain.Interview{}, repository.ErrInterviewNotFound
	}
	return itv, nil
}

func (m *memoryInterviewRepo) FindByUid(_ context.Context, uid int64, filter domain.ListFilter) ([]domain.Interview, error) {
	res := make([]domain.Interview, 0, len(m.interviews))
	for _, itv := range m.interviews {
		if itv.Uid == uid && (filter.Status == "" || itv.Status == filter.Status) {
			res = append(res, itv)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Id > res[j].Id
	})
	return res, nil
}

func (m *memoryInterviewRepo) CountByUid(ctx context.Context, uid int64, filter domain.ListFilter) (int64, error) {
	res, err := m.FindByUid(ctx, uid, filter)
	return int64(len(res)), err
}

func (m *memoryInterviewRepo) FindCompletedBetween(_ context.Context, start, end int64, offset, limit int) ([]domain.Interview, error) {
	return nil, nil
}

func (m *memoryInterviewRepo) Delete(_ context.Context, id int64) error {
	delete(m.interviews, id)
	msgs := m.messages[:0]
	for _, msg := range m.messages {
		if msg.InterviewId != id {
			msgs = append(msgs, msg)
		}
	}
	m.messages = msgs
	if m.usage != nil {
		return m.usage.DeleteByInterviewId(context.Background(), id)
	}
	return nil
}

func (m *memoryInterviewRepo) CreateMessage(_ context.Context, msg domain.Message) (domain.Message, error) {
	m.nextId++
	msg.Id = m.nextId
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *memoryInterviewRepo) FindMessages(_ context.Context, interviewId int64) ([]domain.Message, error) {
	res := make([]domain.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		if msg.InterviewId == interviewId {
			res = append(res, msg)
		}
	}
	return res, nil
}

func (m *memoryInterviewRepo) FindLatestMessages(ctx context.Context, interviewId int64, limit int) ([]domain.Message, error) {
	res, _ := m.FindMessages(ctx, interviewId)
	if len(res) > limit {
		res = res[len(res)-limit:]
	}
	return res, nil
}

func (m *memoryUsageRepo) FindByInterviewId(_ context.Context, interviewId int64) ([]repository.Usage, error) {
	res := make([]repository.Usage, 0, len(m.rows))
	for _, r := range m.rows {
		if r.InterviewId == interviewId {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *memoryUsageRepo) FindQuestionIdsByUid(_ context.Context, uid int64) ([]int64, error) {
	res := make([]int64, 0, len(m.rows))
	for _, r := range m.rows {
		if r.Uid == uid {
			res = append(res, r.QuestionId)
		}
	}
	return res, nil
}

func (m *memoryUsageRepo) DeleteByInterviewId(_ context.Context, interviewId int64) error {
	rows := m.rows[:0]
	for _, r := range m.rows {
		if r.InterviewId != interviewId {
			rows = append(rows, r)
		}
	}
	m.rows = rows
	return nil
}
