package interview

import (
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/event"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
)

type Interview = domain.Interview
type Message = domain.Message
type Role = domain.Role
type Status = domain.Status
type Snapshot = domain.Snapshot
type Question = domain.Question
type UsedQuestion = domain.UsedQuestion
type CompletedEvent = event.CompletedEvent
type DeletedEvent = event.DeletedEvent

const (
	RoleUser         = domain.RoleUser
	RoleAssistant    = domain.RoleAssistant
	StatusInProgress = domain.StatusInProgress
	StatusCompleted  = domain.StatusCompleted
	CompletedTopic   = event.CompletedTopic
	DeletedTopic     = event.DeletedTopic
)

var ErrInterviewNotFound = service.ErrInterviewNotFound
