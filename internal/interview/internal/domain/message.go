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
	"strings"
	"time"
)

var ErrEmptyContent = errors.New("消息内容不能为空")

type Role string

const (
	RoleUser      Role = "USER"
	RoleAssistant Role = "ASSISTANT"
	RoleSystem    Role = "SYSTEM"
)

func (r Role) String() string {
	return string(r)
}

// Message 只能追加，不能修改
type Message struct {
	Id          int64
	InterviewId int64
	Role        Role
	Content     string
	Metadata    map[string]any
	Ctime       int64
}

func NewMessage(interviewId int64, role Role, content string, metadata map[string]any) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, ErrEmptyContent
	}
	return Message{
		InterviewId: interviewId,
		Role:        role,
		Content:     content,
		Metadata:    metadata,
		Ctime:       time.Now().UnixMilli(),
	}, nil
}

func (m Message) FromUser() bool {
	return m.Role == RoleUser
}

func (m Message) FromAssistant() bool {
	return m.Role == RoleAssistant
}
