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

const (
	BizInterviewChat     = "interview_chat"
	BizInterviewFeedback = "interview_feedback"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) String() string {
	return string(r)
}

type Message struct {
	Role    Role
	Content string
}

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id
	Tid string
	// 按照顺序发给模型的完整对话
	Messages []Message
	Config   Config
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// llm 的回答
	Answer string
}

type Config struct {
	// 使用的模型
	Model       string
	MaxTokens   int64
	Temperature float64
	// 要求模型只输出 JSON 对象
	JSONMode bool
}

type LLMRecord struct {
	Id       int64
	Tid      string
	Uid      int64
	Biz      string
	Model    string
	Tokens   int64
	Messages int
	Status   RecordStatus
	Answer   string
	Ctime    int64
	Utime    int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
