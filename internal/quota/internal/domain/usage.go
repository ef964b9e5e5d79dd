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
	"time"
)

var ErrInvalidKind = errors.New("非法的面试类型")

type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanPremium Plan = "PREMIUM"
)

// Kind 和面试类型一一对应
type Kind string

const (
	KindText  Kind = "TEXT"
	KindAudio Kind = "AUDIO"
)

func (k Kind) Valid() bool {
	return k == KindText || k == KindAudio
}

// Usage 某个用户某个月已经用掉的面试次数
type Usage struct {
	Uid        int64
	Month      string
	TextCount  int
	AudioCount int
}

func (u Usage) Used(kind Kind) int {
	if kind == KindAudio {
		return u.AudioCount
	}
	return u.TextCount
}

// Month 按照 YYYY-MM 计算月份
func Month(t time.Time) string {
	return t.Format("2006-01")
}

// Limits 每种套餐每个月的上限
type Limits struct {
	Free    int `yaml:"free"`
	Premium int `yaml:"premium"`
}

func (l Limits) Of(plan Plan) int {
	if plan == PlanPremium {
		return l.Premium
	}
	// 不认识的套餐都按照免费处理
	return l.Free
}
