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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/service"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CompensationJob)(nil)

const DefaultLimit = 100

// CompensationJob 面试结束事件丢失的时候，给最近结束的面试补上分析报告
type CompensationJob struct {
	svc    service.Service
	itvSvc interview.Service
	// window 往回看多久
	window time.Duration
	// delay 刚结束的面试留给消费者处理
	delay  time.Duration
	limit  int
	logger *elog.Component
}

func NewCompensationJob(svc service.Service, itvSvc interview.Service,
	window, delay time.Duration, limit int) *CompensationJob {
	// limit 不是正数的话分页永远结束不了
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &CompensationJob{
		svc:    svc,
		itvSvc: itvSvc,
		window: window,
		delay:  delay,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (j *CompensationJob) Name() string {
	return "analytics-compensation"
}

func (j *CompensationJob) Run(ctx context.Context) error {
	end := time.Now().Add(-j.delay)
	start := end.Add(-j.window)
	for offset := 0; ; offset += j.limit {
		itvs, err := j.itvSvc.CompletedBetween(ctx, start.UnixMilli(), end.UnixMilli(), offset, j.limit)
		if err != nil {
			return fmt.Errorf("查找已经结束的面试失败: %w", err)
		}
		ids := slice.Map(itvs, func(idx int, src interview.Interview) int64 {
			return src.Id
		})
		missing, err := j.svc.Unanalyzed(ctx, ids)
		if err != nil {
			return fmt.Errorf("查找没有报告的面试失败: %w", err)
		}
		for _, id := range missing {
			if _, err = j.svc.Analyze(ctx, id); err != nil {
				// 单个失败不影响其他面试，下一轮还会再试
				j.logger.Error("补偿生成分析报告失败",
					elog.FieldErr(err),
					elog.Int64("interviewId", id))
			}
		}
		if len(itvs) < j.limit {
			return nil
		}
	}
}
