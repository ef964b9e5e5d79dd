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

package analytics

import (
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/event"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/job"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/service"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/web"
)

type (
	Handler                    = web.Handler
	Service                    = service.Service
	InterviewAnalytics         = domain.InterviewAnalytics
	CategoryScore              = domain.CategoryScore
	DifficultyScore            = domain.DifficultyScore
	CompensationJob            = job.CompensationJob
	InterviewCompletedConsumer = event.InterviewCompletedConsumer
	InterviewDeletedConsumer   = event.InterviewDeletedConsumer
)

var ErrAnalyticsNotFound = service.ErrAnalyticsNotFound

type Module struct {
	Hdl             *Handler
	Svc             Service
	CompensationJob *CompensationJob
	Consumer        *InterviewCompletedConsumer
	DeletedConsumer *InterviewDeletedConsumer
}
