//go:build wireinject

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
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/event"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/job"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository/cache"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository/dao"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/service"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/web"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	itvModule *interview.Module) (*Module, error) {
	wire.Build(
		initAnalyticsDAO,
		initAnalyticsCache,
		repository.NewCachedAnalyticsRepository,
		service.NewService,
		web.NewHandler,
		initCompensationJob,
		initCompletedConsumer,
		initDeletedConsumer,
		wire.FieldsOf(new(*interview.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initAnalyticsDAO(db *egorm.Component) dao.AnalyticsDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAnalyticsDAO(db)
}

func initAnalyticsCache(ec ecache.Cache) cache.AnalyticsCache {
	// 报告生成之后不会再变
	expiration := econf.GetDuration("analytics.cache.expiration")
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return cache.NewAnalyticsECache(ec, expiration)
}

func initCompensationJob(svc service.Service, itvSvc interview.Service) *job.CompensationJob {
	type Config struct {
		Window time.Duration `yaml:"window"`
		Delay  time.Duration `yaml:"delay"`
		Limit  int           `yaml:"limit"`
	}
	cfg := Config{
		Window: 24 * time.Hour,
		Delay:  5 * time.Minute,
		Limit:  100,
	}
	err := econf.UnmarshalKey("analytics.compensation", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	if cfg.Delay < 0 {
		cfg.Delay = 5 * time.Minute
	}
	if cfg.Limit <= 0 {
		cfg.Limit = job.DefaultLimit
	}
	return job.NewCompensationJob(svc, itvSvc, cfg.Window, cfg.Delay, cfg.Limit)
}

func initCompletedConsumer(svc service.Service, q mq.MQ) *event.InterviewCompletedConsumer {
	c, err := event.NewInterviewCompletedConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

func initDeletedConsumer(svc service.Service, q mq.MQ) *event.InterviewDeletedConsumer {
	c, err := event.NewInterviewDeletedConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
