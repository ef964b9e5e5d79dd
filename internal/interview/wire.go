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

package interview

import (
	"sync"

	"github.com/ecodeclub/mockinterview/internal/ai"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/event"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/web"
	"github.com/ecodeclub/mockinterview/internal/questionbank"
	"github.com/ecodeclub/mockinterview/internal/quota"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	qbModule *questionbank.Module,
	aiModule *ai.Module,
	quotaModule *quota.Module) (*Module, error) {
	wire.Build(
		initInterviewDAO,
		dao.NewGORMQuestionUsageDAO,
		repository.NewInterviewRepository,
		repository.NewQuestionUsageRepository,
		event.NewCompletedEventProducer,
		event.NewDeletedEventProducer,
		service.NewUsageTracker,
		service.NewPromptAssembler,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*questionbank.Module), "Svc", "Classifier", "Selector"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*quota.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initInterviewDAO(db *egorm.Component) dao.InterviewDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInterviewDAO(db)
}
