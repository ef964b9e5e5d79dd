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

package questionbank

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/job"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/repository/cache"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/repository/dao"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/service"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		initQuestionDAO,
		initQuestionCache,
		repository.NewCachedQuestionRepository,
		service.NewService,
		service.NewClassifier,
		service.NewSelector,
		web.NewAdminHandler,
		job.NewSeedJobStarter,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initQuestionDAO(db *egorm.Component) dao.QuestionDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMQuestionDAO(db)
}

func initQuestionCache(ec ecache.Cache) cache.QuestionCache {
	// 题库很少变，默认缓存一天
	expiration := econf.GetDuration("questionbank.cache.expiration")
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return cache.NewQuestionECache(ec, expiration)
}
