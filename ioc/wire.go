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

package ioc

import (
	"github.com/ecodeclub/mockinterview/internal/ai"
	"github.com/ecodeclub/mockinterview/internal/analytics"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/questionbank"
	"github.com/ecodeclub/mockinterview/internal/quota"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		ai.InitModule,
		questionbank.InitModule,
		quota.InitModule,
		interview.InitModule,
		analytics.InitModule,
		wire.FieldsOf(new(*questionbank.Module), "AdminHdl", "SeedJob"),
		wire.FieldsOf(new(*quota.Module), "Hdl"),
		wire.FieldsOf(new(*interview.Module), "Hdl"),
		wire.FieldsOf(new(*analytics.Module), "Hdl", "CompensationJob"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initJobs,
	)
	return new(App), nil
}
