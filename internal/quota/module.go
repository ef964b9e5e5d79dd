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

package quota

import (
	"github.com/ecodeclub/mockinterview/internal/quota/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/service"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Service = service.Service
type Handler = web.Handler
type Plan = domain.Plan
type Kind = domain.Kind

const (
	PlanFree    = domain.PlanFree
	PlanPremium = domain.PlanPremium
	KindText    = domain.KindText
	KindAudio   = domain.KindAudio
)

var ErrQuotaExceeded = service.ErrQuotaExceeded
