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
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ejob"
)

//go:embed seed.json
var seedData []byte

type seedQuestion struct {
	Category        string   `json:"category"`
	Level           string   `json:"level"`
	Difficulty      string   `json:"difficulty"`
	Text            string   `json:"text"`
	SuggestedAnswer string   `json:"suggestedAnswer"`
	Tags            []string `json:"tags"`
}

// SeedJobStarter 把内置的题库导入数据库，可以重复执行
type SeedJobStarter struct {
	svc    service.Service
	data   []byte
	logger *elog.Component
}

func NewSeedJobStarter(svc service.Service) *SeedJobStarter {
	return &SeedJobStarter{
		svc:    svc,
		data:   seedData,
		logger: elog.DefaultLogger,
	}
}

func (s *SeedJobStarter) Name() string {
	return "questionbank-seed"
}

func (s *SeedJobStarter) Start(ctx ejob.Context) error {
	_, err := s.Seed(ctx.Ctx)
	return err
}

func (s *SeedJobStarter) Seed(ctx context.Context) (int, error) {
	var raw []seedQuestion
	if err := json.Unmarshal(s.data, &raw); err != nil {
		return 0, fmt.Errorf("解析种子题库失败: %w", err)
	}
	qs := slice.Map(raw, func(idx int, src seedQuestion) domain.Question {
		return domain.Question{
			Category:        domain.Category(src.Category),
			Level:           domain.Level(src.Level),
			Difficulty:      domain.Difficulty(src.Difficulty),
			Text:            src.Text,
			SuggestedAnswer: src.SuggestedAnswer,
			Tags:            src.Tags,
		}
	})
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	cnt, err := s.svc.Seed(ctx, qs)
	if err != nil {
		return cnt, err
	}
	s.logger.Info("导入种子题库完成", elog.Int("total", len(qs)), elog.Int("inserted", cnt))
	return cnt, nil
}
