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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/pkg/errors"
)

var ErrAnalyticsNotFound = errors.New("缓存中没有该报告")

// AnalyticsCache 报告生成之后就不会再变，按照面试 ID 缓存
type AnalyticsCache interface {
	Get(ctx context.Context, interviewId int64) (domain.InterviewAnalytics, error)
	Set(ctx context.Context, a domain.InterviewAnalytics) error
	Delete(ctx context.Context, interviewId int64) error
}

type AnalyticsECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewAnalyticsECache(ec ecache.Cache, expiration time.Duration) AnalyticsCache {
	return &AnalyticsECache{
		ec: &ecache.NamespaceCache{
			Namespace: "analytics:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *AnalyticsECache) Get(ctx context.Context, interviewId int64) (domain.InterviewAnalytics, error) {
	val := c.ec.Get(ctx, c.key(interviewId))
	if val.KeyNotFound() {
		return domain.InterviewAnalytics{}, ErrAnalyticsNotFound
	}
	if val.Err != nil {
		return domain.InterviewAnalytics{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.InterviewAnalytics{}, errors.Wrap(err, "缓存数据类型不对")
	}
	var a domain.InterviewAnalytics
	err = json.Unmarshal([]byte(str), &a)
	if err != nil {
		return domain.InterviewAnalytics{}, errors.Wrap(err, "反序列化报告失败")
	}
	return a, nil
}

func (c *AnalyticsECache) Set(ctx context.Context, a domain.InterviewAnalytics) error {
	data, err := json.Marshal(a)
	if err != nil {
		return errors.Wrap(err, "序列化报告失败")
	}
	return c.ec.Set(ctx, c.key(a.InterviewId), string(data), c.expiration)
}

func (c *AnalyticsECache) Delete(ctx context.Context, interviewId int64) error {
	_, err := c.ec.Delete(ctx, c.key(interviewId))
	return err
}

func (c *AnalyticsECache) key(interviewId int64) string {
	return fmt.Sprintf("interview:%d", interviewId)
}
