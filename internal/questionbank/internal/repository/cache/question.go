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
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
	"github.com/pkg/errors"
)

var ErrQuestionNotFound = errors.New("缓存中没有该题目")

type QuestionCache interface {
	Get(ctx context.Context, id int64) (domain.Question, error)
	Set(ctx context.Context, q domain.Question) error
	Delete(ctx context.Context, id int64) error
}

type QuestionECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewQuestionECache(ec ecache.Cache, expiration time.Duration) QuestionCache {
	return &QuestionECache{
		ec: &ecache.NamespaceCache{
			Namespace: "questionbank:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *QuestionECache) Get(ctx context.Context, id int64) (domain.Question, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Question{}, ErrQuestionNotFound
	}
	if val.Err != nil {
		return domain.Question{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.Question{}, errors.Wrap(err, "缓存数据类型不对")
	}
	var q domain.Question
	err = json.Unmarshal([]byte(str), &q)
	if err != nil {
		return domain.Question{}, errors.Wrap(err, "反序列化题目失败")
	}
	return q, nil
}

func (c *QuestionECache) Set(ctx context.Context, q domain.Question) error {
	data, err := json.Marshal(q)
	if err != nil {
		return errors.Wrap(err, "序列化题目失败")
	}
	return c.ec.Set(ctx, c.key(q.Id), string(data), c.expiration)
}

func (c *QuestionECache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *QuestionECache) key(id int64) string {
	return fmt.Sprintf("question:%d", id)
}
