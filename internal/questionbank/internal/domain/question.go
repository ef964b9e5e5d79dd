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

package domain

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

type Category string

const (
	CategoryFrontend          Category = "FRONTEND"
	CategoryBackend           Category = "BACKEND"
	CategoryFullstack         Category = "FULLSTACK"
	CategoryMobile            Category = "MOBILE"
	CategoryDevops            Category = "DEVOPS"
	CategoryDataScience       Category = "DATA_SCIENCE"
	CategorySecurity          Category = "SECURITY"
	CategoryCloud             Category = "CLOUD"
	CategoryTesting           Category = "TESTING"
	CategoryProductManagement Category = "PRODUCT_MANAGEMENT"
	CategoryDesign            Category = "DESIGN"
	CategoryGeneral           Category = "GENERAL"
)

// Categories 枚举顺序，分类识别也按照这个顺序
var Categories = []Category{
	CategoryFrontend, CategoryBackend, CategoryFullstack, CategoryMobile,
	CategoryDevops, CategoryDataScience, CategorySecurity, CategoryCloud,
	CategoryTesting, CategoryProductManagement, CategoryDesign, CategoryGeneral,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	return slice.Contains(Categories, c)
}

// Level 从低到高有序
type Level string

const (
	LevelJunior    Level = "JUNIOR"
	LevelPleno     Level = "PLENO"
	LevelSenior    Level = "SENIOR"
	LevelStaff     Level = "STAFF"
	LevelPrincipal Level = "PRINCIPAL"
)

var Levels = []Level{LevelJunior, LevelPleno, LevelSenior, LevelStaff, LevelPrincipal}

func (l Level) String() string {
	return string(l)
}

func (l Level) Valid() bool {
	return slice.Contains(Levels, l)
}

// Rank 越大越资深，非法值返回 -1
func (l Level) Rank() int {
	return slice.IndexFunc(Levels, func(src Level) bool {
		return src == l
	})
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string {
	return string(d)
}

func (d Difficulty) Valid() bool {
	return slice.Contains(Difficulties, d)
}

// Question 题库里面的一道题
type Question struct {
	Id              int64
	Category        Category
	Level           Level
	Difficulty      Difficulty
	Text            string
	SuggestedAnswer string
	Tags            []string
	Active          bool
	Ctime           int64
	Utime           int64
}

// HasAnyTag 忽略大小写，命中任意一个就可以
func (q Question) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, tag := range q.Tags {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuestionText
	}
	if !q.Category.Valid() || !q.Level.Valid() || !q.Difficulty.Valid() {
		return ErrInvalidEnum
	}
	return nil
}

// Criteria 查询条件，空切片代表不限制
type Criteria struct {
	Categories   []Category
	Levels       []Level
	Difficulties []Difficulty
	Tags         []string
	Limit        int
	ExcludeIds   []int64
}

// Classification 简历 + JD 的分析结果
type Classification struct {
	Level      Level
	Categories []Category
	Tags       []string
}
