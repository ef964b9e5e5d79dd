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

package service

import (
	"strings"

	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
)

//go:generate mockgen -source=./classifier.go -destination=../../mocks/classifier.mock.go -package=qbmocks -typed=true Classifier

// Classifier 根据简历和 JD 推断级别、技术分类和技能标签
// 纯关键字匹配，不会失败
type Classifier interface {
	Classify(resume, job string) domain.Classification
}

type levelKeywords struct {
	level    domain.Level
	keywords []string
}

type categoryKeywords struct {
	category domain.Category
	keywords []string
}

// 从资深到初级，先命中的优先
var levelRules = []levelKeywords{
	{level: domain.LevelPrincipal, keywords: []string{"principal", "distinguished", "fellow", "chief"}},
	{level: domain.LevelStaff, keywords: []string{"staff", "architect", "arquiteto", "principal"}},
	{level: domain.LevelSenior, keywords: []string{"senior", "sênior", "sr", "sr.", "advanced", "avançado", "5+ anos", "5 anos", "lead", "tech lead"}},
	{level: domain.LevelPleno, keywords: []string{"pleno", "mid-level", "intermediário", "intermediate", "2-5 anos", "3-6 anos", "3 anos", "4 anos"}},
	{level: domain.LevelJunior, keywords: []string{"junior", "júnior", "jr", "jr.", "entry-level", "iniciante", "0-2 anos", "trainee", "estagiário"}},
}

var categoryRules = []categoryKeywords{
	{category: domain.CategoryFrontend, keywords: []string{"react", "vue", "angular", "frontend", "front-end", "html", "css", "javascript", "typescript", "next.js", "nextjs", "ui", "ux", "svelte", "solid"}},
	{category: domain.CategoryBackend, keywords: []string{"backend", "back-end", "api", "node", "nodejs", "express", "nestjs", "java", "spring", "python", "django", "flask", ".net", "c#", "golang", "rust", "php", "laravel"}},
	{category: domain.CategoryFullstack, keywords: []string{"fullstack", "full-stack", "full stack"}},
	{category: domain.CategoryMobile, keywords: []string{"mobile", "ios", "android", "react native", "flutter", "swift", "kotlin", "xamarin"}},
	{category: domain.CategoryDevops, keywords: []string{"devops", "docker", "kubernetes", "k8s", "aws", "azure", "gcp", "terraform", "ansible", "jenkins", "gitlab", "ci/cd", "pipeline"}},
	{category: domain.CategoryDataScience, keywords: []string{"data science", "machine learning", "ml", "ai", "artificial intelligence", "tensorflow", "pytorch", "pandas", "numpy", "data engineer"}},
	{category: domain.CategorySecurity, keywords: []string{"security", "segurança", "penetration testing", "owasp", "cybersecurity", "infosec"}},
	{category: domain.CategoryCloud, keywords: []string{"cloud", "aws", "azure", "gcp", "serverless", "lambda", "cloud computing"}},
	{category: domain.CategoryTesting, keywords: []string{"testing", "qa", "quality assurance", "test automation", "selenium", "cypress", "jest", "tdd", "bdd"}},
	{category: domain.CategoryProductManagement, keywords: []string{"product manager", "pm", "product owner", "po", "agile", "scrum", "roadmap"}},
	{category: domain.CategoryDesign, keywords: []string{"design", "ui/ux", "figma", "sketch", "designer", "user experience"}},
}

var tagVocabulary = []string{
	"React", "Vue", "Angular", "Node.js", "TypeScript", "JavaScript", "Python", "Java",
	"C#", "Go", "Rust", "AWS", "Azure", "GCP", "Docker", "Kubernetes", "MongoDB",
	"PostgreSQL", "MySQL", "Redis", "REST", "GraphQL", "WebSockets", "Git", "CI/CD",
	"Agile", "Scrum", "Leadership", "Communication", "Problem Solving", "NestJS",
	"Express", "Django", "Flask", "Spring", "Laravel", "Next.js", "Prisma",
	"Performance", "Security", "Testing", "TDD", "Clean Architecture",
}

type keywordClassifier struct{}

func NewClassifier() Classifier {
	return &keywordClassifier{}
}

func (c *keywordClassifier) Classify(resume, job string) domain.Classification {
	combined := strings.ToLower(resume + " " + job)
	return domain.Classification{
		Level:      c.detectLevel(strings.ToLower(job)),
		Categories: c.detectCategories(combined),
		Tags:       c.extractTags(combined),
	}
}

// 级别只看 JD
func (c *keywordClassifier) detectLevel(job string) domain.Level {
	for _, rule := range levelRules {
		if containsAny(job, rule.keywords) {
			return rule.level
		}
	}
	return domain.LevelPleno
}

func (c *keywordClassifier) detectCategories(text string) []domain.Category {
	res := make([]domain.Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			res = append(res, rule.category)
		}
	}
	// 行为面试题总是可以出
	return append(res, domain.CategoryGeneral)
}

func (c *keywordClassifier) extractTags(text string) []string {
	res := make([]string, 0, 8)
	for _, tag := range tagVocabulary {
		if strings.Contains(text, strings.ToLower(tag)) {
			res = append(res, tag)
		}
	}
	return res
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
