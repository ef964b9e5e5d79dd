package questionbank

import "github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"

type Question = domain.Question
type Category = domain.Category
type Level = domain.Level
type Difficulty = domain.Difficulty
type Classification = domain.Classification

const (
	CategoryGeneral  = domain.CategoryGeneral
	CategoryBackend  = domain.CategoryBackend
	CategoryFrontend = domain.CategoryFrontend
	LevelPleno       = domain.LevelPleno
	LevelSenior      = domain.LevelSenior
	DifficultyEasy   = domain.DifficultyEasy
	DifficultyMedium = domain.DifficultyMedium
	DifficultyHard   = domain.DifficultyHard
)
