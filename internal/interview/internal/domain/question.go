package domain

// Question 题库里被分配给面试的题目
type Question struct {
	Id         int64
	Category   string
	Difficulty string
	Text       string
}

// UsedQuestion 面试和题目的关联，AskedAt 是分配的时间而不是真正问出来的时间
type UsedQuestion struct {
	Question
	AskedAt int64
}

// Snapshot 分析一场面试需要的全部数据
type Snapshot struct {
	Interview Interview
	Messages  []Message
	Questions []UsedQuestion
}
