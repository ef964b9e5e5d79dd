package domain

type ChatRequest struct {
	Uid      int64
	Messages []Message
}

type ChatResponse struct {
	Content string
	Tokens  int64
}

type FeedbackRequest struct {
	Uid      int64
	Resume   string
	Job      string
	Messages []Message
}

// Feedback 面试结束之后模型给出的评价
type Feedback struct {
	Feedback string
	Insights string
	Score    int
}
