package service

import (
	"strings"
	"testing"

	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/stretchr/testify/assert"
)

func userMessages(contents ...string) []interview.Message {
	res := make([]interview.Message, 0, len(contents))
	for _, c := range contents {
		res = append(res, interview.Message{Role: interview.RoleUser, Content: c})
	}
	return res
}

func TestCommunicationQuality(t *testing.T) {
	testCases := []struct {
		name  string
		users []interview.Message
		want  int
	}{
		{name: "没有回答", want: 50},
		{name: "平均 45 个字", users: userMessages(strings.Repeat("a", 40), strings.Repeat("b", 50)), want: 40},
		{name: "平均 300 个字", users: userMessages(strings.Repeat("a", 300)), want: 80},
		{name: "边界 100", users: userMessages(strings.Repeat("a", 100)), want: 80},
		{name: "边界 500", users: userMessages(strings.Repeat("a", 500)), want: 80},
		{name: "介于 50 和 100 之间", users: userMessages(strings.Repeat("a", 75)), want: 70},
		{name: "介于 500 和 1000 之间", users: userMessages(strings.Repeat("a", 800)), want: 70},
		{name: "太长", users: userMessages(strings.Repeat("a", 1001)), want: 60},
		// 按照字符而不是字节计算
		{name: "带重音的字符", users: userMessages(strings.Repeat("ã", 45)), want: 40},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, communicationQuality(tc.users))
		})
	}
}

func TestDepthOfKnowledge(t *testing.T) {
	testCases := []struct {
		name  string
		users []interview.Message
		want  int
	}{
		{name: "没有回答", want: 50},
		{name: "没有技术词汇", users: userMessages("Eu gosto de trabalhar em equipe."), want: 50},
		{name: "平均一个", users: userMessages("Usei Docker", "Fiz a API"), want: 60},
		{name: "平均两个", users: userMessages("Cache na API"), want: 75},
		{name: "平均三个以上", users: userMessages("Kubernetes, Docker e CI/CD com foco em escalabilidade"), want: 90},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, depthOfKnowledge(tc.users))
		})
	}
}

func TestClarityScore(t *testing.T) {
	testCases := []struct {
		name  string
		users []interview.Message
		want  int
	}{
		{name: "没有回答", want: 50},
		{name: "全部清晰", users: userMessages("Eu usaria uma fila aqui."), want: 100},
		{name: "词太少", users: userMessages("Sim, claro."), want: 0},
		{name: "没有标点", users: userMessages("eu usaria uma fila aqui"), want: 0},
		{name: "三分之一", users: userMessages("Eu usaria uma fila aqui.", "sim", "não"), want: 33},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clarityScore(tc.users))
		})
	}
}

func TestDurations(t *testing.T) {
	single := []interview.Message{{Role: interview.RoleUser, Ctime: 1000}}
	assert.Nil(t, totalDuration(nil))
	assert.Nil(t, totalDuration(single))
	assert.Nil(t, avgResponseTime(single))

	msgs := []interview.Message{
		{Role: interview.RoleAssistant, Ctime: 0},
		{Role: interview.RoleUser, Ctime: 30_000},
		{Role: interview.RoleAssistant, Ctime: 60_000},
		{Role: interview.RoleUser, Ctime: 90_000},
		{Role: interview.RoleUser, Ctime: 600_000},
	}
	assert.Equal(t, int64(10), *totalDuration(msgs))
	// (60 + 510) / 2
	assert.Equal(t, int64(285), *avgResponseTime([]interview.Message{msgs[1], msgs[3], msgs[4]}))
}

func TestNewBuckets(t *testing.T) {
	bs := newBuckets([]string{"BACKEND", "GENERAL", "BACKEND"}, 85)
	assert.Equal(t, []bucket{
		{key: "BACKEND", count: 2, total: 170, correct: 2},
		{key: "GENERAL", count: 1, total: 85, correct: 1},
	}, bs)
	assert.Equal(t, 85, bs[0].score())

	// 不及格不算答对
	bs = newBuckets([]string{"HARD"}, 69)
	assert.Equal(t, 0, bs[0].correct)
	assert.Equal(t, 69, bs[0].score())
}
