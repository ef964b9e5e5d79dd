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

package web

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/errs"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/service"
	analyticsmocks "github.com/ecodeclub/mockinterview/internal/analytics/mocks"
	"github.com/ecodeclub/mockinterview/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 123

func TestHandler_Detail(t *testing.T) {
	avg := int64(540)
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) service.Service
		req  IdReq

		wantCode int
		wantResp test.Result[Analytics]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := analyticsmocks.NewMockService(ctrl)
				svc.EXPECT().Find(gomock.Any(), int64(uid), int64(1)).Return(domain.InterviewAnalytics{
					Id:                   3,
					InterviewId:          1,
					Uid:                  uid,
					OverallScore:         85,
					CommunicationQuality: 40,
					DepthOfKnowledge:     60,
					ClarityScore:         50,
					AvgResponseTime:      &avg,
					TotalMessages:        4,
					CategoryScores: []domain.CategoryScore{
						{Id: 5, Category: "BACKEND", Score: 85, QuestionsAnswered: 2, QuestionsCorrect: 2},
					},
					DifficultyScores: []domain.DifficultyScore{
						{Id: 6, Difficulty: "HARD", Score: 85, QuestionsAnswered: 2},
					},
					Ctime: 100,
				}, nil)
				return svc
			},
			req:      IdReq{Id: 1},
			wantCode: 200,
			wantResp: test.Result[Analytics]{Data: Analytics{
				Id:                   3,
				InterviewId:          1,
				OverallScore:         85,
				CommunicationQuality: 40,
				DepthOfKnowledge:     60,
				ClarityScore:         50,
				AvgResponseTime:      &avg,
				TotalMessages:        4,
				CategoryScores: []CategoryScore{
					{Category: "BACKEND", Score: 85, QuestionsAnswered: 2, QuestionsCorrect: 2},
				},
				DifficultyScores: []DifficultyScore{
					{Difficulty: "HARD", Score: 85, QuestionsAnswered: 2},
				},
				Ctime: 100,
			}},
		},
		{
			name: "报告还没有生成",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := analyticsmocks.NewMockService(ctrl)
				svc.EXPECT().Find(gomock.Any(), int64(uid), int64(2)).
					Return(domain.InterviewAnalytics{}, service.ErrAnalyticsNotFound)
				return svc
			},
			req:      IdReq{Id: 2},
			wantCode: 200,
			wantResp: test.Result[Analytics]{
				Code: errs.AnalyticsNotFound.Code,
				Msg:  errs.AnalyticsNotFound.Msg,
			},
		},
		{
			name: "别人的报告",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := analyticsmocks.NewMockService(ctrl)
				svc.EXPECT().Find(gomock.Any(), int64(uid), int64(3)).
					Return(domain.InterviewAnalytics{}, domain.ErrForbidden)
				return svc
			},
			req:      IdReq{Id: 3},
			wantCode: 200,
			wantResp: test.Result[Analytics]{
				Code: errs.Forbidden.Code,
				Msg:  errs.Forbidden.Msg,
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := analyticsmocks.NewMockService(ctrl)
				svc.EXPECT().Find(gomock.Any(), int64(uid), int64(4)).
					Return(domain.InterviewAnalytics{}, errors.New("mock db error"))
				return svc
			},
			req:      IdReq{Id: 4},
			wantCode: 500,
			wantResp: test.Result[Analytics]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
			})
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost,
				"/analytics/detail", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Analytics]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
