package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	analyticsmocks "github.com/ecodeclub/mockinterview/internal/analytics/mocks"
	"github.com/ecodeclub/mockinterview/internal/interview"
	interviewmocks "github.com/ecodeclub/mockinterview/internal/interview/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompensationJob_Run(t *testing.T) {
	testCases := []struct {
		name string
		mock func(svc *analyticsmocks.MockService, itvSvc *interviewmocks.MockService)

		wantErr error
	}{
		{
			name: "分页补偿",
			mock: func(svc *analyticsmocks.MockService, itvSvc *interviewmocks.MockService) {
				itvSvc.EXPECT().CompletedBetween(gomock.Any(), gomock.Any(), gomock.Any(), 0, 2).
					Return([]interview.Interview{{Id: 1}, {Id: 2}}, nil)
				itvSvc.EXPECT().CompletedBetween(gomock.Any(), gomock.Any(), gomock.Any(), 2, 2).
					Return([]interview.Interview{{Id: 3}}, nil)
				svc.EXPECT().Unanalyzed(gomock.Any(), []int64{1, 2}).Return([]int64{2}, nil)
				svc.EXPECT().Unanalyzed(gomock.Any(), []int64{3}).Return([]int64{3}, nil)
				svc.EXPECT().Analyze(gomock.Any(), int64(2)).Return(domain.InterviewAnalytics{}, errors.New("mock db error"))
				svc.EXPECT().Analyze(gomock.Any(), int64(3)).Return(domain.InterviewAnalytics{Id: 9}, nil)
			},
		},
		{
			name: "没有结束的面试",
			mock: func(svc *analyticsmocks.MockService, itvSvc *interviewmocks.MockService) {
				itvSvc.EXPECT().CompletedBetween(gomock.Any(), gomock.Any(), gomock.Any(), 0, 2).
					Return([]interview.Interview{}, nil)
				svc.EXPECT().Unanalyzed(gomock.Any(), []int64{}).Return([]int64{}, nil)
			},
		},
		{
			name: "查询面试失败",
			mock: func(svc *analyticsmocks.MockService, itvSvc *interviewmocks.MockService) {
				itvSvc.EXPECT().CompletedBetween(gomock.Any(), gomock.Any(), gomock.Any(), 0, 2).
					Return(nil, errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := analyticsmocks.NewMockService(ctrl)
			itvSvc := interviewmocks.NewMockService(ctrl)
			tc.mock(svc, itvSvc)
			job := NewCompensationJob(svc, itvSvc, time.Hour, time.Minute, 2)
			err := job.Run(context.Background())
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewCompensationJob_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := analyticsmocks.NewMockService(ctrl)
	itvSvc := interviewmocks.NewMockService(ctrl)
	// 配置成 0 的时候按照默认值分页，并且能够结束
	itvSvc.EXPECT().CompletedBetween(gomock.Any(), gomock.Any(), gomock.Any(), 0, DefaultLimit).
		Return([]interview.Interview{{Id: 1}}, nil)
	svc.EXPECT().Unanalyzed(gomock.Any(), []int64{1}).Return([]int64{}, nil)

	job := NewCompensationJob(svc, itvSvc, time.Hour, time.Minute, 0)
	assert.NoError(t, job.Run(context.Background()))
}
