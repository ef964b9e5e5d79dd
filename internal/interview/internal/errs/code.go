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

package errs

var (
	SystemError       = ErrorCode{Code: 522001, Msg: "系统错误"}
	InterviewNotFound = ErrorCode{Code: 522002, Msg: "面试不存在"}
	Forbidden         = ErrorCode{Code: 522003, Msg: "无权访问该面试"}
	InvalidState      = ErrorCode{Code: 522004, Msg: "面试当前状态不允许该操作"}
	InvalidInput      = ErrorCode{Code: 522005, Msg: "面试类型或者消息内容不合法"}
	QuotaExceeded     = ErrorCode{Code: 522006, Msg: "本月面试次数已经用完"}
	Upstream          = ErrorCode{Code: 522007, Msg: "大模型服务暂时不可用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
