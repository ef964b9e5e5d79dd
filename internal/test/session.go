package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

const sessionKey = "_session"

// 测试里面由中间件把 session 放进 gin.Context
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64,
	jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(sessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(sessionKey)
	if !ok {
		return nil, errors.New("测试没有设置 session")
	}
	sess, ok := val.(session.Session)
	if !ok {
		return nil, errors.New("session 类型不对")
	}
	return sess, nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return errors.New("测试 SessionProvider 不支持 Destroy")
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return errors.New("测试 SessionProvider 不支持 UpdateClaims")
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return errors.New("测试 SessionProvider 不支持 RenewAccessToken")
}
