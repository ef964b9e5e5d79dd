//go:build wireinject

package quota

import (
	"sync"

	"github.com/ecodeclub/mockinterview/internal/quota/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/repository/dao"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/service"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		initUsageDAO,
		repository.NewUsageRepository,
		initLimits,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initUsageDAO(db *egorm.Component) dao.UsageDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUsageDAO(db)
}

func initLimits() domain.Limits {
	limits := domain.Limits{Free: 1, Premium: 20}
	// 没有配置就用默认值
	_ = econf.UnmarshalKey("quota", &limits)
	return limits
}
