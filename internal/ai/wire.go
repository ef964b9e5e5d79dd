//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/mockinterview/internal/ai/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm/handler/metrics"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initLLMRecordDAO,
		repository.NewLLMLogRepo,

		log.NewHandler,
		initMetricsBuilder,
		record.NewHandler,
		InitCommonHandlers,
		InitPlatform,
		InitRootHandler,
		llm.NewLLMService,

		InitChatConfig,
		service.NewService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMLLMRecordDAO(db)
}

var metricsOnce = sync.Once{}
var metricsBuilder *metrics.HandlerBuilder

func initMetricsBuilder() *metrics.HandlerBuilder {
	metricsOnce.Do(func() {
		metricsBuilder = metrics.NewHandler(prometheus.DefaultRegisterer)
	})
	return metricsBuilder
}

// InitCommonHandlers log -> metrics -> record -> platform
func InitCommonHandlers(log *log.HandlerBuilder,
	metrics *metrics.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, metrics, record}
}

type llmConfig struct {
	Platform    string  `yaml:"platform"`
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseURL"`
	Model       string  `yaml:"model"`
	MaxTokens   int64   `yaml:"maxTokens"`
	Temperature float64 `yaml:"temperature"`
}

func loadLLMConfig() llmConfig {
	var cfg llmConfig
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitPlatform 真正的出口
func InitPlatform() (handler.Handler, error) {
	cfg := loadLLMConfig()
	if cfg.Platform == "zhipu" {
		h, err := zhipu.NewHandler(cfg.APIKey)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return openai.NewHandler(cfg.APIKey, cfg.BaseURL), nil
}

func InitRootHandler(common []handler.Builder, platform handler.Handler) handler.Handler {
	return handler.NewCompositionHandler(common, platform)
}

func InitChatConfig() service.ChatConfig {
	return newChatConfig(loadLLMConfig())
}

// 没有配置模型的时候按照平台选默认模型
var defaultModels = map[string]string{
	"openai": "gpt-4o-mini",
	"zhipu":  "glm-4-flash",
}

func newChatConfig(cfg llmConfig) service.ChatConfig {
	res := service.ChatConfig{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	if res.Model == "" {
		res.Model = defaultModels[cfg.Platform]
	}
	if res.Model == "" {
		res.Model = defaultModels["openai"]
	}
	if res.MaxTokens <= 0 {
		res.MaxTokens = 2000
	}
	if res.Temperature <= 0 {
		res.Temperature = 0.7
	}
	return res
}
