package svc

import (
	"github.com/redis/go-redis/v9"

	"dao-client-sol/internal/cache"
	"dao-client-sol/internal/chain"
	"dao-client-sol/internal/config"
	"dao-client-sol/internal/consts"
	"dao-client-sol/internal/mq"
	"dao-client-sol/internal/oracle"
	"dao-client-sol/internal/txbuilder"
	"dao-client-sol/internal/types"
	"dao-client-sol/pkg/logger"
)

// ServiceContext 持有 API 服务的全部资源
type ServiceContext struct {
	Config     config.ApiConfig
	Oracle     oracle.PriceSource
	PriceCache *cache.PriceCache
	Ledger     chain.Ledger
	Assembler  *txbuilder.Assembler
	Publisher  *mq.RecordPublisher
}

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.ApiConfig) (*ServiceContext, error) {
	// 1. 部署常量：程序地址与费用接收账户，未配置时退回默认部署
	programStr := c.ChainConf.ProgramID
	if programStr == "" {
		programStr = consts.DaoProgramStr
	}
	feeStr := c.ChainConf.FeeRecipient
	if feeStr == "" {
		feeStr = consts.FeeRecipientStr
	}
	programID, err := types.TryPubkeyFromBase58(programStr)
	if err != nil {
		return nil, err
	}
	feeRecipient, err := types.TryPubkeyFromBase58(feeStr)
	if err != nil {
		return nil, err
	}

	// 2. Redis 客户端（可选，仅用于跨实例价格缓存共享）
	var rdb *redis.Client
	if c.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
	}

	// 3. 价格源与缓存
	priceSource := oracle.NewClient(c.OracleConf.Endpoint, c.OracleConf.Timeout())
	priceCache := cache.NewPriceCache(rdb, c.OracleConf.MaxStale())

	// 4. 账本连接与组装器
	ledger := chain.NewRPCLedger(c.ChainConf.RpcEndpoint)
	assembler := txbuilder.NewAssembler(txbuilder.Config{
		ProgramID:    programID,
		FeeRecipient: feeRecipient,
	}, ledger, nil)

	// 5. 确认事件生产者
	producer, err := mq.NewKafkaProducer(c.KafkaConf)
	if err != nil {
		logger.Errorf("Kafka producer 初始化失败: %v", err)
		return nil, err
	}

	logger.Infof("API 服务上下文初始化完成, program=%s fee_recipient=%s", programID, feeRecipient)
	return &ServiceContext{
		Config:     c,
		Oracle:     priceSource,
		PriceCache: priceCache,
		Ledger:     ledger,
		Assembler:  assembler,
		Publisher:  mq.NewRecordPublisher(producer, c.KafkaConf.Topic),
	}, nil
}

// Close 关闭服务上下文中的资源
func (ctx *ServiceContext) Close() {
	if ctx.Publisher != nil {
		ctx.Publisher.Close()
	}
}
