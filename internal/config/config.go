package config

import (
	"time"

	"github.com/zeromicro/go-zero/rest"

	"dao-client-sol/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// OracleConfig 表示 SOL/USD 价格源配置
type OracleConfig struct {
	Endpoint         string `yaml:"endpoint"`           // 价格源地址（HTTP GET，JSON 响应）
	TimeoutS         int    `yaml:"timeout_s"`          // 单次请求超时（秒）
	RefreshIntervalS int    `yaml:"refresh_interval_s"` // 后台刷新间隔（秒）
	MaxStaleS        int    `yaml:"max_stale_s"`        // 缓存价可接受的最大陈旧时间（秒）
}

func (c *OracleConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutS) * time.Second
}

func (c *OracleConfig) RefreshInterval() time.Duration {
	if c.RefreshIntervalS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RefreshIntervalS) * time.Second
}

func (c *OracleConfig) MaxStale() time.Duration {
	if c.MaxStaleS <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.MaxStaleS) * time.Second
}

// ChainConfig 表示目标部署：RPC 节点、DAO 程序地址、协议费接收账户
type ChainConfig struct {
	RpcEndpoint  string `yaml:"rpc_endpoint"`
	ProgramID    string `yaml:"program_id"`
	FeeRecipient string `yaml:"fee_recipient"`
}

// KafkaProducerConfig 表示确认事件生产者配置
type KafkaProducerConfig struct {
	Brokers    string `yaml:"brokers"`    // Kafka broker 地址，多个用英文逗号分隔
	Topic      string `yaml:"topic"`      // 已确认记录事件的 topic
	Partitions int    `yaml:"partitions"` // topic 分区数（不存在时创建用）
	BatchSize  int    `yaml:"batch_size"` // 批处理大小（单位字节）
	LingerMs   int    `yaml:"linger_ms"`  // 批处理最大延迟（毫秒）
}

// ApiConfig 是主配置结构体，驱动 DAO 交易构建服务
type ApiConfig struct {
	Rest rest.RestConf `yaml:"rest"`

	LogConf    LogConfig           `yaml:"logger"`
	OracleConf OracleConfig        `yaml:"oracle"`
	ChainConf  ChainConfig         `yaml:"chain"`
	KafkaConf  KafkaProducerConfig `yaml:"kafka_producer"`

	RedisAddr string `yaml:"redis_addr"` // Redis 地址，用于跨实例共享价格缓存
}
