package consts

import "dao-client-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	// Programs
	SystemProgramStr = "11111111111111111111111111111111"

	// DAO 程序的默认部署地址（可被配置覆盖，用于测试备用部署）
	DaoProgramStr = "HpmNRpo1CgZmrjVadgDz1xZNBsqFEryxnqc86HWs4QK7"

	// 协议费接收账户，每笔付费指令都会向其转账
	FeeRecipientStr = "BAGek78CDYQ8phuDqNk7sQzD7LdJeKkb7jD4y2AyR3tJ"
)

var (
	SystemProgram = types.PubkeyFromBase58(SystemProgramStr)
	DaoProgram    = types.PubkeyFromBase58(DaoProgramStr)
	FeeRecipient  = types.PubkeyFromBase58(FeeRecipientStr)
)
