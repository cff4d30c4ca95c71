package txbuilder

import (
	"crypto/rand"
	"fmt"
	"io"

	sdktypes "github.com/blocto/solana-go-sdk/types"
)

// KeyGenerator 为每条新建记录生成一次性身份密钥对。
// 以接口注入而非全局随机源，测试可用固定种子获得确定性密钥。
type KeyGenerator interface {
	Generate() (sdktypes.Account, error)
}

type entropyKeyGen struct {
	entropy io.Reader
}

// NewKeyGenerator 基于给定熵源创建生成器，entropy 为 nil 时使用 crypto/rand
func NewKeyGenerator(entropy io.Reader) KeyGenerator {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &entropyKeyGen{entropy: entropy}
}

func (g *entropyKeyGen) Generate() (sdktypes.Account, error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(g.entropy, seed); err != nil {
		return sdktypes.Account{}, fmt.Errorf("read key seed: %w", err)
	}
	acct, err := sdktypes.AccountFromSeed(seed)
	if err != nil {
		return sdktypes.Account{}, fmt.Errorf("derive account from seed: %w", err)
	}
	return acct, nil
}
