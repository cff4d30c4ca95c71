// Package codec 提供 DAO 程序指令负载的二进制原语编码。
//
// 布局与链上程序的 borsh 反序列化逐字节对齐：
//   - 字符串: 4 字节小端序长度前缀（按编码后字节数计，非字符数）+ 原始 UTF-8 字节
//   - u64/i64: 固定 8 字节小端序，有符号为补码
//   - 指令 tag: 单字节
//
// 编码是确定性的：相同输入永远产生相同字节序列。
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrEncodingOverflow 表示数值超出其固定编码宽度，绝不静默截断
var ErrEncodingOverflow = errors.New("value does not fit encoding width")

// AppendU8 追加 1 字节
func AppendU8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// AppendU64 追加 8 字节小端序无符号整数
func AppendU64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// AppendI64 追加 8 字节小端序有符号整数（补码）
func AppendI64(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

// AppendString 追加 4 字节小端序长度前缀 + 原始字节。
// 空串合法（长度 0，无负载字节）；长度超出 u32 范围时返回 ErrEncodingOverflow。
func AppendString(dst []byte, s string) ([]byte, error) {
	if len(s) > math.MaxUint32 {
		return nil, fmt.Errorf("string length %d: %w", len(s), ErrEncodingOverflow)
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(s)))
	return append(dst, s...), nil
}

// DecodeString 从 data 头部解出一个长度前缀字符串，返回值与消耗的字节数。
// 用于回读校验与测试；长度前缀声明超出剩余数据时报错。
func DecodeString(data []byte) (string, int, error) {
	if len(data) < 4 {
		return "", 0, fmt.Errorf("string prefix needs 4 bytes, have %d", len(data))
	}
	n := binary.LittleEndian.Uint32(data[:4])
	end := 4 + int(n)
	if end > len(data) {
		return "", 0, fmt.Errorf("string payload needs %d bytes, have %d", n, len(data)-4)
	}
	return string(data[4:end]), end, nil
}

// DecodeU64 从 data 头部解出 8 字节小端序无符号整数
func DecodeU64(data []byte) (uint64, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("u64 needs 8 bytes, have %d", len(data))
	}
	return binary.LittleEndian.Uint64(data[:8]), 8, nil
}

// DecodeI64 从 data 头部解出 8 字节小端序有符号整数
func DecodeI64(data []byte) (int64, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("i64 needs 8 bytes, have %d", len(data))
	}
	return int64(binary.LittleEndian.Uint64(data[:8])), 8, nil
}
