package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// idLength 是资源标识符的固定长度（24 个十六进制字符，即 12 字节）。
const idLength = 24

// IsValidID 校验调用方传入的标识符是否为合法的资源主键。
// - 合法形式：固定 24 位的十六进制字符串（大小写均可）。
// - 所有查询路径在访问存储前都应先通过该校验快速失败，
//   避免无意义的存储往返；这只是形状检查，不是安全边界。
func IsValidID(s string) bool {
	if len(s) != idLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NewID 生成一个新的 24 位十六进制标识符。
// - 取 12 字节加密随机数做十六进制编码，创建后不可变。
func NewID() string {
	buf := make([]byte, idLength/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 在现代平台上不应失败；若失败说明运行环境已不可信。
		panic("utils: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
