package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"合法小写", "5f1d7a2b9c3e4d5f6a7b8c9d", true},
		{"合法大写混合", "5F1D7A2B9C3E4D5F6A7B8C9D", true},
		{"长度不足", "5f1d7a2b9c3e4d5f6a7b8c9", false},
		{"长度超出", "5f1d7a2b9c3e4d5f6a7b8c9d0", false},
		{"非十六进制字符", "5f1d7a2b9c3e4d5f6a7b8c9z", false},
		{"空字符串", "", false},
		{"注入形状输入", "1 OR 1=1; DROP TABLE -- ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidID(tc.input))
		})
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.True(t, IsValidID(id), "生成的 ID 应通过形状校验: %s", id)
		_, dup := seen[id]
		assert.False(t, dup, "生成的 ID 不应重复: %s", id)
		seen[id] = struct{}{}
	}
}
