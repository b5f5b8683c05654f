package utils

import (
	"strings"
	"testing"
)

// 测试内容：验证用户名长度边界 3-50。
func TestValidateUsername(t *testing.T) {
	if ok, _ := ValidateUsername("ab"); ok {
		t.Fatalf("期望 2 字符用户名不合法")
	}
	if ok, _ := ValidateUsername("abc"); !ok {
		t.Fatalf("期望 3 字符用户名合法")
	}
	if ok, _ := ValidateUsername(strings.Repeat("a", 50)); !ok {
		t.Fatalf("期望 50 字符用户名合法")
	}
	if ok, _ := ValidateUsername(strings.Repeat("a", 51)); ok {
		t.Fatalf("期望 51 字符用户名不合法")
	}
}

// 测试内容：验证邮箱格式校验。
func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	for _, email := range valid {
		if ok, msg := ValidateEmail(email); !ok {
			t.Fatalf("期望 %q 合法: %s", email, msg)
		}
	}

	invalid := []string{"", "plain", "no@tld", "a b@c.com", "@example.com"}
	for _, email := range invalid {
		if ok, _ := ValidateEmail(email); ok {
			t.Fatalf("期望 %q 不合法", email)
		}
	}
}

// 测试内容：验证标题长度边界 1-255。
func TestValidateTitle(t *testing.T) {
	if ok, _ := ValidateTitle(""); ok {
		t.Fatalf("期望空标题不合法")
	}
	if ok, _ := ValidateTitle("x"); !ok {
		t.Fatalf("期望 1 字符标题合法")
	}
	if ok, _ := ValidateTitle(strings.Repeat("a", 255)); !ok {
		t.Fatalf("期望 255 字符标题合法")
	}
	if ok, _ := ValidateTitle(strings.Repeat("a", 256)); ok {
		t.Fatalf("期望 256 字符标题不合法")
	}
}

// 测试内容：验证长度按字符数而非字节数计算，多字节中文不被误判。
func TestValidate_CountsRunesNotBytes(t *testing.T) {
	// 100 个汉字 = 300 字节，按字符数应在 255 上限以内
	if ok, msg := ValidateTitle(strings.Repeat("图", 100)); !ok {
		t.Fatalf("期望 100 个汉字的标题合法: %s", msg)
	}
	if ok, _ := ValidateTitle(strings.Repeat("图", 256)); ok {
		t.Fatalf("期望 256 个汉字的标题不合法")
	}

	// 50 个汉字 = 150 字节，按字符数刚好到用户名上限
	if ok, msg := ValidateUsername(strings.Repeat("名", 50)); !ok {
		t.Fatalf("期望 50 个汉字的用户名合法: %s", msg)
	}
	if ok, _ := ValidateUsername(strings.Repeat("名", 51)); ok {
		t.Fatalf("期望 51 个汉字的用户名不合法")
	}
}
