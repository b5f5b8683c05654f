package utils

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/appdotbuilder/img-share/internal/consts"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	// 按字符数而不是字节数计长，中文用户名不吃亏
	if n := utf8.RuneCountInString(username); n < consts.UsernameMinLength || n > consts.UsernameMaxLength {
		return false, fmt.Sprintf("用户名长度必须在 %d-%d 个字符之间", consts.UsernameMinLength, consts.UsernameMaxLength)
	}
	return true, ""
}

// ValidateEmail checks if the email meets the requirements.
func ValidateEmail(email string) (bool, string) {
	if email == "" || utf8.RuneCountInString(email) > consts.EmailMaxLength {
		return false, "邮箱不能为空且长度不能超过 255"
	}
	if !emailPattern.MatchString(email) {
		return false, "邮箱格式不正确"
	}
	return true, ""
}

// ValidateTitle checks if the image title meets the requirements.
func ValidateTitle(title string) (bool, string) {
	if n := utf8.RuneCountInString(title); n < consts.TitleMinLength || n > consts.TitleMaxLength {
		return false, fmt.Sprintf("标题长度必须在 %d-%d 个字符之间", consts.TitleMinLength, consts.TitleMaxLength)
	}
	return true, ""
}
