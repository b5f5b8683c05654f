package consts

// 字段校验边界
const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
	EmailMaxLength    = 255
	TitleMinLength    = 1
	TitleMaxLength    = 255
)
