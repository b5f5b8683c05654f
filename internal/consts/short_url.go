package consts

// 短链接生成相关常量
const (
	// ShortURLAlphabet 候选字符集：26 小写 + 26 大写 + 10 数字
	ShortURLAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// ShortURLLength 短链接固定长度
	ShortURLLength = 8

	// ShortURLMaxAttempts 碰撞重试上限
	ShortURLMaxAttempts = 10
)
