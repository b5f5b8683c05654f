package service

import (
	"crypto/rand"
	"math/big"

	"github.com/appdotbuilder/img-share/internal/common"
	"github.com/appdotbuilder/img-share/internal/consts"
	"github.com/appdotbuilder/img-share/internal/repository"
)

// ShortURLGenerator 负责生成全局唯一的 8 位短链接 token。
// 这里的存在性检查只是避免落库时撞唯一索引的优化，
// 并发场景下的最终正确性由 short_url 唯一索引兜底。
type ShortURLGenerator struct {
	imageStore repository.ImageStore
}

func NewShortURLGenerator(imageStore repository.ImageStore) *ShortURLGenerator {
	return &ShortURLGenerator{imageStore: imageStore}
}

// Generate 随机生成候选并查重，碰撞时有限重试
func (g *ShortURLGenerator) Generate() (string, error) {
	for attempt := 0; attempt < consts.ShortURLMaxAttempts; attempt++ {
		candidate, err := randomShortURL()
		if err != nil {
			return "", common.NewInternalError("生成短链接失败", err)
		}

		exists, err := g.imageStore.ShortURLExists(candidate)
		if err != nil {
			return "", common.NewInternalError("查询短链接失败", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", common.NewExhaustedError("短链接生成重试次数已用尽")
}

func randomShortURL() (string, error) {
	alphabetSize := big.NewInt(int64(len(consts.ShortURLAlphabet)))
	buf := make([]byte, consts.ShortURLLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = consts.ShortURLAlphabet[n.Int64()]
	}
	return string(buf), nil
}
