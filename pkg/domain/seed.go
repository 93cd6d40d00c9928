package domain

import (
	"crypto/sha256"
	"encoding/binary"
)

// SeedFromName は名前から決定論的なシード値を生成します。
// 同じ名前は常に同じシードに解決されるため、プリセット名に紐づく
// 生成結果の再現に使用できるのだ。
func SeedFromName(name string) int64 {
	hash := sha256.Sum256([]byte(name))
	seed := int64(binary.BigEndian.Uint64(hash[:8]))
	// 画像生成系のシード値は正の数が望ましいため、最上位ビットを落とすのが安全なのだ
	return seed & 0x7FFFFFFFFFFFFFFF
}
