// Package randsrc は、プロンプト合成で使用する乱数源を提供します。
// シード指定時は線形合同法による決定論的な系列を、未指定時はシステム乱数を使用します。
package randsrc

import (
	"math/rand/v2"
)

// 線形合同法の乗数と加数。同一シード・同一呼び出し順で常に同じ系列を再現します。
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// Source は「1つ選ぶ」「N個を重複なく選ぶ」操作を提供する乱数源です。
type Source struct {
	intN func(n int64) int64
}

// NewSeeded はシード付きの決定論的な乱数源を生成します。
func NewSeeded(seed int64) *Source {
	state := uint64(seed)
	return &Source{
		intN: func(n int64) int64 {
			state = state*lcgMultiplier + lcgIncrement
			// 最上位ビットを落として非負に揃えるのだ
			return int64(state>>1) % n
		},
	}
}

// NewSystem はシステム乱数に基づく乱数源を生成します。
func NewSystem() *Source {
	return &Source{intN: rand.Int64N}
}

// Int64N は [0, n) の乱数を返します。n <= 0 の場合は 0 を返します。
func (s *Source) Int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return s.intN(n)
}

// Pick はリストから1要素を選びます。空リストは空文字を返します。
func (s *Source) Pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[s.Int64N(int64(len(list)))]
}

// PickN はシャッフルして先頭 n 要素を切り出すことで、重複なしの選択を行います。
// n がリスト長を超える場合はリスト全体（順序はシャッフル済み）を返します。
func (s *Source) PickN(list []string, n int) []string {
	if len(list) == 0 || n <= 0 {
		return nil
	}
	shuffled := make([]string, len(list))
	copy(shuffled, list)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.Int64N(int64(i + 1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
