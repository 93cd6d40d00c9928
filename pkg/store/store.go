// Package store は、プリセット・テンプレート・統計の永続化を抽象化する
// 小さなキー・バリューストアを提供します。同一のエンジンロジックが
// インメモリ実装・ファイル実装のどちらでも動作します。
package store

// KeyValueStore は文字列キーでバイト列を読み書きする永続化の契約です。
// 存在しないキーはエラーではなく ok=false として報告します。
type KeyValueStore interface {
	// Get はキーに対応する値を返します。キーが存在しない場合は ok=false を返し、
	// エラーにはしません。
	Get(key string) (value []byte, ok bool, err error)
	// Set はキーに値を書き込みます。既存の値は上書きされます。
	Set(key string, value []byte) error
	// Delete はキーを削除します。存在しないキーの削除は成功扱いです。
	Delete(key string) error
}
