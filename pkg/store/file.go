package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File はディレクトリ配下に「キーごとに1つのJSONファイル」を置くファイル実装です。
// 欠落しているファイルは空のコレクションとして扱われます。
type File struct {
	dir string
}

// NewFile はディレクトリを（なければ作成して）ファイルストアを生成します。
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ストアディレクトリの作成に失敗しました: %w", err)
	}
	return &File{dir: dir}, nil
}

// Get は KeyValueStore 実装です。ファイルが存在しない場合は ok=false を返します。
func (f *File) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("キー '%s' の読み込みに失敗しました: %w", key, err)
	}
	return data, true, nil
}

// Set は KeyValueStore 実装です。一時ファイル経由の置き換えで書き込みます。
func (f *File) Set(key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("キー '%s' の書き込みに失敗しました: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("キー '%s' の置き換えに失敗しました: %w", key, err)
	}
	return nil
}

// Delete は KeyValueStore 実装です。存在しないキーの削除は成功扱いです。
func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("キー '%s' の削除に失敗しました: %w", key, err)
	}
	return nil
}

// path はキーをファイルパスへ解決します。パス区切りはキーに使えないのだ。
func (f *File) path(key string) string {
	safe := strings.NewReplacer("/", "_", `\`, "_").Replace(key)
	return filepath.Join(f.dir, safe+".json")
}
