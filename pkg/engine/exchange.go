package engine

import (
	"encoding/json"
	"fmt"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// ExportVersion はエクスポート文書に埋め込むバージョンタグです。
const ExportVersion = "1.0.0"

// exportDocument は4コレクションを1つのJSON文書に集約した形です。
// インポート時はポインタの nil 判定でキーの有無を区別するのだ。
type exportDocument struct {
	Version          string                    `json:"version"`
	Presets          *[]domain.SavedPreset     `json:"presets,omitempty"`
	CharacterPresets *[]domain.CharacterPreset `json:"character_presets,omitempty"`
	Templates        *[]domain.RuleTemplate    `json:"templates,omitempty"`
	Stats            *domain.GeneratorStats    `json:"stats,omitempty"`
}

// Export は全コレクションとバージョンタグを含む単一のJSON文書を生成します。
func (e *Engine) Export() ([]byte, error) {
	presets := e.presets.List()
	characters := e.characters.List()
	templates := e.templates.List()
	stats := e.stats.Stats()

	doc := exportDocument{
		Version:          ExportVersion,
		Presets:          &presets,
		CharacterPresets: &characters,
		Templates:        &templates,
		Stats:            &stats,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("エクスポート文書のエンコードに失敗しました: %w", err)
	}
	return data, nil
}

// Import はエクスポート文書を受け取り、存在するコレクションだけを置き換えます。
// パースは全か無かで行い、不正な文書は既存状態に一切手を付けずエラーを返します。
func (e *Engine) Import(data []byte) error {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("インポート文書のパースに失敗しました: %w", err)
	}

	if doc.Presets != nil {
		e.presets.replaceAll(*doc.Presets)
	}
	if doc.CharacterPresets != nil {
		e.characters.replaceAll(*doc.CharacterPresets)
	}
	if doc.Templates != nil {
		e.templates.replaceAll(*doc.Templates)
	}
	if doc.Stats != nil {
		e.stats.replace(*doc.Stats)
	}
	return nil
}
