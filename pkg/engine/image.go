package engine

import (
	imgdom "github.com/shouni/gemini-image-kit/pkg/domain"

	"github.com/shouni/go-prompt-studio/pkg/domain"
)

// ToImageRequest は生成結果を gemini-image-kit の画像生成要求へ写像します。
// ここは境界のデータ変換のみで、画像生成サービスの呼び出しは行いません。
func ToImageRequest(p *domain.GeneratedPrompt, opts domain.GenerationOptions) imgdom.ImageGenerationRequest {
	req := imgdom.ImageGenerationRequest{
		Prompt:         p.Original,
		NegativePrompt: p.NegativePrompt,
		AspectRatio:    opts.AspectRatio,
	}
	if opts.Seed != nil {
		seed := *opts.Seed
		req.Seed = &seed
	}
	return req
}
