package genai

import (
	"fmt"
	"strings"

	"github.com/epistleapp/epistle/internal/entities"
)

// HeaderImagePrompt seeds the app header background. The silhouette and
// contrast wording keeps the figures legible behind overlaid text.
const HeaderImagePrompt = "An artistic pencil and ink sketch with vibrant but soft watercolor wash. The central figures are Jesus and a small child walking together, shown as bold and distinct silhouettes with clear outlines. They are walking in a peaceful field during a golden sunset. High contrast between the figures and the warm glowing background. Ethereal, hand-drawn fine art style, minimalist but emotionally evocative."

// JourneyMapPrompt seeds a stylized route map of one mission journey.
func JourneyMapPrompt(title string, cities []string) string {
	return fmt.Sprintf("A hand-drawn antique style map of the ancient Mediterranean illustrating %s. A dotted route line connects these stops in order: %s. Parchment texture, ink linework with soft watercolor wash, small labelled city markers, no modern borders.", title, strings.Join(cities, ", "))
}

const contentSystemPromptKo = `당신은 성경 묵상을 돕는 목회자입니다. 요청된 본문에 대해 JSON 객체 하나만 출력하세요.
필드: passage (본문 전체, 절 번호 포함), meditationGuide (묵상 가이드, 질문 3개 포함),
context (시대적/지리적 배경 설명), intention (이 본문을 주신 하나님의 뜻),
imagePrompt (본문의 배경을 묘사하는 영어 이미지 프롬프트 한 문장).
JSON 외의 다른 텍스트는 출력하지 마세요.`

const contentSystemPromptEn = `You are a pastor guiding daily Bible meditation. For the requested passage output exactly one JSON object.
Fields: passage (the full text with verse numbers), meditationGuide (a meditation guide with three questions),
context (the historical and geographical background), intention (God's intention in giving this passage),
imagePrompt (a single English sentence describing the passage's setting for image generation).
Output nothing but the JSON object.`

const explainSystemPromptKo = `당신은 성경 교사입니다. 사용자가 선택한 구절을 전체 본문의 맥락 안에서 쉽고 간결하게 설명하세요.`

const explainSystemPromptEn = `You are a Bible teacher. Explain the user's selected text simply and concisely, within the context of the full passage.`

func contentSystemPrompt(lang entities.Language) string {
	if lang == entities.LanguageEnglish {
		return contentSystemPromptEn
	}
	return contentSystemPromptKo
}

func contentUserPrompt(req ContentRequest) string {
	if req.SecondBook != "" {
		return fmt.Sprintf("%s chapter %d and %s chapter %d", req.Book, req.ChapterStart, req.SecondBook, req.ChapterEnd)
	}
	if req.ChapterStart == req.ChapterEnd {
		return fmt.Sprintf("%s chapter %d", req.Book, req.ChapterStart)
	}
	return fmt.Sprintf("%s chapters %d-%d", req.Book, req.ChapterStart, req.ChapterEnd)
}

func explainSystemPrompt(lang entities.Language) string {
	if lang == entities.LanguageEnglish {
		return explainSystemPromptEn
	}
	return explainSystemPromptKo
}

func explainUserPrompt(selection, passage string) string {
	return fmt.Sprintf("Selected text:\n%s\n\nFull passage:\n%s", selection, passage)
}

func imageStylePrompt(prompt string) string {
	return prompt + ", watercolor sketch, soft light, no text, no modern objects"
}
