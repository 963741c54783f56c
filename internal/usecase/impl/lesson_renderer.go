package impl

import (
	"pesantren/internal/domain/entity"
	"pesantren/internal/usecase"
)

// blockRenderer turns lesson blocks into views. Display settings arrive with the
// renderer so nothing reads them from global state.
type blockRenderer struct {
	display  entity.DisplaySettings
	rendered []*usecase.RenderedBlock
}

var _ entity.BlockVisitor = (*blockRenderer)(nil)

// renderBlocks visits every block in order.
func renderBlocks(blocks entity.Blocks, display entity.DisplaySettings) ([]*usecase.RenderedBlock, error) {
	r := &blockRenderer{
		display:  display,
		rendered: make([]*usecase.RenderedBlock, 0, len(blocks)),
	}
	for _, b := range blocks {
		if err := b.Accept(r); err != nil {
			return nil, err
		}
	}

	return r.rendered, nil
}

func (r *blockRenderer) emit(kind entity.BlockKind, content any) {
	r.rendered = append(r.rendered, &usecase.RenderedBlock{
		Index:   len(r.rendered),
		Kind:    kind,
		Content: content,
	})
}

func (r *blockRenderer) VisitVideo(b *entity.VideoBlock) error {
	r.emit(entity.BlockKindVideo, &usecase.VideoView{
		URL:             b.URL,
		Caption:         b.Caption,
		DurationSeconds: b.DurationSeconds,
	})

	return nil
}

func (r *blockRenderer) VisitQuiz(b *entity.QuizBlock) error {
	view := &usecase.QuizView{
		Title:     b.Title,
		Questions: make([]usecase.QuizQuestionView, 0, len(b.Questions)),
	}
	for _, q := range b.Questions {
		options := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, o.Text)
		}
		view.Questions = append(view.Questions, usecase.QuizQuestionView{Prompt: q.Prompt, Options: options})
	}
	r.emit(entity.BlockKindQuiz, view)

	return nil
}

func (r *blockRenderer) VisitVocabulary(b *entity.VocabularyBlock) error {
	view := &usecase.VocabularyView{
		FontSize: r.display.FontSize,
		Entries:  make([]usecase.VocabularyEntryView, 0, len(b.Entries)),
	}
	for _, e := range b.Entries {
		entry := usecase.VocabularyEntryView{Arabic: e.Arabic}
		if r.display.ShowTransliteration {
			entry.Transliteration = e.Transliteration
		}
		if r.display.ShowTranslation {
			entry.Translation = e.Translation
		}
		view.Entries = append(view.Entries, entry)
	}
	r.emit(entity.BlockKindVocabulary, view)

	return nil
}

func (r *blockRenderer) VisitText(b *entity.TextBlock) error {
	view := &usecase.TextView{
		Body:   b.Body,
		Arabic: b.Arabic,
	}
	if b.Arabic != "" {
		view.FontSize = r.display.FontSize
	}
	if r.display.ShowTranslation {
		view.Translation = b.Translation
	}
	r.emit(entity.BlockKindText, view)

	return nil
}

func (r *blockRenderer) VisitImage(b *entity.ImageBlock) error {
	r.emit(entity.BlockKindImage, &usecase.ImageView{
		URL:     b.URL,
		Alt:     b.Alt,
		Caption: b.Caption,
	})

	return nil
}
