package entity

import (
	"encoding/json"

	"pesantren/internal/errors"
)

// BlockKind tags the variant of a lesson block.
type BlockKind string

const (
	BlockKindVideo      BlockKind = "video"
	BlockKindQuiz       BlockKind = "quiz"
	BlockKindVocabulary BlockKind = "vocabulary"
	BlockKindText       BlockKind = "text"
	BlockKindImage      BlockKind = "image"
)

// ErrUnknownBlockKind is returned when decoding a block with an unsupported kind tag.
var ErrUnknownBlockKind = errors.New("unknown block kind")

// Block is a closed sum type over lesson content. Only the types in this file implement it,
// so a BlockVisitor covers every kind.
type Block interface {
	Kind() BlockKind
	Accept(v BlockVisitor) error
	sealed()
}

// BlockVisitor must handle every block kind. Adding a kind adds a method here, which breaks
// every visitor until it handles the new kind.
type BlockVisitor interface {
	VisitVideo(b *VideoBlock) error
	VisitQuiz(b *QuizBlock) error
	VisitVocabulary(b *VocabularyBlock) error
	VisitText(b *TextBlock) error
	VisitImage(b *ImageBlock) error
}

// VideoBlock embeds a recorded kajian or lesson video.
type VideoBlock struct {
	URL             string `json:"url" validate:"required,url"`
	Caption         string `json:"caption,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty" validate:"gte=0"`
}

// QuizBlock is a multiple-choice quiz.
type QuizBlock struct {
	Title     string         `json:"title,omitempty"`
	Questions []QuizQuestion `json:"questions" validate:"dive"`
}

// QuizQuestion is one question with ordered options.
type QuizQuestion struct {
	Prompt  string       `json:"prompt" validate:"required"`
	Options []QuizOption `json:"options" validate:"dive"`
}

// QuizOption is one answer option.
type QuizOption struct {
	Text    string `json:"text" validate:"required"`
	Correct bool   `json:"correct"`
}

// VocabularyBlock lists mufradat with optional transliteration and translation.
type VocabularyBlock struct {
	Entries []VocabularyEntry `json:"entries" validate:"min=1,dive"`
}

// VocabularyEntry is one word of a vocabulary block.
type VocabularyEntry struct {
	Arabic          string `json:"arabic" validate:"required"`
	Transliteration string `json:"transliteration,omitempty"`
	Translation     string `json:"translation,omitempty"`
}

// TextBlock is prose, optionally with an Arabic passage and its translation.
type TextBlock struct {
	Body        string `json:"body"`
	Arabic      string `json:"arabic,omitempty"`
	Translation string `json:"translation,omitempty"`
}

// ImageBlock is an illustration.
type ImageBlock struct {
	URL     string `json:"url" validate:"required,url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

func (*VideoBlock) Kind() BlockKind      { return BlockKindVideo }
func (*QuizBlock) Kind() BlockKind       { return BlockKindQuiz }
func (*VocabularyBlock) Kind() BlockKind { return BlockKindVocabulary }
func (*TextBlock) Kind() BlockKind       { return BlockKindText }
func (*ImageBlock) Kind() BlockKind      { return BlockKindImage }

func (b *VideoBlock) Accept(v BlockVisitor) error      { return v.VisitVideo(b) }
func (b *QuizBlock) Accept(v BlockVisitor) error       { return v.VisitQuiz(b) }
func (b *VocabularyBlock) Accept(v BlockVisitor) error { return v.VisitVocabulary(b) }
func (b *TextBlock) Accept(v BlockVisitor) error       { return v.VisitText(b) }
func (b *ImageBlock) Accept(v BlockVisitor) error      { return v.VisitImage(b) }

func (*VideoBlock) sealed()      {}
func (*QuizBlock) sealed()       {}
func (*VocabularyBlock) sealed() {}
func (*TextBlock) sealed()       {}
func (*ImageBlock) sealed()      {}

// Blocks is the ordered content of a lesson. It encodes as [{"kind": ..., "data": {...}}].
type Blocks []Block

type blockEnvelope struct {
	Kind BlockKind       `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON encodes each block inside a kind-tagged envelope.
func (bs Blocks) MarshalJSON() ([]byte, error) {
	envelopes := make([]blockEnvelope, 0, len(bs))
	for i, b := range bs {
		if b == nil {
			return nil, errors.Errorf("block %d is nil", i)
		}
		data, err := json.Marshal(b)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s block %d", b.Kind(), i)
		}
		envelopes = append(envelopes, blockEnvelope{Kind: b.Kind(), Data: data})
	}

	return json.Marshal(envelopes)
}

// UnmarshalJSON decodes kind-tagged envelopes into concrete blocks.
func (bs *Blocks) UnmarshalJSON(data []byte) error {
	var envelopes []blockEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return errors.WithStack(err)
	}

	decoded := make(Blocks, 0, len(envelopes))
	for i, env := range envelopes {
		b, err := newBlock(env.Kind)
		if err != nil {
			return errors.Wrapf(err, "block %d", i)
		}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, b); err != nil {
				return errors.Wrapf(err, "failed to decode %s block %d", env.Kind, i)
			}
		}
		decoded = append(decoded, b)
	}
	*bs = decoded

	return nil
}

// Quiz returns the quiz block at index, if that block is a quiz.
func (bs Blocks) Quiz(index int) (*QuizBlock, bool) {
	if index < 0 || index >= len(bs) {
		return nil, false
	}
	quiz, ok := bs[index].(*QuizBlock)

	return quiz, ok
}

func newBlock(kind BlockKind) (Block, error) {
	switch kind {
	case BlockKindVideo:
		return &VideoBlock{}, nil
	case BlockKindQuiz:
		return &QuizBlock{}, nil
	case BlockKindVocabulary:
		return &VocabularyBlock{}, nil
	case BlockKindText:
		return &TextBlock{}, nil
	case BlockKindImage:
		return &ImageBlock{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownBlockKind, "%q", kind)
	}
}
