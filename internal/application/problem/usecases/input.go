package usecases

import (
	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

// AttributesInput carries the author-editable problem fields shared by the
// create and update commands.
type AttributesInput struct {
	Level             int    `validate:"gte=1,lte=5"`
	Type              string `validate:"required"`
	SubType           string `validate:"required"`
	Content           string
	Question          string
	Options           []string `validate:"len=4"`
	AnswerIndex       int      `validate:"gte=0,lte=3"`
	ExplanationKo     string
	ExplanationEn     string
	Vocab             []VocabInput
	ReasoningForLevel *string
}

type VocabInput struct {
	Word      string
	Reading   string
	MeaningKo string
	MeaningEn string
}

func (in AttributesInput) toAttributes() problem.Attributes {
	attrs := problem.Attributes{
		Level:       in.Level,
		Type:        vo.ProblemType(in.Type),
		SubType:     vo.ProblemSubType(in.SubType),
		Content:     in.Content,
		Question:    in.Question,
		Options:     in.Options,
		AnswerIndex: in.AnswerIndex,
		Explanation: problem.Explanation{
			Ko: in.ExplanationKo,
			En: in.ExplanationEn,
		},
		ReasoningForLevel: in.ReasoningForLevel,
	}

	for _, v := range in.Vocab {
		attrs.Vocab = append(attrs.Vocab, problem.VocabEntry{
			Word:    v.Word,
			Reading: v.Reading,
			Meaning: problem.VocabMeaning{Ko: v.MeaningKo, En: v.MeaningEn},
		})
	}

	return attrs
}
