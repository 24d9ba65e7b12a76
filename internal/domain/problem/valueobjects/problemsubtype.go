package valueobjects

// ProblemSubType is the second-tier question category. Each subtype is legal
// only under one specific ProblemType.
type ProblemSubType string

const (
	// VOCAB
	SubTypeKanjiReading  ProblemSubType = "KANJI_READING"
	SubTypeOrthography   ProblemSubType = "ORTHOGRAPHY"
	SubTypeWordFormation ProblemSubType = "WORD_FORMATION"
	SubTypeContext       ProblemSubType = "CONTEXT"
	SubTypeParaphrase    ProblemSubType = "PARAPHRASE"
	SubTypeUsage         ProblemSubType = "USAGE"

	// GRAMMAR
	SubTypeGrammarForm  ProblemSubType = "GRAMMAR_FORM"
	SubTypeGrammarOrder ProblemSubType = "GRAMMAR_ORDER"
	SubTypeTextGrammar  ProblemSubType = "TEXT_GRAMMAR"

	// READING
	SubTypeShortPassage      ProblemSubType = "SHORT_PASSAGE"
	SubTypeMidPassage        ProblemSubType = "MID_PASSAGE"
	SubTypeLongPassage       ProblemSubType = "LONG_PASSAGE"
	SubTypeIntegratedPassage ProblemSubType = "INTEGRATED_PASSAGE"
	SubTypeThematicPassage   ProblemSubType = "THEMATIC_PASSAGE"
	SubTypeInfoRetrieval     ProblemSubType = "INFO_RETRIEVAL"

	// LISTENING
	SubTypeTaskBased               ProblemSubType = "TASK_BASED"
	SubTypePointComprehension      ProblemSubType = "POINT_COMPREHENSION"
	SubTypeSummary                 ProblemSubType = "SUMMARY"
	SubTypeQuickResponse           ProblemSubType = "QUICK_RESPONSE"
	SubTypeIntegratedComprehension ProblemSubType = "INTEGRATED_COMPREHENSION"
)

// CanonicalSubTypeOrder lists each type's subtypes in the order the real exam
// presents them. Exam numbering walks CanonicalTypeOrder and then this table.
var CanonicalSubTypeOrder = map[ProblemType][]ProblemSubType{
	TypeVocab: {
		SubTypeKanjiReading,
		SubTypeOrthography,
		SubTypeWordFormation,
		SubTypeContext,
		SubTypeParaphrase,
		SubTypeUsage,
	},
	TypeGrammar: {
		SubTypeGrammarForm,
		SubTypeGrammarOrder,
		SubTypeTextGrammar,
	},
	TypeReading: {
		SubTypeShortPassage,
		SubTypeMidPassage,
		SubTypeLongPassage,
		SubTypeIntegratedPassage,
		SubTypeThematicPassage,
		SubTypeInfoRetrieval,
	},
	TypeListening: {
		SubTypeTaskBased,
		SubTypePointComprehension,
		SubTypeSummary,
		SubTypeQuickResponse,
		SubTypeIntegratedComprehension,
	},
}

func (s ProblemSubType) String() string {
	return string(s)
}

// IsValid reports whether the subtype belongs to any type.
func (s ProblemSubType) IsValid() bool {
	for _, subs := range CanonicalSubTypeOrder {
		for _, sub := range subs {
			if sub == s {
				return true
			}
		}
	}
	return false
}

// IsValidFor reports whether the subtype is legal under the given type.
func (s ProblemSubType) IsValidFor(t ProblemType) bool {
	for _, sub := range CanonicalSubTypeOrder[t] {
		if sub == s {
			return true
		}
	}
	return false
}

// RankWithin returns the position of the subtype within its type's canonical
// order. Unknown subtypes sort last.
func (s ProblemSubType) RankWithin(t ProblemType) int {
	subs := CanonicalSubTypeOrder[t]
	for i, sub := range subs {
		if sub == s {
			return i
		}
	}
	return len(subs)
}
