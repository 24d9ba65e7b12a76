package valueobjects

// ProblemType is the top-level JLPT section a problem belongs to.
type ProblemType string

const (
	TypeVocab     ProblemType = "VOCAB"
	TypeGrammar   ProblemType = "GRAMMAR"
	TypeReading   ProblemType = "READING"
	TypeListening ProblemType = "LISTENING"
)

// CanonicalTypeOrder is the fixed section order used for exam numbering.
// Display numbers depend on this order; it must not be reordered casually.
var CanonicalTypeOrder = []ProblemType{
	TypeVocab,
	TypeGrammar,
	TypeReading,
	TypeListening,
}

var ValidTypes = map[ProblemType]bool{
	TypeVocab:     true,
	TypeGrammar:   true,
	TypeReading:   true,
	TypeListening: true,
}

func (t ProblemType) String() string {
	return string(t)
}

func (t ProblemType) IsValid() bool {
	return ValidTypes[t]
}

// Rank returns the position of the type in the canonical section order.
// Unknown types sort last.
func (t ProblemType) Rank() int {
	for i, ct := range CanonicalTypeOrder {
		if ct == t {
			return i
		}
	}
	return len(CanonicalTypeOrder)
}
