package domain

// MistakeKind classifies what went wrong in an incorrect answer.
type MistakeKind string

// Known mistake categories, in the order the classifier checks them.
const (
	// MistakePhonetic: the answer sounds close to the correct one
	// (high but imperfect string similarity).
	MistakePhonetic MistakeKind = "phonetic"

	// MistakeSemantic: the answer appears in one of the word's example
	// sentences, suggesting a meaning-level confusion.
	MistakeSemantic MistakeKind = "semantic"

	// MistakeOrthographic: a spelling slip one or two edits away from
	// the correct answer.
	MistakeOrthographic MistakeKind = "orthographic"

	// MistakeGrammatical: the answer is much longer than the expected
	// meaning, typically a full-sentence response where a word was asked.
	MistakeGrammatical MistakeKind = "grammatical"

	// MistakeUnknown: none of the above patterns matched.
	MistakeUnknown MistakeKind = "unknown"
)

// IsValid reports whether k is one of the known mistake kinds.
func (k MistakeKind) IsValid() bool {
	switch k {
	case MistakePhonetic, MistakeSemantic, MistakeOrthographic, MistakeGrammatical, MistakeUnknown:
		return true
	}
	return false
}
