// Package quizgen generates multiple-choice option sets and scores
// free-text date answers against the event catalog. Every generator is
// a pure function of the catalog plus an injectable randomness source.
package quizgen

// QuestionType is one of the four independent skill axes tracked per
// event.
type QuestionType string

const (
	QuestionLocation    QuestionType = "location"
	QuestionDate        QuestionType = "date"
	QuestionWhat        QuestionType = "what"
	QuestionDescription QuestionType = "description"
)

// AllQuestionTypes returns the four axes in canonical order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionLocation,
		QuestionDate,
		QuestionWhat,
		QuestionDescription,
	}
}

// Grade is the ordinal outcome of a single question.
type Grade string

const (
	GradeGreen  Grade = "green"  // correct or exact
	GradeYellow Grade = "yellow" // close
	GradeRed    Grade = "red"    // wrong
)

// Option is one entry of a multiple-choice set. Exactly one option in a
// generated set has Correct true, and no two options share a label.
type Option struct {
	Label   string
	EventID string // empty for synthesized options
	Correct bool
}
