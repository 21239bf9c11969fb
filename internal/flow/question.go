// Package flow implements the lesson flows as explicit state machines:
// an enumerated phase tag plus pure transition functions, decoupled
// from rendering. Screens drive the machines and dispatch the results
// to the progress store.
package flow

import (
	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/quizgen"
)

// Question is one prepared quiz item. FreeText questions take a typed
// year instead of an option pick; Options is empty for those.
type Question struct {
	EventID  string
	Type     quizgen.QuestionType
	FreeText bool
	Options  []quizgen.Option
}

// buildQuestion prepares an MCQ of the given type for an event.
func buildQuestion(ev catalog.Event, qt quizgen.QuestionType, siblings []string, rng quizgen.Rand) Question {
	q := Question{EventID: ev.ID, Type: qt}
	switch qt {
	case quizgen.QuestionLocation:
		q.Options = quizgen.LocationOptions(ev, rng)
	case quizgen.QuestionDate:
		q.Options = quizgen.DateOptions(ev, rng)
	case quizgen.QuestionWhat:
		q.Options = quizgen.WhatOptions(ev, siblings, rng)
	case quizgen.QuestionDescription:
		q.Options = quizgen.DescriptionOptions(ev, rng)
	}
	return q
}

// freeDateQuestion prepares a free-text date entry for an event.
func freeDateQuestion(ev catalog.Event) Question {
	return Question{EventID: ev.ID, Type: quizgen.QuestionDate, FreeText: true}
}

// Answer is the learner's outcome on one question. Retry is set only
// when a red first answer got a second chance.
type Answer struct {
	First quizgen.Grade
	Retry quizgen.Grade
}
