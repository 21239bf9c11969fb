// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edonnat/chronos/ent/answerevent"
	"github.com/edonnat/chronos/ent/lessonevent"
	"github.com/edonnat/chronos/ent/masteryevent"
	"github.com/edonnat/chronos/ent/schema"
	"github.com/edonnat/chronos/ent/sessionevent"
	"github.com/edonnat/chronos/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescEventID is the schema descriptor for event_id field.
	answereventDescEventID := answereventFields[1].Descriptor()
	// answerevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	answerevent.EventIDValidator = answereventDescEventID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescFirstGrade is the schema descriptor for first_grade field.
	answereventDescFirstGrade := answereventFields[3].Descriptor()
	// answerevent.FirstGradeValidator is a validator for the "first_grade" field. It is called by the builders before save.
	answerevent.FirstGradeValidator = answereventDescFirstGrade.Validators[0].(func(string) error)
	// answereventDescFreeText is the schema descriptor for free_text field.
	answereventDescFreeText := answereventFields[5].Descriptor()
	// answerevent.DefaultFreeText holds the default value on creation for the free_text field.
	answerevent.DefaultFreeText = answereventDescFreeText.Default.(bool)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescGreens is the schema descriptor for greens field.
	lessoneventDescGreens := lessoneventFields[3].Descriptor()
	// lessonevent.DefaultGreens holds the default value on creation for the greens field.
	lessonevent.DefaultGreens = lessoneventDescGreens.Default.(int)
	// lessoneventDescYellows is the schema descriptor for yellows field.
	lessoneventDescYellows := lessoneventFields[4].Descriptor()
	// lessonevent.DefaultYellows holds the default value on creation for the yellows field.
	lessonevent.DefaultYellows = lessoneventDescYellows.Default.(int)
	// lessoneventDescReds is the schema descriptor for reds field.
	lessoneventDescReds := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultReds holds the default value on creation for the reds field.
	lessonevent.DefaultReds = lessoneventDescReds.Default.(int)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescEventID is the schema descriptor for event_id field.
	masteryeventDescEventID := masteryeventFields[0].Descriptor()
	// masteryevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	masteryevent.EventIDValidator = masteryeventDescEventID.Validators[0].(func(string) error)
	// masteryeventDescAxis is the schema descriptor for axis field.
	masteryeventDescAxis := masteryeventFields[1].Descriptor()
	// masteryevent.AxisValidator is a validator for the "axis" field. It is called by the builders before save.
	masteryevent.AxisValidator = masteryeventDescAxis.Validators[0].(func(string) error)
	// masteryeventDescGrade is the schema descriptor for grade field.
	masteryeventDescGrade := masteryeventFields[2].Descriptor()
	// masteryevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	masteryevent.GradeValidator = masteryeventDescGrade.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[1].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescXpEarned is the schema descriptor for xp_earned field.
	sessioneventDescXpEarned := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	sessionevent.DefaultXpEarned = sessioneventDescXpEarned.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
