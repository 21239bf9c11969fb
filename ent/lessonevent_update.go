// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edonnat/chronos/ent/lessonevent"
	"github.com/edonnat/chronos/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdate) SetSessionID(v string) *LessonEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSessionID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonEventUpdate) SetLessonID(v string) *LessonEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLessonID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *LessonEventUpdate) SetXpEarned(v int) *LessonEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableXpEarned(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *LessonEventUpdate) AddXpEarned(v int) *LessonEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetGreens sets the "greens" field.
func (_u *LessonEventUpdate) SetGreens(v int) *LessonEventUpdate {
	_u.mutation.ResetGreens()
	_u.mutation.SetGreens(v)
	return _u
}

// SetNillableGreens sets the "greens" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableGreens(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetGreens(*v)
	}
	return _u
}

// AddGreens adds value to the "greens" field.
func (_u *LessonEventUpdate) AddGreens(v int) *LessonEventUpdate {
	_u.mutation.AddGreens(v)
	return _u
}

// SetYellows sets the "yellows" field.
func (_u *LessonEventUpdate) SetYellows(v int) *LessonEventUpdate {
	_u.mutation.ResetYellows()
	_u.mutation.SetYellows(v)
	return _u
}

// SetNillableYellows sets the "yellows" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableYellows(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetYellows(*v)
	}
	return _u
}

// AddYellows adds value to the "yellows" field.
func (_u *LessonEventUpdate) AddYellows(v int) *LessonEventUpdate {
	_u.mutation.AddYellows(v)
	return _u
}

// SetReds sets the "reds" field.
func (_u *LessonEventUpdate) SetReds(v int) *LessonEventUpdate {
	_u.mutation.ResetReds()
	_u.mutation.SetReds(v)
	return _u
}

// SetNillableReds sets the "reds" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableReds(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetReds(*v)
	}
	return _u
}

// AddReds adds value to the "reds" field.
func (_u *LessonEventUpdate) AddReds(v int) *LessonEventUpdate {
	_u.mutation.AddReds(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(lessonevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(lessonevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Greens(); ok {
		_spec.SetField(lessonevent.FieldGreens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGreens(); ok {
		_spec.AddField(lessonevent.FieldGreens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Yellows(); ok {
		_spec.SetField(lessonevent.FieldYellows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYellows(); ok {
		_spec.AddField(lessonevent.FieldYellows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reds(); ok {
		_spec.SetField(lessonevent.FieldReds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReds(); ok {
		_spec.AddField(lessonevent.FieldReds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdateOne) SetSessionID(v string) *LessonEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSessionID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonEventUpdateOne) SetLessonID(v string) *LessonEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLessonID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *LessonEventUpdateOne) SetXpEarned(v int) *LessonEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableXpEarned(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *LessonEventUpdateOne) AddXpEarned(v int) *LessonEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetGreens sets the "greens" field.
func (_u *LessonEventUpdateOne) SetGreens(v int) *LessonEventUpdateOne {
	_u.mutation.ResetGreens()
	_u.mutation.SetGreens(v)
	return _u
}

// SetNillableGreens sets the "greens" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableGreens(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetGreens(*v)
	}
	return _u
}

// AddGreens adds value to the "greens" field.
func (_u *LessonEventUpdateOne) AddGreens(v int) *LessonEventUpdateOne {
	_u.mutation.AddGreens(v)
	return _u
}

// SetYellows sets the "yellows" field.
func (_u *LessonEventUpdateOne) SetYellows(v int) *LessonEventUpdateOne {
	_u.mutation.ResetYellows()
	_u.mutation.SetYellows(v)
	return _u
}

// SetNillableYellows sets the "yellows" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableYellows(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetYellows(*v)
	}
	return _u
}

// AddYellows adds value to the "yellows" field.
func (_u *LessonEventUpdateOne) AddYellows(v int) *LessonEventUpdateOne {
	_u.mutation.AddYellows(v)
	return _u
}

// SetReds sets the "reds" field.
func (_u *LessonEventUpdateOne) SetReds(v int) *LessonEventUpdateOne {
	_u.mutation.ResetReds()
	_u.mutation.SetReds(v)
	return _u
}

// SetNillableReds sets the "reds" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableReds(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetReds(*v)
	}
	return _u
}

// AddReds adds value to the "reds" field.
func (_u *LessonEventUpdateOne) AddReds(v int) *LessonEventUpdateOne {
	_u.mutation.AddReds(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(lessonevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(lessonevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Greens(); ok {
		_spec.SetField(lessonevent.FieldGreens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGreens(); ok {
		_spec.AddField(lessonevent.FieldGreens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Yellows(); ok {
		_spec.SetField(lessonevent.FieldYellows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYellows(); ok {
		_spec.AddField(lessonevent.FieldYellows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reds(); ok {
		_spec.SetField(lessonevent.FieldReds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReds(); ok {
		_spec.AddField(lessonevent.FieldReds, field.TypeInt, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
