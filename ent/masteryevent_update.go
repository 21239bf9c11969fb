// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edonnat/chronos/ent/masteryevent"
	"github.com/edonnat/chronos/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *MasteryEventUpdate) SetEventID(v string) *MasteryEventUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableEventID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetAxis sets the "axis" field.
func (_u *MasteryEventUpdate) SetAxis(v string) *MasteryEventUpdate {
	_u.mutation.SetAxis(v)
	return _u
}

// SetNillableAxis sets the "axis" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableAxis(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetAxis(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *MasteryEventUpdate) SetGrade(v string) *MasteryEventUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableGrade(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetOverall sets the "overall" field.
func (_u *MasteryEventUpdate) SetOverall(v int) *MasteryEventUpdate {
	_u.mutation.ResetOverall()
	_u.mutation.SetOverall(v)
	return _u
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableOverall(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetOverall(*v)
	}
	return _u
}

// AddOverall adds value to the "overall" field.
func (_u *MasteryEventUpdate) AddOverall(v int) *MasteryEventUpdate {
	_u.mutation.AddOverall(v)
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := masteryevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Axis(); ok {
		if err := masteryevent.AxisValidator(v); err != nil {
			return &ValidationError{Name: "axis", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.axis": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := masteryevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(masteryevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Axis(); ok {
		_spec.SetField(masteryevent.FieldAxis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(masteryevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Overall(); ok {
		_spec.SetField(masteryevent.FieldOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverall(); ok {
		_spec.AddField(masteryevent.FieldOverall, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetEventID sets the "event_id" field.
func (_u *MasteryEventUpdateOne) SetEventID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableEventID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetAxis sets the "axis" field.
func (_u *MasteryEventUpdateOne) SetAxis(v string) *MasteryEventUpdateOne {
	_u.mutation.SetAxis(v)
	return _u
}

// SetNillableAxis sets the "axis" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableAxis(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetAxis(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *MasteryEventUpdateOne) SetGrade(v string) *MasteryEventUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableGrade(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetOverall sets the "overall" field.
func (_u *MasteryEventUpdateOne) SetOverall(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetOverall()
	_u.mutation.SetOverall(v)
	return _u
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableOverall(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetOverall(*v)
	}
	return _u
}

// AddOverall adds value to the "overall" field.
func (_u *MasteryEventUpdateOne) AddOverall(v int) *MasteryEventUpdateOne {
	_u.mutation.AddOverall(v)
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := masteryevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Axis(); ok {
		if err := masteryevent.AxisValidator(v); err != nil {
			return &ValidationError{Name: "axis", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.axis": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := masteryevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(masteryevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Axis(); ok {
		_spec.SetField(masteryevent.FieldAxis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(masteryevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Overall(); ok {
		_spec.SetField(masteryevent.FieldOverall, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverall(); ok {
		_spec.AddField(masteryevent.FieldOverall, field.TypeInt, value)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
