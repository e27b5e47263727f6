// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reelworks/reelpipe/ent/costentry"
	"github.com/reelworks/reelpipe/ent/predicate"
	"github.com/reelworks/reelpipe/ent/task"
)

// CostEntryUpdate is the builder for updating CostEntry entities.
type CostEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CostEntryMutation
}

// Where appends a list predicates to the CostEntryUpdate builder.
func (_u *CostEntryUpdate) Where(ps ...predicate.CostEntry) *CostEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *CostEntryUpdate) SetTaskID(v string) *CostEntryUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableTaskID(v *string) *CostEntryUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *CostEntryUpdate) SetStage(v costentry.Stage) *CostEntryUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableStage(v *costentry.Stage) *CostEntryUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAmountUsd sets the "amount_usd" field.
func (_u *CostEntryUpdate) SetAmountUsd(v float64) *CostEntryUpdate {
	_u.mutation.ResetAmountUsd()
	_u.mutation.SetAmountUsd(v)
	return _u
}

// SetNillableAmountUsd sets the "amount_usd" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableAmountUsd(v *float64) *CostEntryUpdate {
	if v != nil {
		_u.SetAmountUsd(*v)
	}
	return _u
}

// AddAmountUsd adds value to the "amount_usd" field.
func (_u *CostEntryUpdate) AddAmountUsd(v float64) *CostEntryUpdate {
	_u.mutation.AddAmountUsd(v)
	return _u
}

// SetUnits sets the "units" field.
func (_u *CostEntryUpdate) SetUnits(v int) *CostEntryUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableUnits(v *int) *CostEntryUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *CostEntryUpdate) AddUnits(v int) *CostEntryUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *CostEntryUpdate) SetTask(v *Task) *CostEntryUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the CostEntryMutation object of the builder.
func (_u *CostEntryUpdate) Mutation() *CostEntryMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *CostEntryUpdate) ClearTask() *CostEntryUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CostEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CostEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostEntryUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := costentry.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "CostEntry.stage": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostEntry.task"`)
	}
	return nil
}

func (_u *CostEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costentry.Table, costentry.Columns, sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(costentry.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AmountUsd(); ok {
		_spec.SetField(costentry.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountUsd(); ok {
		_spec.AddField(costentry.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(costentry.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(costentry.FieldUnits, field.TypeInt, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   costentry.TaskTable,
			Columns: []string{costentry.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   costentry.TaskTable,
			Columns: []string{costentry.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CostEntryUpdateOne is the builder for updating a single CostEntry entity.
type CostEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CostEntryMutation
}

// SetTaskID sets the "task_id" field.
func (_u *CostEntryUpdateOne) SetTaskID(v string) *CostEntryUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableTaskID(v *string) *CostEntryUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *CostEntryUpdateOne) SetStage(v costentry.Stage) *CostEntryUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableStage(v *costentry.Stage) *CostEntryUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAmountUsd sets the "amount_usd" field.
func (_u *CostEntryUpdateOne) SetAmountUsd(v float64) *CostEntryUpdateOne {
	_u.mutation.ResetAmountUsd()
	_u.mutation.SetAmountUsd(v)
	return _u
}

// SetNillableAmountUsd sets the "amount_usd" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableAmountUsd(v *float64) *CostEntryUpdateOne {
	if v != nil {
		_u.SetAmountUsd(*v)
	}
	return _u
}

// AddAmountUsd adds value to the "amount_usd" field.
func (_u *CostEntryUpdateOne) AddAmountUsd(v float64) *CostEntryUpdateOne {
	_u.mutation.AddAmountUsd(v)
	return _u
}

// SetUnits sets the "units" field.
func (_u *CostEntryUpdateOne) SetUnits(v int) *CostEntryUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableUnits(v *int) *CostEntryUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *CostEntryUpdateOne) AddUnits(v int) *CostEntryUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *CostEntryUpdateOne) SetTask(v *Task) *CostEntryUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the CostEntryMutation object of the builder.
func (_u *CostEntryUpdateOne) Mutation() *CostEntryMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *CostEntryUpdateOne) ClearTask() *CostEntryUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the CostEntryUpdate builder.
func (_u *CostEntryUpdateOne) Where(ps ...predicate.CostEntry) *CostEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CostEntryUpdateOne) Select(field string, fields ...string) *CostEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CostEntry entity.
func (_u *CostEntryUpdateOne) Save(ctx context.Context) (*CostEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostEntryUpdateOne) SaveX(ctx context.Context) *CostEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CostEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := costentry.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "CostEntry.stage": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostEntry.task"`)
	}
	return nil
}

func (_u *CostEntryUpdateOne) sqlSave(ctx context.Context) (_node *CostEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costentry.Table, costentry.Columns, sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CostEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, costentry.FieldID)
		for _, f := range fields {
			if !costentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != costentry.FieldID {
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
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(costentry.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AmountUsd(); ok {
		_spec.SetField(costentry.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountUsd(); ok {
		_spec.AddField(costentry.FieldAmountUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(costentry.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(costentry.FieldUnits, field.TypeInt, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   costentry.TaskTable,
			Columns: []string{costentry.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   costentry.TaskTable,
			Columns: []string{costentry.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CostEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
