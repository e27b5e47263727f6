// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reelworks/reelpipe/ent/costentry"
	"github.com/reelworks/reelpipe/ent/task"
)

// CostEntryCreate is the builder for creating a CostEntry entity.
type CostEntryCreate struct {
	config
	mutation *CostEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *CostEntryCreate) SetTaskID(v string) *CostEntryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *CostEntryCreate) SetStage(v costentry.Stage) *CostEntryCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetAmountUsd sets the "amount_usd" field.
func (_c *CostEntryCreate) SetAmountUsd(v float64) *CostEntryCreate {
	_c.mutation.SetAmountUsd(v)
	return _c
}

// SetUnits sets the "units" field.
func (_c *CostEntryCreate) SetUnits(v int) *CostEntryCreate {
	_c.mutation.SetUnits(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CostEntryCreate) SetCreatedAt(v time.Time) *CostEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CostEntryCreate) SetNillableCreatedAt(v *time.Time) *CostEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CostEntryCreate) SetID(v string) *CostEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *CostEntryCreate) SetTask(v *Task) *CostEntryCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the CostEntryMutation object of the builder.
func (_c *CostEntryCreate) Mutation() *CostEntryMutation {
	return _c.mutation
}

// Save creates the CostEntry in the database.
func (_c *CostEntryCreate) Save(ctx context.Context) (*CostEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CostEntryCreate) SaveX(ctx context.Context) *CostEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CostEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := costentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CostEntryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "CostEntry.task_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "CostEntry.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := costentry.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "CostEntry.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountUsd(); !ok {
		return &ValidationError{Name: "amount_usd", err: errors.New(`ent: missing required field "CostEntry.amount_usd"`)}
	}
	if _, ok := _c.mutation.Units(); !ok {
		return &ValidationError{Name: "units", err: errors.New(`ent: missing required field "CostEntry.units"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CostEntry.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "CostEntry.task"`)}
	}
	return nil
}

func (_c *CostEntryCreate) sqlSave(ctx context.Context) (*CostEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CostEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CostEntryCreate) createSpec() (*CostEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CostEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(costentry.Table, sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(costentry.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.AmountUsd(); ok {
		_spec.SetField(costentry.FieldAmountUsd, field.TypeFloat64, value)
		_node.AmountUsd = value
	}
	if value, ok := _c.mutation.Units(); ok {
		_spec.SetField(costentry.FieldUnits, field.TypeInt, value)
		_node.Units = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(costentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CostEntry.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostEntryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *CostEntryCreate) OnConflict(opts ...sql.ConflictOption) *CostEntryUpsertOne {
	_c.conflict = opts
	return &CostEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostEntryCreate) OnConflictColumns(columns ...string) *CostEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostEntryUpsertOne{
		create: _c,
	}
}

type (
	// CostEntryUpsertOne is the builder for "upsert"-ing
	//  one CostEntry node.
	CostEntryUpsertOne struct {
		create *CostEntryCreate
	}

	// CostEntryUpsert is the "OnConflict" setter.
	CostEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *CostEntryUpsert) SetTaskID(v string) *CostEntryUpsert {
	u.Set(costentry.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateTaskID() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldTaskID)
	return u
}

// SetStage sets the "stage" field.
func (u *CostEntryUpsert) SetStage(v costentry.Stage) *CostEntryUpsert {
	u.Set(costentry.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateStage() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldStage)
	return u
}

// SetAmountUsd sets the "amount_usd" field.
func (u *CostEntryUpsert) SetAmountUsd(v float64) *CostEntryUpsert {
	u.Set(costentry.FieldAmountUsd, v)
	return u
}

// UpdateAmountUsd sets the "amount_usd" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateAmountUsd() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldAmountUsd)
	return u
}

// AddAmountUsd adds v to the "amount_usd" field.
func (u *CostEntryUpsert) AddAmountUsd(v float64) *CostEntryUpsert {
	u.Add(costentry.FieldAmountUsd, v)
	return u
}

// SetUnits sets the "units" field.
func (u *CostEntryUpsert) SetUnits(v int) *CostEntryUpsert {
	u.Set(costentry.FieldUnits, v)
	return u
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateUnits() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldUnits)
	return u
}

// AddUnits adds v to the "units" field.
func (u *CostEntryUpsert) AddUnits(v int) *CostEntryUpsert {
	u.Add(costentry.FieldUnits, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(costentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CostEntryUpsertOne) UpdateNewValues() *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(costentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(costentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CostEntryUpsertOne) Ignore() *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostEntryUpsertOne) DoNothing() *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostEntryCreate.OnConflict
// documentation for more info.
func (u *CostEntryUpsertOne) Update(set func(*CostEntryUpsert)) *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *CostEntryUpsertOne) SetTaskID(v string) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateTaskID() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateTaskID()
	})
}

// SetStage sets the "stage" field.
func (u *CostEntryUpsertOne) SetStage(v costentry.Stage) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateStage() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateStage()
	})
}

// SetAmountUsd sets the "amount_usd" field.
func (u *CostEntryUpsertOne) SetAmountUsd(v float64) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetAmountUsd(v)
	})
}

// AddAmountUsd adds v to the "amount_usd" field.
func (u *CostEntryUpsertOne) AddAmountUsd(v float64) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.AddAmountUsd(v)
	})
}

// UpdateAmountUsd sets the "amount_usd" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateAmountUsd() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateAmountUsd()
	})
}

// SetUnits sets the "units" field.
func (u *CostEntryUpsertOne) SetUnits(v int) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetUnits(v)
	})
}

// AddUnits adds v to the "units" field.
func (u *CostEntryUpsertOne) AddUnits(v int) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.AddUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateUnits() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateUnits()
	})
}

// Exec executes the query.
func (u *CostEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CostEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CostEntryUpsertOne.ID is not supported by MySQL driver. Use CostEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CostEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CostEntryCreateBulk is the builder for creating many CostEntry entities in bulk.
type CostEntryCreateBulk struct {
	config
	err      error
	builders []*CostEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the CostEntry entities in the database.
func (_c *CostEntryCreateBulk) Save(ctx context.Context) ([]*CostEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CostEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CostEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CostEntryCreateBulk) SaveX(ctx context.Context) []*CostEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CostEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostEntryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *CostEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CostEntryUpsertBulk {
	_c.conflict = opts
	return &CostEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostEntryCreateBulk) OnConflictColumns(columns ...string) *CostEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostEntryUpsertBulk{
		create: _c,
	}
}

// CostEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of CostEntry nodes.
type CostEntryUpsertBulk struct {
	create *CostEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(costentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CostEntryUpsertBulk) UpdateNewValues() *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(costentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(costentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CostEntryUpsertBulk) Ignore() *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostEntryUpsertBulk) DoNothing() *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostEntryCreateBulk.OnConflict
// documentation for more info.
func (u *CostEntryUpsertBulk) Update(set func(*CostEntryUpsert)) *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *CostEntryUpsertBulk) SetTaskID(v string) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateTaskID() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateTaskID()
	})
}

// SetStage sets the "stage" field.
func (u *CostEntryUpsertBulk) SetStage(v costentry.Stage) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateStage() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateStage()
	})
}

// SetAmountUsd sets the "amount_usd" field.
func (u *CostEntryUpsertBulk) SetAmountUsd(v float64) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetAmountUsd(v)
	})
}

// AddAmountUsd adds v to the "amount_usd" field.
func (u *CostEntryUpsertBulk) AddAmountUsd(v float64) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.AddAmountUsd(v)
	})
}

// UpdateAmountUsd sets the "amount_usd" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateAmountUsd() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateAmountUsd()
	})
}

// SetUnits sets the "units" field.
func (u *CostEntryUpsertBulk) SetUnits(v int) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetUnits(v)
	})
}

// AddUnits adds v to the "units" field.
func (u *CostEntryUpsertBulk) AddUnits(v int) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.AddUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateUnits() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateUnits()
	})
}

// Exec executes the query.
func (u *CostEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CostEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
