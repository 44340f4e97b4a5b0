// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/familiasoares/imobicrm/ent/lead"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
	"github.com/familiasoares/imobicrm/ent/user"
)

// LeadHistoryCreate is the builder for creating a LeadHistory entity.
type LeadHistoryCreate struct {
	config
	mutation *LeadHistoryMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *LeadHistoryCreate) SetLeadID(v int) *LeadHistoryCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LeadHistoryCreate) SetUserID(v int) *LeadHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *LeadHistoryCreate) SetNillableUserID(v *int) *LeadHistoryCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetStatusBefore sets the "status_before" field.
func (_c *LeadHistoryCreate) SetStatusBefore(v leadhistory.StatusBefore) *LeadHistoryCreate {
	_c.mutation.SetStatusBefore(v)
	return _c
}

// SetStatusAfter sets the "status_after" field.
func (_c *LeadHistoryCreate) SetStatusAfter(v leadhistory.StatusAfter) *LeadHistoryCreate {
	_c.mutation.SetStatusAfter(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *LeadHistoryCreate) SetNote(v string) *LeadHistoryCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *LeadHistoryCreate) SetNillableNote(v *string) *LeadHistoryCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadHistoryCreate) SetCreatedAt(v time.Time) *LeadHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadHistoryCreate) SetNillableCreatedAt(v *time.Time) *LeadHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *LeadHistoryCreate) SetLead(v *Lead) *LeadHistoryCreate {
	return _c.SetLeadID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *LeadHistoryCreate) SetUser(v *User) *LeadHistoryCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the LeadHistoryMutation object of the builder.
func (_c *LeadHistoryCreate) Mutation() *LeadHistoryMutation {
	return _c.mutation
}

// Save creates the LeadHistory in the database.
func (_c *LeadHistoryCreate) Save(ctx context.Context) (*LeadHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadHistoryCreate) SaveX(ctx context.Context) *LeadHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leadhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadHistoryCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "LeadHistory.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := leadhistory.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusBefore(); !ok {
		return &ValidationError{Name: "status_before", err: errors.New(`ent: missing required field "LeadHistory.status_before"`)}
	}
	if v, ok := _c.mutation.StatusBefore(); ok {
		if err := leadhistory.StatusBeforeValidator(v); err != nil {
			return &ValidationError{Name: "status_before", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.status_before": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusAfter(); !ok {
		return &ValidationError{Name: "status_after", err: errors.New(`ent: missing required field "LeadHistory.status_after"`)}
	}
	if v, ok := _c.mutation.StatusAfter(); ok {
		if err := leadhistory.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.status_after": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Note(); ok {
		if err := leadhistory.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.note": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadHistory.created_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "LeadHistory.lead"`)}
	}
	return nil
}

func (_c *LeadHistoryCreate) sqlSave(ctx context.Context) (*LeadHistory, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadHistoryCreate) createSpec() (*LeadHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadhistory.Table, sqlgraph.NewFieldSpec(leadhistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StatusBefore(); ok {
		_spec.SetField(leadhistory.FieldStatusBefore, field.TypeEnum, value)
		_node.StatusBefore = value
	}
	if value, ok := _c.mutation.StatusAfter(); ok {
		_spec.SetField(leadhistory.FieldStatusAfter, field.TypeEnum, value)
		_node.StatusAfter = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(leadhistory.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leadhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadhistory.LeadTable,
			Columns: []string{leadhistory.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadhistory.UserTable,
			Columns: []string{leadhistory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadHistoryCreateBulk is the builder for creating many LeadHistory entities in bulk.
type LeadHistoryCreateBulk struct {
	config
	err      error
	builders []*LeadHistoryCreate
}

// Save creates the LeadHistory entities in the database.
func (_c *LeadHistoryCreateBulk) Save(ctx context.Context) ([]*LeadHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadHistoryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *LeadHistoryCreateBulk) SaveX(ctx context.Context) []*LeadHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
