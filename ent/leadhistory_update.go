// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
	"github.com/familiasoares/imobicrm/ent/predicate"
	"github.com/familiasoares/imobicrm/ent/user"
)

// LeadHistoryUpdate is the builder for updating LeadHistory entities.
type LeadHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *LeadHistoryMutation
}

// Where appends a list predicates to the LeadHistoryUpdate builder.
func (_u *LeadHistoryUpdate) Where(ps ...predicate.LeadHistory) *LeadHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LeadHistoryUpdate) SetUserID(v int) *LeadHistoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadHistoryUpdate) SetNillableUserID(v *int) *LeadHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *LeadHistoryUpdate) ClearUserID() *LeadHistoryUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatusBefore sets the "status_before" field.
func (_u *LeadHistoryUpdate) SetStatusBefore(v leadhistory.StatusBefore) *LeadHistoryUpdate {
	_u.mutation.SetStatusBefore(v)
	return _u
}

// SetNillableStatusBefore sets the "status_before" field if the given value is not nil.
func (_u *LeadHistoryUpdate) SetNillableStatusBefore(v *leadhistory.StatusBefore) *LeadHistoryUpdate {
	if v != nil {
		_u.SetStatusBefore(*v)
	}
	return _u
}

// SetStatusAfter sets the "status_after" field.
func (_u *LeadHistoryUpdate) SetStatusAfter(v leadhistory.StatusAfter) *LeadHistoryUpdate {
	_u.mutation.SetStatusAfter(v)
	return _u
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (_u *LeadHistoryUpdate) SetNillableStatusAfter(v *leadhistory.StatusAfter) *LeadHistoryUpdate {
	if v != nil {
		_u.SetStatusAfter(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *LeadHistoryUpdate) SetNote(v string) *LeadHistoryUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *LeadHistoryUpdate) SetNillableNote(v *string) *LeadHistoryUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *LeadHistoryUpdate) ClearNote() *LeadHistoryUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadHistoryUpdate) SetUser(v *User) *LeadHistoryUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadHistoryMutation object of the builder.
func (_u *LeadHistoryUpdate) Mutation() *LeadHistoryMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadHistoryUpdate) ClearUser() *LeadHistoryUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadHistoryUpdate) check() error {
	if v, ok := _u.mutation.StatusBefore(); ok {
		if err := leadhistory.StatusBeforeValidator(v); err != nil {
			return &ValidationError{Name: "status_before", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.status_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusAfter(); ok {
		if err := leadhistory.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.status_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := leadhistory.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.note": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadHistory.lead"`)
	}
	return nil
}

func (_u *LeadHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadhistory.Table, leadhistory.Columns, sqlgraph.NewFieldSpec(leadhistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StatusBefore(); ok {
		_spec.SetField(leadhistory.FieldStatusBefore, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusAfter(); ok {
		_spec.SetField(leadhistory.FieldStatusAfter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(leadhistory.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(leadhistory.FieldNote, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadHistoryUpdateOne is the builder for updating a single LeadHistory entity.
type LeadHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadHistoryMutation
}

// SetUserID sets the "user_id" field.
func (_u *LeadHistoryUpdateOne) SetUserID(v int) *LeadHistoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LeadHistoryUpdateOne) SetNillableUserID(v *int) *LeadHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *LeadHistoryUpdateOne) ClearUserID() *LeadHistoryUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatusBefore sets the "status_before" field.
func (_u *LeadHistoryUpdateOne) SetStatusBefore(v leadhistory.StatusBefore) *LeadHistoryUpdateOne {
	_u.mutation.SetStatusBefore(v)
	return _u
}

// SetNillableStatusBefore sets the "status_before" field if the given value is not nil.
func (_u *LeadHistoryUpdateOne) SetNillableStatusBefore(v *leadhistory.StatusBefore) *LeadHistoryUpdateOne {
	if v != nil {
		_u.SetStatusBefore(*v)
	}
	return _u
}

// SetStatusAfter sets the "status_after" field.
func (_u *LeadHistoryUpdateOne) SetStatusAfter(v leadhistory.StatusAfter) *LeadHistoryUpdateOne {
	_u.mutation.SetStatusAfter(v)
	return _u
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (_u *LeadHistoryUpdateOne) SetNillableStatusAfter(v *leadhistory.StatusAfter) *LeadHistoryUpdateOne {
	if v != nil {
		_u.SetStatusAfter(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *LeadHistoryUpdateOne) SetNote(v string) *LeadHistoryUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *LeadHistoryUpdateOne) SetNillableNote(v *string) *LeadHistoryUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *LeadHistoryUpdateOne) ClearNote() *LeadHistoryUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *LeadHistoryUpdateOne) SetUser(v *User) *LeadHistoryUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the LeadHistoryMutation object of the builder.
func (_u *LeadHistoryUpdateOne) Mutation() *LeadHistoryMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *LeadHistoryUpdateOne) ClearUser() *LeadHistoryUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the LeadHistoryUpdate builder.
func (_u *LeadHistoryUpdateOne) Where(ps ...predicate.LeadHistory) *LeadHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadHistoryUpdateOne) Select(field string, fields ...string) *LeadHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadHistory entity.
func (_u *LeadHistoryUpdateOne) Save(ctx context.Context) (*LeadHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadHistoryUpdateOne) SaveX(ctx context.Context) *LeadHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.StatusBefore(); ok {
		if err := leadhistory.StatusBeforeValidator(v); err != nil {
			return &ValidationError{Name: "status_before", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.status_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusAfter(); ok {
		if err := leadhistory.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.status_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := leadhistory.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "LeadHistory.note": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LeadHistory.lead"`)
	}
	return nil
}

func (_u *LeadHistoryUpdateOne) sqlSave(ctx context.Context) (_node *LeadHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadhistory.Table, leadhistory.Columns, sqlgraph.NewFieldSpec(leadhistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadhistory.FieldID)
		for _, f := range fields {
			if !leadhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadhistory.FieldID {
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
	if value, ok := _u.mutation.StatusBefore(); ok {
		_spec.SetField(leadhistory.FieldStatusBefore, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusAfter(); ok {
		_spec.SetField(leadhistory.FieldStatusAfter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(leadhistory.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(leadhistory.FieldNote, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LeadHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
