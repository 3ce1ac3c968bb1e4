// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/studysession"
	"github.com/google/uuid"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (ssc *StudySessionCreate) SetSequence(i int64) *StudySessionCreate {
	ssc.mutation.SetSequence(i)
	return ssc
}

// SetTimestamp sets the "timestamp" field.
func (ssc *StudySessionCreate) SetTimestamp(t time.Time) *StudySessionCreate {
	ssc.mutation.SetTimestamp(t)
	return ssc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (ssc *StudySessionCreate) SetNillableTimestamp(t *time.Time) *StudySessionCreate {
	if t != nil {
		ssc.SetTimestamp(*t)
	}
	return ssc
}

// SetUserID sets the "user_id" field.
func (ssc *StudySessionCreate) SetUserID(u uuid.UUID) *StudySessionCreate {
	ssc.mutation.SetUserID(u)
	return ssc
}

// SetSessionID sets the "session_id" field.
func (ssc *StudySessionCreate) SetSessionID(u uuid.UUID) *StudySessionCreate {
	ssc.mutation.SetSessionID(u)
	return ssc
}

// SetSessionDate sets the "session_date" field.
func (ssc *StudySessionCreate) SetSessionDate(s string) *StudySessionCreate {
	ssc.mutation.SetSessionDate(s)
	return ssc
}

// SetDurationSeconds sets the "duration_seconds" field.
func (ssc *StudySessionCreate) SetDurationSeconds(i int) *StudySessionCreate {
	ssc.mutation.SetDurationSeconds(i)
	return ssc
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (ssc *StudySessionCreate) SetNillableDurationSeconds(i *int) *StudySessionCreate {
	if i != nil {
		ssc.SetDurationSeconds(*i)
	}
	return ssc
}

// Mutation returns the StudySessionMutation object of the builder.
func (ssc *StudySessionCreate) Mutation() *StudySessionMutation {
	return ssc.mutation
}

// Save creates the StudySession in the database.
func (ssc *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	ssc.defaults()
	return withHooks(ctx, ssc.sqlSave, ssc.mutation, ssc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ssc *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := ssc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ssc *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := ssc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssc *StudySessionCreate) ExecX(ctx context.Context) {
	if err := ssc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssc *StudySessionCreate) defaults() {
	if _, ok := ssc.mutation.Timestamp(); !ok {
		v := studysession.DefaultTimestamp()
		ssc.mutation.SetTimestamp(v)
	}
	if _, ok := ssc.mutation.DurationSeconds(); !ok {
		v := studysession.DefaultDurationSeconds
		ssc.mutation.SetDurationSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssc *StudySessionCreate) check() error {
	if _, ok := ssc.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StudySession.sequence"`)}
	}
	if _, ok := ssc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StudySession.timestamp"`)}
	}
	if _, ok := ssc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudySession.user_id"`)}
	}
	if _, ok := ssc.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StudySession.session_id"`)}
	}
	if _, ok := ssc.mutation.SessionDate(); !ok {
		return &ValidationError{Name: "session_date", err: errors.New(`ent: missing required field "StudySession.session_date"`)}
	}
	if v, ok := ssc.mutation.SessionDate(); ok {
		if err := studysession.SessionDateValidator(v); err != nil {
			return &ValidationError{Name: "session_date", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_date": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "StudySession.duration_seconds"`)}
	}
	return nil
}

func (ssc *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
	if err := ssc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ssc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ssc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ssc.mutation.id = &_node.ID
	ssc.mutation.done = true
	return _node, nil
}

func (ssc *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: ssc.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	if value, ok := ssc.mutation.Sequence(); ok {
		_spec.SetField(studysession.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := ssc.mutation.Timestamp(); ok {
		_spec.SetField(studysession.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := ssc.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := ssc.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeUUID, value)
		_node.SessionID = value
	}
	if value, ok := ssc.mutation.SessionDate(); ok {
		_spec.SetField(studysession.FieldSessionDate, field.TypeString, value)
		_node.SessionDate = value
	}
	if value, ok := ssc.mutation.DurationSeconds(); ok {
		_spec.SetField(studysession.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (sscb *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if sscb.err != nil {
		return nil, sscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sscb.builders))
	nodes := make([]*StudySession, len(sscb.builders))
	mutators := make([]Mutator, len(sscb.builders))
	for i := range sscb.builders {
		func(i int, root context.Context) {
			builder := sscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
					_, err = mutators[i+1].Mutate(root, sscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sscb *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := sscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sscb *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := sscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sscb *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := sscb.Exec(ctx); err != nil {
		panic(err)
	}
}
