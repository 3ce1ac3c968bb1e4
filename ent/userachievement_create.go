// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/userachievement"
	"github.com/google/uuid"
)

// UserAchievementCreate is the builder for creating a UserAchievement entity.
type UserAchievementCreate struct {
	config
	mutation *UserAchievementMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (uac *UserAchievementCreate) SetUserID(u uuid.UUID) *UserAchievementCreate {
	uac.mutation.SetUserID(u)
	return uac
}

// SetAchievementKey sets the "achievement_key" field.
func (uac *UserAchievementCreate) SetAchievementKey(s string) *UserAchievementCreate {
	uac.mutation.SetAchievementKey(s)
	return uac
}

// SetEarnedAt sets the "earned_at" field.
func (uac *UserAchievementCreate) SetEarnedAt(t time.Time) *UserAchievementCreate {
	uac.mutation.SetEarnedAt(t)
	return uac
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (uac *UserAchievementCreate) SetNillableEarnedAt(t *time.Time) *UserAchievementCreate {
	if t != nil {
		uac.SetEarnedAt(*t)
	}
	return uac
}

// Mutation returns the UserAchievementMutation object of the builder.
func (uac *UserAchievementCreate) Mutation() *UserAchievementMutation {
	return uac.mutation
}

// Save creates the UserAchievement in the database.
func (uac *UserAchievementCreate) Save(ctx context.Context) (*UserAchievement, error) {
	uac.defaults()
	return withHooks(ctx, uac.sqlSave, uac.mutation, uac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uac *UserAchievementCreate) SaveX(ctx context.Context) *UserAchievement {
	v, err := uac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uac *UserAchievementCreate) Exec(ctx context.Context) error {
	_, err := uac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uac *UserAchievementCreate) ExecX(ctx context.Context) {
	if err := uac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uac *UserAchievementCreate) defaults() {
	if _, ok := uac.mutation.EarnedAt(); !ok {
		v := userachievement.DefaultEarnedAt()
		uac.mutation.SetEarnedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uac *UserAchievementCreate) check() error {
	if _, ok := uac.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserAchievement.user_id"`)}
	}
	if _, ok := uac.mutation.AchievementKey(); !ok {
		return &ValidationError{Name: "achievement_key", err: errors.New(`ent: missing required field "UserAchievement.achievement_key"`)}
	}
	if v, ok := uac.mutation.AchievementKey(); ok {
		if err := userachievement.AchievementKeyValidator(v); err != nil {
			return &ValidationError{Name: "achievement_key", err: fmt.Errorf(`ent: validator failed for field "UserAchievement.achievement_key": %w`, err)}
		}
	}
	if _, ok := uac.mutation.EarnedAt(); !ok {
		return &ValidationError{Name: "earned_at", err: errors.New(`ent: missing required field "UserAchievement.earned_at"`)}
	}
	return nil
}

func (uac *UserAchievementCreate) sqlSave(ctx context.Context) (*UserAchievement, error) {
	if err := uac.check(); err != nil {
		return nil, err
	}
	_node, _spec := uac.createSpec()
	if err := sqlgraph.CreateNode(ctx, uac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	uac.mutation.id = &_node.ID
	uac.mutation.done = true
	return _node, nil
}

func (uac *UserAchievementCreate) createSpec() (*UserAchievement, *sqlgraph.CreateSpec) {
	var (
		_node = &UserAchievement{config: uac.config}
		_spec = sqlgraph.NewCreateSpec(userachievement.Table, sqlgraph.NewFieldSpec(userachievement.FieldID, field.TypeInt))
	)
	if value, ok := uac.mutation.UserID(); ok {
		_spec.SetField(userachievement.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := uac.mutation.AchievementKey(); ok {
		_spec.SetField(userachievement.FieldAchievementKey, field.TypeString, value)
		_node.AchievementKey = value
	}
	if value, ok := uac.mutation.EarnedAt(); ok {
		_spec.SetField(userachievement.FieldEarnedAt, field.TypeTime, value)
		_node.EarnedAt = value
	}
	return _node, _spec
}

// UserAchievementCreateBulk is the builder for creating many UserAchievement entities in bulk.
type UserAchievementCreateBulk struct {
	config
	err      error
	builders []*UserAchievementCreate
}

// Save creates the UserAchievement entities in the database.
func (uacb *UserAchievementCreateBulk) Save(ctx context.Context) ([]*UserAchievement, error) {
	if uacb.err != nil {
		return nil, uacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(uacb.builders))
	nodes := make([]*UserAchievement, len(uacb.builders))
	mutators := make([]Mutator, len(uacb.builders))
	for i := range uacb.builders {
		func(i int, root context.Context) {
			builder := uacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserAchievementMutation)
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
					_, err = mutators[i+1].Mutate(root, uacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, uacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, uacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (uacb *UserAchievementCreateBulk) SaveX(ctx context.Context) []*UserAchievement {
	v, err := uacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uacb *UserAchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := uacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uacb *UserAchievementCreateBulk) ExecX(ctx context.Context) {
	if err := uacb.Exec(ctx); err != nil {
		panic(err)
	}
}
