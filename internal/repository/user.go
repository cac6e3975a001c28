package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/lightbnb/backend/internal/errs"
	"github.com/lightbnb/backend/internal/model"
	"github.com/lightbnb/backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

const usersEmailKey = "users_email_key"

type UserRepository struct {
	db  Querier
	log *zerolog.Logger
}

func NewUserRepository(db Querier, log *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// GetUserWithEmail returns the user with the given email, or nil if there
// is none.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "user.get_with_email", `SELECT id, name, email, password FROM users WHERE email = $1`, email)
}

// GetUserWithID returns the user with the given id, or nil if there is none.
func (r *UserRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, "user.get_with_id", `SELECT id, name, email, password FROM users WHERE id = $1`, id)
}

func (r *UserRepository) getOne(ctx context.Context, op, sql string, arg any) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fail(r.log, op, err)
	}
	return &u, nil
}

// AddUser inserts a user after checking the email is free. The unique
// constraint on users.email still guards concurrent inserts; either path
// yields *errs.DuplicateEmailError.
func (r *UserRepository) AddUser(ctx context.Context, name, email, password string) (*model.User, error) {
	const op = "user.add"

	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return nil, fail(r.log, op, err)
	}
	if exists {
		return nil, &errs.DuplicateEmailError{Email: email}
	}

	u := model.User{Name: name, Email: email, Password: password}
	err = r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`,
		name, email, password,
	).Scan(&u.ID)
	if err != nil {
		err = sqlerr.Wrap(op, err)

		var sqlErr *sqlerr.Error
		if errors.As(err, &sqlErr) && sqlErr.Code == sqlerr.UniqueViolation && sqlErr.ConstraintName == usersEmailKey {
			return nil, &errs.DuplicateEmailError{Email: email}
		}
		return nil, fail(r.log, op, err)
	}

	return &u, nil
}
