package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/questweb/user-service/internal/domain"
	"github.com/questweb/user-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type UserRepository interface {
	GetUsers(ctx context.Context) (data []domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
	GetUserByUsername(ctx context.Context, username string) (data domain.User, err error)
	GetAddressesByUserID(ctx context.Context, userID int64) (data []domain.Address, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	DeleteUser(ctx context.Context, id int64) (err error)
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context) (data []domain.User, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM users ORDER BY id ASC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE username = $1", username)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetUserByUsername").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetAddressesByUserID(ctx context.Context, userID int64) (data []domain.Address, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM addresses WHERE user_id = $1 ORDER BY id ASC", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetAddressesByUserID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE users SET username=:username, role=:role, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteUser").Msg("")
		return errs.ErrInternalServer
	}

	return
}
