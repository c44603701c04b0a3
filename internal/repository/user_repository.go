package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/karolw/hotel-reservation/internal/model"
	"github.com/karolw/hotel-reservation/internal/utils"
)

// UserRepo persists application users.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a user with a bcrypt-hashed password and returns
// its ID. The unique-email violation maps to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, email, password string, name *string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, name, role) VALUES (?,?,?,?)",
		email, hash, name, "CUSTOMER")
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.get(ctx, "SELECT id,email,password_hash,name,role,created_at,updated_at FROM users WHERE email=? LIMIT 1", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.get(ctx, "SELECT id,email,password_hash,name,role,created_at,updated_at FROM users WHERE id=? LIMIT 1", id)
}

func (r *UserRepo) get(ctx context.Context, q string, arg any) (model.User, error) {
	var u model.User
	var name sql.NullString
	err := r.DB.QueryRowContext(ctx, q, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &name, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	if name.Valid {
		n := name.String
		u.Name = &n
	}
	return u, nil
}
