package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `u.id, u.email, u.full_name, u.password_hash, u.active,
	        u.role_id, r.name, u.refresh_token, u.refresh_token_expiry`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Active,
		&u.RoleID, &u.RoleName, &u.RefreshToken, &u.RefreshTokenExpiry)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users u JOIN roles r ON r.id = u.role_id
		 WHERE u.id = $1`, id))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, err
}

// FindByEmail matches the email exactly, case-sensitive.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users u JOIN roles r ON r.id = u.role_id
		 WHERE u.email = $1`, email))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, err
}

func (r *UserRepository) FindByRefreshToken(ctx context.Context, token string) (model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users u JOIN roles r ON r.id = u.role_id
		 WHERE u.refresh_token = $1`, token))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("find user by refresh token: %w", err)
	}
	return u, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

var userSortColumns = map[string]string{
	"email":    "u.email",
	"fullName": "u.full_name",
	"roleName": "r.name",
}

// List pages users filtered by an email substring. The total count is taken
// over the filtered set before the window is applied.
func (r *UserRepository) List(ctx context.Context, p paging.Params, filter string) ([]model.User, int, error) {
	pattern := "%" + filter + "%"

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users u WHERE u.email LIKE $1`, pattern).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	limit, offset := p.Window()
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users u JOIN roles r ON r.id = u.role_id
		 WHERE u.email LIKE $1
		 ORDER BY `+orderBy(userSortColumns, p, "u.email")+`
		 LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, full_name, password_hash, active, role_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		u.Email, u.FullName, u.PasswordHash, u.Active, u.RoleID).Scan(&u.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return r.FindByID(ctx, u.ID)
}

func (r *UserRepository) Update(ctx context.Context, u model.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET email = $2, full_name = $3, role_id = $4, active = $5
		 WHERE id = $1`,
		u.ID, u.Email, u.FullName, u.RoleID, u.Active)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// StoreRefreshToken overwrites the account's live refresh token. Last writer
// wins; concurrent logins are not serialized.
func (r *UserRepository) StoreRefreshToken(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET refresh_token = $2, refresh_token_expiry = $3 WHERE id = $1`,
		userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Touch issues a round trip with no effect. Token refresh keeps a persistence
// call on its success path even though nothing changes.
func (r *UserRepository) Touch(ctx context.Context) error {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("touch: %w", err)
	}
	return nil
}
