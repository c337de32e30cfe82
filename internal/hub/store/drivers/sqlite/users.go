package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

const usersTable = "users"

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) FindByEmail(ctx context.Context, email string) (domain.Principal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, otp, otp_expires
		FROM users WHERE email = ?`, email)

	var p domain.Principal
	var role string
	var otp sql.NullString
	var otpExpires sql.NullTime
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &role, &otp, &otpExpires); err != nil {
		return domain.Principal{}, mapNotFound(err)
	}
	p.Role = domain.Role(role)
	p.OTP = mapNullStringPtr(otp)
	p.OTPExpires = mapNullTimePtr(otpExpires)
	return p, nil
}

func (r *usersRepo) SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	return setResetCode(ctx, r.db, usersTable, id, code, expiresAt)
}

func (r *usersRepo) ResetPassword(ctx context.Context, id, newHash string) error {
	return resetPassword(ctx, r.db, usersTable, id, newHash)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), now, now,
	)
	return mapConflict(err)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return countCreatedBetween(ctx, r.db, usersTable, start, end)
}
