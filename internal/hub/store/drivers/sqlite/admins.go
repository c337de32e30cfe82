package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

const adminsTable = "admins"

type adminsRepo struct {
	db dbtx
}

func (r *adminsRepo) FindByEmail(ctx context.Context, email string) (domain.Principal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, last_name, email, password_hash, otp, otp_expires
		FROM admins WHERE email = ?`, email)

	var p domain.Principal
	var otp sql.NullString
	var otpExpires sql.NullTime
	if err := row.Scan(&p.ID, &p.Name, &p.LastName, &p.Email, &p.PasswordHash, &otp, &otpExpires); err != nil {
		return domain.Principal{}, mapNotFound(err)
	}
	p.Role = domain.RoleAdmin
	p.OTP = mapNullStringPtr(otp)
	p.OTPExpires = mapNullTimePtr(otpExpires)
	return p, nil
}

func (r *adminsRepo) SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	return setResetCode(ctx, r.db, adminsTable, id, code, expiresAt)
}

func (r *adminsRepo) ResetPassword(ctx context.Context, id, newHash string) error {
	return resetPassword(ctx, r.db, adminsTable, id, newHash)
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admins (
			id, name, last_name, department, designation, qualification,
			contact_number, email, password_hash, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.LastName, a.Department, a.Designation, a.Qualification,
		a.ContactNumber, a.Email, a.PasswordHash, now, now,
	)
	return mapConflict(err)
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
