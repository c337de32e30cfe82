package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

const facultyTable = "faculty"

type facultyRepo struct {
	db dbtx
}

func (r *facultyRepo) FindByEmail(ctx context.Context, email string) (domain.Principal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, last_name, email, password_hash, otp, otp_expires
		FROM faculty WHERE email = ?`, email)

	var p domain.Principal
	var otp sql.NullString
	var otpExpires sql.NullTime
	if err := row.Scan(&p.ID, &p.Name, &p.LastName, &p.Email, &p.PasswordHash, &otp, &otpExpires); err != nil {
		return domain.Principal{}, mapNotFound(err)
	}
	p.Role = domain.RoleFaculty
	p.OTP = mapNullStringPtr(otp)
	p.OTPExpires = mapNullTimePtr(otpExpires)
	return p, nil
}

func (r *facultyRepo) SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	return setResetCode(ctx, r.db, facultyTable, id, code, expiresAt)
}

func (r *facultyRepo) ResetPassword(ctx context.Context, id, newHash string) error {
	return resetPassword(ctx, r.db, facultyTable, id, newHash)
}

func (r *facultyRepo) CreateFaculty(ctx context.Context, f domain.Faculty) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO faculty (
			id, name, last_name, department, designation, qualification,
			contact_number, email, password_hash, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.LastName, f.Department, f.Designation, f.Qualification,
		f.ContactNumber, f.Email, f.PasswordHash, now, now,
	)
	return mapConflict(err)
}

func (r *facultyRepo) GetFacultyByID(ctx context.Context, id string) (domain.Faculty, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, last_name, department, designation, qualification,
			contact_number, email, password_hash, otp, otp_expires,
			created_at, updated_at
		FROM faculty WHERE id = ?`, id)
	f, err := scanFaculty(row)
	if err != nil {
		return domain.Faculty{}, mapNotFound(err)
	}
	return f, nil
}

func (r *facultyRepo) ListFaculty(ctx context.Context) ([]domain.Faculty, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, last_name, department, designation, qualification,
			contact_number, email, password_hash, otp, otp_expires,
			created_at, updated_at
		FROM faculty ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *facultyRepo) CountFaculty(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM faculty`).Scan(&n)
	return n, err
}

func (r *facultyRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return countCreatedBetween(ctx, r.db, facultyTable, start, end)
}

func scanFaculty(row rowScanner) (domain.Faculty, error) {
	var f domain.Faculty
	var otp sql.NullString
	var otpExpires sql.NullTime
	err := row.Scan(
		&f.ID, &f.Name, &f.LastName, &f.Department, &f.Designation,
		&f.Qualification, &f.ContactNumber, &f.Email, &f.PasswordHash,
		&otp, &otpExpires, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return domain.Faculty{}, err
	}
	f.OTP = mapNullStringPtr(otp)
	f.OTPExpires = mapNullTimePtr(otpExpires)
	return f, nil
}
