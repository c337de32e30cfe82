package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

const alumniTable = "alumni"

type alumniRepo struct {
	db dbtx
}

const alumniColumns = `
	id, name, last_name, department, roll_number, graduation_year, degree,
	current_job_title, company_name, contact_number, email, password_hash,
	profile_picture, portfolio_url, linkedin_url, skills, about,
	otp, otp_expires, created_at, updated_at`

// alumniSearchWhere matches a record when the term appears in the name, last
// name, department or roll number. An empty term matches everything.
const alumniSearchWhere = `
	WHERE (? = ''
		OR name LIKE '%' || ? || '%'
		OR last_name LIKE '%' || ? || '%'
		OR department LIKE '%' || ? || '%'
		OR roll_number LIKE '%' || ? || '%')`

func (r *alumniRepo) FindByEmail(ctx context.Context, email string) (domain.Principal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, last_name, email, password_hash, otp, otp_expires
		FROM alumni WHERE email = ?`, email)

	var p domain.Principal
	var otp sql.NullString
	var otpExpires sql.NullTime
	if err := row.Scan(&p.ID, &p.Name, &p.LastName, &p.Email, &p.PasswordHash, &otp, &otpExpires); err != nil {
		return domain.Principal{}, mapNotFound(err)
	}
	p.Role = domain.RoleAlumni
	p.OTP = mapNullStringPtr(otp)
	p.OTPExpires = mapNullTimePtr(otpExpires)
	return p, nil
}

func (r *alumniRepo) SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	return setResetCode(ctx, r.db, alumniTable, id, code, expiresAt)
}

func (r *alumniRepo) ResetPassword(ctx context.Context, id, newHash string) error {
	return resetPassword(ctx, r.db, alumniTable, id, newHash)
}

func (r *alumniRepo) CreateAlumni(ctx context.Context, a domain.Alumni) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alumni (
			id, name, last_name, department, roll_number, graduation_year, degree,
			current_job_title, company_name, contact_number, email, password_hash,
			profile_picture, portfolio_url, linkedin_url, skills, about,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.LastName, a.Department, a.RollNumber, a.GraduationYear, a.Degree,
		a.CurrentJobTitle, a.CompanyName, a.ContactNumber, a.Email, a.PasswordHash,
		a.ProfilePicture, a.PortfolioURL, a.LinkedInURL, joinList(a.Skills), a.About,
		now, now,
	)
	return mapConflict(err)
}

func (r *alumniRepo) GetAlumniByID(ctx context.Context, id string) (domain.Alumni, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+alumniColumns+` FROM alumni WHERE id = ?`, id)
	a, err := scanAlumni(row)
	if err != nil {
		return domain.Alumni{}, mapNotFound(err)
	}
	return a, nil
}

func (r *alumniRepo) ExistsByRollNumber(ctx context.Context, rollNumber, department string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM alumni WHERE roll_number = ? AND department = ?`,
		rollNumber, department,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *alumniRepo) SearchAlumni(ctx context.Context, search string, offset, limit int) ([]domain.Alumni, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+alumniColumns+` FROM alumni`+alumniSearchWhere+`
		ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		search, search, search, search, search, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Alumni
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *alumniRepo) CountAlumni(ctx context.Context, search string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM alumni`+alumniSearchWhere,
		search, search, search, search, search,
	).Scan(&n)
	return n, err
}

func (r *alumniRepo) UpdateAlumni(ctx context.Context, a domain.Alumni) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE alumni SET
			name = ?, last_name = ?, department = ?, roll_number = ?,
			graduation_year = ?, degree = ?, current_job_title = ?,
			company_name = ?, contact_number = ?, profile_picture = ?,
			portfolio_url = ?, linkedin_url = ?, skills = ?, about = ?,
			updated_at = ?
		WHERE id = ?`,
		a.Name, a.LastName, a.Department, a.RollNumber,
		a.GraduationYear, a.Degree, a.CurrentJobTitle,
		a.CompanyName, a.ContactNumber, a.ProfilePicture,
		a.PortfolioURL, a.LinkedInURL, joinList(a.Skills), a.About,
		time.Now().UTC(), a.ID,
	)
	if err != nil {
		return mapConflict(err)
	}
	return requireRow(res)
}

func (r *alumniRepo) DeleteAlumni(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alumni WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *alumniRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return countCreatedBetween(ctx, r.db, alumniTable, start, end)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlumni(row rowScanner) (domain.Alumni, error) {
	var a domain.Alumni
	var skills string
	var otp sql.NullString
	var otpExpires sql.NullTime
	err := row.Scan(
		&a.ID, &a.Name, &a.LastName, &a.Department, &a.RollNumber,
		&a.GraduationYear, &a.Degree, &a.CurrentJobTitle, &a.CompanyName,
		&a.ContactNumber, &a.Email, &a.PasswordHash, &a.ProfilePicture,
		&a.PortfolioURL, &a.LinkedInURL, &skills, &a.About,
		&otp, &otpExpires, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Alumni{}, err
	}
	a.Skills = splitList(skills)
	a.OTP = mapNullStringPtr(otp)
	a.OTPExpires = mapNullTimePtr(otpExpires)
	return a, nil
}
