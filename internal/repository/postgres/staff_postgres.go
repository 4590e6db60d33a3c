package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"staffregistry/internal/model"
	"staffregistry/internal/repository"
)

// StaffPostgres is a PostgreSQL implementation of repository.StaffRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type StaffPostgres struct {
	db *sql.DB
}

// NewStaffPostgres creates a new StaffPostgres repository.
func NewStaffPostgres(db *sql.DB) *StaffPostgres {
	return &StaffPostgres{db: db}
}

var _ repository.StaffRepository = (*StaffPostgres)(nil)

const staffColumns = `id, appointment_number, full_name, gender, date_of_birth, age, nic_number,
		marital_status, address_line1, address_line2, address_line3, contact_number, email,
		designation, date_of_first_appointment, date_of_retirement, increment_date,
		salary_code, basic_salary, increment_amount, image_path, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStaff(row rowScanner) (*model.Staff, error) {
	var (
		s                              model.Staff
		addr2, addr3, email, imagePath sql.NullString
	)
	if err := row.Scan(
		&s.ID,
		&s.AppointmentNumber,
		&s.FullName,
		&s.Gender,
		&s.DateOfBirth,
		&s.Age,
		&s.NICNumber,
		&s.MaritalStatus,
		&s.AddressLine1,
		&addr2,
		&addr3,
		&s.ContactNumber,
		&email,
		&s.Designation,
		&s.DateOfFirstAppointment,
		&s.DateOfRetirement,
		&s.IncrementDate,
		&s.SalaryCode,
		&s.BasicSalary,
		&s.IncrementAmount,
		&imagePath,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.AddressLine2 = addr2.String
	s.AddressLine3 = addr3.String
	s.Email = email.String
	s.ImagePath = imagePath.String
	return &s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts a new staff row and returns the stored record.
func (r *StaffPostgres) Create(ctx context.Context, s *model.Staff) (*model.Staff, error) {
	q := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING ` + staffColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.AppointmentNumber,
		s.FullName,
		s.Gender,
		s.DateOfBirth,
		s.Age,
		s.NICNumber,
		s.MaritalStatus,
		s.AddressLine1,
		nullString(s.AddressLine2),
		nullString(s.AddressLine3),
		s.ContactNumber,
		nullString(s.Email),
		s.Designation,
		s.DateOfFirstAppointment,
		s.DateOfRetirement,
		s.IncrementDate,
		s.SalaryCode,
		s.BasicSalary,
		s.IncrementAmount,
		nullString(s.ImagePath),
		s.CreatedAt,
		s.UpdatedAt,
	)
	return scanStaff(row)
}

// FindByID fetches a single staff record by its ID.
func (r *StaffPostgres) FindByID(ctx context.Context, id string) (*model.Staff, error) {
	q := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	return scanStaff(r.db.QueryRowContext(ctx, q, id))
}

// List returns staff using LIMIT/OFFSET pagination and a total count.
func (r *StaffPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Staff], error) {
	return r.page(ctx, "", nil, pq)
}

// Update rewrites the row identified by s.ID. CreatedAt is left untouched.
func (r *StaffPostgres) Update(ctx context.Context, s *model.Staff) (*model.Staff, error) {
	q := `
		UPDATE staff SET
			appointment_number = $1, full_name = $2, gender = $3, date_of_birth = $4,
			age = $5, nic_number = $6, marital_status = $7, address_line1 = $8,
			address_line2 = $9, address_line3 = $10, contact_number = $11, email = $12,
			designation = $13, date_of_first_appointment = $14, date_of_retirement = $15,
			increment_date = $16, salary_code = $17, basic_salary = $18,
			increment_amount = $19, image_path = $20, updated_at = $21
		WHERE id = $22
		RETURNING ` + staffColumns
	row := r.db.QueryRowContext(ctx, q,
		s.AppointmentNumber,
		s.FullName,
		s.Gender,
		s.DateOfBirth,
		s.Age,
		s.NICNumber,
		s.MaritalStatus,
		s.AddressLine1,
		nullString(s.AddressLine2),
		nullString(s.AddressLine3),
		s.ContactNumber,
		nullString(s.Email),
		s.Designation,
		s.DateOfFirstAppointment,
		s.DateOfRetirement,
		s.IncrementDate,
		s.SalaryCode,
		s.BasicSalary,
		s.IncrementAmount,
		nullString(s.ImagePath),
		s.UpdatedAt,
		s.ID,
	)
	return scanStaff(row)
}

// Delete removes a staff row by ID. It does not return an error if the row does not exist.
func (r *StaffPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	return err
}

// Search filters staff by the non-empty fields of f.
// Free text matches full name or appointment number; NIC matches by substring.
func (r *StaffPostgres) Search(ctx context.Context, f model.StaffSearch) (*repository.PageResult[model.Staff], error) {
	var (
		where strings.Builder
		args  []any
	)
	add := func(clause string, arg any) {
		args = append(args, arg)
		where.WriteString(" AND ")
		where.WriteString(strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(args))))
	}

	if f.Query != "" {
		add("(full_name ILIKE ? OR appointment_number ILIKE ?)", "%"+f.Query+"%")
	}
	if f.Designation != "" {
		add("designation = ?", f.Designation)
	}
	if f.Gender != "" {
		add("gender = ?", f.Gender)
	}
	if f.MaritalStatus != "" {
		add("marital_status = ?", f.MaritalStatus)
	}
	if f.SalaryCode != "" {
		add("salary_code = ?", f.SalaryCode)
	}
	if f.NICNumber != "" {
		add("nic_number ILIKE ?", "%"+f.NICNumber+"%")
	}
	if f.AgeMin != nil {
		add("age >= ?", *f.AgeMin)
	}
	if f.AgeMax != nil {
		add("age <= ?", *f.AgeMax)
	}

	return r.page(ctx, where.String(), args, repository.PageQuery{Limit: f.Limit, Offset: f.Offset})
}

// page counts and fetches rows matching "WHERE 1=1" + where.
// A non-positive limit returns every matching row.
func (r *StaffPostgres) page(ctx context.Context, where string, args []any, pq repository.PageQuery) (*repository.PageResult[model.Staff], error) {
	var total int
	qCount := `SELECT COUNT(*) FROM staff WHERE 1=1` + where
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + staffColumns + ` FROM staff WHERE 1=1` + where + ` ORDER BY full_name, id`
	listArgs := append([]any{}, args...)
	if pq.Limit > 0 {
		listArgs = append(listArgs, pq.Limit, pq.Offset)
		qList += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(listArgs)-1, len(listArgs))
	}

	rows, err := r.db.QueryContext(ctx, qList, listArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Staff]{
		Items: items,
		Total: total,
	}, nil
}

// Stats returns the total and grouped counts.
func (r *StaffPostgres) Stats(ctx context.Context) (*model.StaffCount, error) {
	out := &model.StaffCount{
		ByDesignation: make([]model.DesignationCount, 0),
		ByGender:      make([]model.GenderCount, 0),
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff`).Scan(&out.Total); err != nil {
		return nil, err
	}

	err := r.groupCount(ctx, "designation", func(key string, n int) {
		out.ByDesignation = append(out.ByDesignation, model.DesignationCount{Designation: key, Count: n})
	})
	if err != nil {
		return nil, err
	}

	err = r.groupCount(ctx, "gender", func(key string, n int) {
		out.ByGender = append(out.ByGender, model.GenderCount{Gender: key, Count: n})
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// groupCount runs a GROUP BY over column; column is never user supplied.
func (r *StaffPostgres) groupCount(ctx context.Context, column string, emit func(string, int)) error {
	q := fmt.Sprintf(`SELECT %[1]s, COUNT(*) FROM staff GROUP BY %[1]s ORDER BY %[1]s`, column)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		emit(key, n)
	}
	return rows.Err()
}
