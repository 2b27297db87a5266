// Package store persists the forecast inputs in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/runcastdev/runcast/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned by update and delete operations when no record
// carries the given id.
var ErrNotFound = errors.New("record not found")

const dateFormat = "2006-01-02"

// Store provides SQLite-backed persistence for projects, cost records, and
// occasional entries.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshot loads every collection into an immutable view for the engine.
func (s *Store) Snapshot() (model.Snapshot, error) {
	projects, err := s.Projects()
	if err != nil {
		return model.Snapshot{}, err
	}
	labor, err := s.LaborCosts()
	if err != nil {
		return model.Snapshot{}, err
	}
	admin, err := s.AdminCosts()
	if err != nil {
		return model.Snapshot{}, err
	}
	occasional, err := s.OccasionalEntries()
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{
		Projects:   projects,
		LaborCosts: labor,
		AdminCosts: admin,
		Occasional: occasional,
	}, nil
}

// AddProject inserts a new project.
func (s *Store) AddProject(p model.Project) error {
	_, err := s.db.Exec(`INSERT INTO projects
		(id, name, delivery_date, contract_amount, close_rate_pct, business_line,
		 ratio_first, ratio_second, ratio_final, corrected_revenue)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.DeliveryDate.Format(dateFormat), p.ContractAmount,
		p.CloseRatePct, p.BusinessLine,
		p.Ratios.First, p.Ratios.Second, p.Ratios.Final, p.CorrectedRevenue,
	)
	if err != nil {
		return fmt.Errorf("inserting project %q: %w", p.Name, err)
	}
	return nil
}

// UpdateProject overwrites the project with p's id. Returns ErrNotFound if
// no such project exists.
func (s *Store) UpdateProject(p model.Project) error {
	res, err := s.db.Exec(`UPDATE projects SET
		name = ?, delivery_date = ?, contract_amount = ?, close_rate_pct = ?,
		business_line = ?, ratio_first = ?, ratio_second = ?, ratio_final = ?,
		corrected_revenue = ?
		WHERE id = ?`,
		p.Name, p.DeliveryDate.Format(dateFormat), p.ContractAmount,
		p.CloseRatePct, p.BusinessLine,
		p.Ratios.First, p.Ratios.Second, p.Ratios.Final, p.CorrectedRevenue,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project %q: %w", p.ID, err)
	}
	return checkAffected(res)
}

// DeleteProject removes the project with the given id. Returns ErrNotFound
// if no such project exists.
func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Project returns the project with the given id, or ErrNotFound.
func (s *Store) Project(id string) (model.Project, error) {
	row := s.db.QueryRow(`SELECT id, name, delivery_date, contract_amount,
		close_rate_pct, business_line, ratio_first, ratio_second, ratio_final,
		corrected_revenue FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, ErrNotFound
	}
	return p, err
}

// Projects returns all projects ordered by delivery date, then name.
func (s *Store) Projects() ([]model.Project, error) {
	rows, err := s.db.Query(`SELECT id, name, delivery_date, contract_amount,
		close_rate_pct, business_line, ratio_first, ratio_second, ratio_final,
		corrected_revenue FROM projects ORDER BY delivery_date, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (model.Project, error) {
	var p model.Project
	var delivery string
	err := row.Scan(&p.ID, &p.Name, &delivery, &p.ContractAmount,
		&p.CloseRatePct, &p.BusinessLine,
		&p.Ratios.First, &p.Ratios.Second, &p.Ratios.Final, &p.CorrectedRevenue)
	if err != nil {
		return model.Project{}, err
	}
	p.DeliveryDate, err = parseDate(delivery)
	if err != nil {
		return model.Project{}, fmt.Errorf("project %q: %w", p.ID, err)
	}
	return p, nil
}

// AddLaborCost inserts a new labor cost record.
func (s *Store) AddLaborCost(r model.LaborCostRecord) error {
	_, err := s.db.Exec(`INSERT INTO labor_costs
		(id, category, resource, monthly_cost, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Category, r.Resource, r.MonthlyCost,
		r.Start.Format(dateFormat), r.End.Format(dateFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting labor cost %q: %w", r.Resource, err)
	}
	return nil
}

// UpdateLaborCost overwrites the record with r's id, or returns ErrNotFound.
func (s *Store) UpdateLaborCost(r model.LaborCostRecord) error {
	res, err := s.db.Exec(`UPDATE labor_costs SET
		category = ?, resource = ?, monthly_cost = ?, start_date = ?, end_date = ?
		WHERE id = ?`,
		r.Category, r.Resource, r.MonthlyCost,
		r.Start.Format(dateFormat), r.End.Format(dateFormat), r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating labor cost %q: %w", r.ID, err)
	}
	return checkAffected(res)
}

// DeleteLaborCost removes the record with the given id, or returns ErrNotFound.
func (s *Store) DeleteLaborCost(id string) error {
	res, err := s.db.Exec("DELETE FROM labor_costs WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// LaborCosts returns all labor cost records ordered by start date, then
// resource label.
func (s *Store) LaborCosts() ([]model.LaborCostRecord, error) {
	rows, err := s.db.Query(`SELECT id, category, resource, monthly_cost,
		start_date, end_date FROM labor_costs ORDER BY start_date, resource`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.LaborCostRecord
	for rows.Next() {
		var r model.LaborCostRecord
		var start, end string
		if err := rows.Scan(&r.ID, &r.Category, &r.Resource, &r.MonthlyCost, &start, &end); err != nil {
			return nil, err
		}
		if r.Start, err = parseDate(start); err != nil {
			return nil, fmt.Errorf("labor cost %q: %w", r.ID, err)
		}
		if r.End, err = parseDate(end); err != nil {
			return nil, fmt.Errorf("labor cost %q: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AddAdminCost inserts a new administrative cost record.
func (s *Store) AddAdminCost(r model.AdminCostRecord) error {
	_, err := s.db.Exec(`INSERT INTO admin_costs
		(id, category, item, monthly_cost, start_date, end_date, frequency)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Category, r.Item, r.MonthlyCost,
		r.Start.Format(dateFormat), r.End.Format(dateFormat), string(r.Frequency),
	)
	if err != nil {
		return fmt.Errorf("inserting admin cost %q: %w", r.Item, err)
	}
	return nil
}

// UpdateAdminCost overwrites the record with r's id, or returns ErrNotFound.
func (s *Store) UpdateAdminCost(r model.AdminCostRecord) error {
	res, err := s.db.Exec(`UPDATE admin_costs SET
		category = ?, item = ?, monthly_cost = ?, start_date = ?, end_date = ?,
		frequency = ? WHERE id = ?`,
		r.Category, r.Item, r.MonthlyCost,
		r.Start.Format(dateFormat), r.End.Format(dateFormat), string(r.Frequency), r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating admin cost %q: %w", r.ID, err)
	}
	return checkAffected(res)
}

// DeleteAdminCost removes the record with the given id, or returns ErrNotFound.
func (s *Store) DeleteAdminCost(id string) error {
	res, err := s.db.Exec("DELETE FROM admin_costs WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// AdminCosts returns all administrative cost records ordered by start date,
// then item label.
func (s *Store) AdminCosts() ([]model.AdminCostRecord, error) {
	rows, err := s.db.Query(`SELECT id, category, item, monthly_cost,
		start_date, end_date, frequency FROM admin_costs ORDER BY start_date, item`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.AdminCostRecord
	for rows.Next() {
		var r model.AdminCostRecord
		var start, end, freq string
		if err := rows.Scan(&r.ID, &r.Category, &r.Item, &r.MonthlyCost, &start, &end, &freq); err != nil {
			return nil, err
		}
		if r.Start, err = parseDate(start); err != nil {
			return nil, fmt.Errorf("admin cost %q: %w", r.ID, err)
		}
		if r.End, err = parseDate(end); err != nil {
			return nil, fmt.Errorf("admin cost %q: %w", r.ID, err)
		}
		if r.Frequency, err = model.ParseFrequency(freq); err != nil {
			return nil, fmt.Errorf("admin cost %q: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AddOccasionalEntry inserts a new one-off entry.
func (s *Store) AddOccasionalEntry(e model.OccasionalEntry) error {
	_, err := s.db.Exec(`INSERT INTO occasional_entries
		(id, kind, label, amount, entry_date, tag)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Kind), e.Label, e.Amount, e.Date.Format(dateFormat), e.Tag,
	)
	if err != nil {
		return fmt.Errorf("inserting entry %q: %w", e.Label, err)
	}
	return nil
}

// UpdateOccasionalEntry overwrites the entry with e's id, or returns
// ErrNotFound.
func (s *Store) UpdateOccasionalEntry(e model.OccasionalEntry) error {
	res, err := s.db.Exec(`UPDATE occasional_entries SET
		kind = ?, label = ?, amount = ?, entry_date = ?, tag = ? WHERE id = ?`,
		string(e.Kind), e.Label, e.Amount, e.Date.Format(dateFormat), e.Tag, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating entry %q: %w", e.ID, err)
	}
	return checkAffected(res)
}

// DeleteOccasionalEntry removes the entry with the given id, or returns
// ErrNotFound.
func (s *Store) DeleteOccasionalEntry(id string) error {
	res, err := s.db.Exec("DELETE FROM occasional_entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// OccasionalEntries returns all one-off entries ordered by date, then label.
func (s *Store) OccasionalEntries() ([]model.OccasionalEntry, error) {
	rows, err := s.db.Query(`SELECT id, kind, label, amount, entry_date, tag
		FROM occasional_entries ORDER BY entry_date, label`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.OccasionalEntry
	for rows.Next() {
		var e model.OccasionalEntry
		var kind, date string
		var tag sql.NullString
		if err := rows.Scan(&e.ID, &kind, &e.Label, &e.Amount, &date, &tag); err != nil {
			return nil, err
		}
		e.Kind = model.EntryKind(kind)
		if tag.Valid {
			e.Tag = tag.String
		}
		if e.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored date %q: %w", s, err)
	}
	return t, nil
}
