package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/limit-gauge/internal/common"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/google/uuid"
)

// ErrDesignNotFound is returned when no design has the requested ID.
var ErrDesignNotFound = fmt.Errorf("design %w", common.ErrNotFound)

// SaveDesign stores a computed result and returns it with its new ID.
func (s *SQLiteStorage) SaveDesign(ctx context.Context, res *model.GaugeResult) (*model.Design, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateResult(res); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	design := &model.Design{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Result:    *res,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO designs (id, created_at, feature, nominal, upper_deviation, lower_deviation, it_grade, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		design.ID,
		design.CreatedAt,
		string(res.Input.Feature),
		res.Input.Nominal.String(),
		res.Input.UpperDeviation.String(),
		res.Input.LowerDeviation.String(),
		res.Resolved.ITGrade,
		string(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save design: %w", err)
	}

	return design, nil
}

// GetDesign returns the design with the given ID.
func (s *SQLiteStorage) GetDesign(ctx context.Context, id string) (*model.Design, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, result_json
		FROM designs
		WHERE id = ?
	`, id)

	design, err := scanDesign(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDesignNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get design: %w", err)
	}
	return design, nil
}

// ListDesigns returns up to limit designs, newest first.
func (s *SQLiteStorage) ListDesigns(ctx context.Context, limit int) ([]model.Design, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return s.listDesignsTx(ctx, s.db, limit)
}

func (s *SQLiteStorage) listDesignsTx(ctx context.Context, q queryable, limit int) ([]model.Design, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, created_at, result_json
		FROM designs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var designs []model.Design
	for rows.Next() {
		design, err := scanDesign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan design: %w", err)
		}
		designs = append(designs, *design)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate designs: %w", err)
	}
	return designs, nil
}

// DeleteDesign removes the design with the given ID.
func (s *SQLiteStorage) DeleteDesign(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete design: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrDesignNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDesign(row scanner) (*model.Design, error) {
	var (
		design  model.Design
		payload string
	)
	if err := row.Scan(&design.ID, &design.CreatedAt, &payload); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &design.Result); err != nil {
		return nil, fmt.Errorf("%w: design %s: %w", common.ErrDatabaseCorrupted, design.ID, err)
	}
	return &design, nil
}
