package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DeskRepository is the seed source for the office layout.
type DeskRepository interface {
	List(ctx context.Context) ([]domain.Desk, error)
}

type PGDeskRepository struct {
	db *pgxpool.Pool
}

func NewDeskRepository(db *pgxpool.Pool) DeskRepository {
	return &PGDeskRepository{db: db}
}

const deskColumns = `id, number, status, occupant, area, team, pos_x, pos_y`

func (r *PGDeskRepository) List(ctx context.Context) ([]domain.Desk, error) {
	rows, err := r.db.Query(ctx, `SELECT `+deskColumns+` FROM desks ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	desks := make([]domain.Desk, 0)
	for rows.Next() {
		d, err := scanDesk(rows)
		if err != nil {
			return nil, err
		}
		desks = append(desks, d)
	}
	return desks, rows.Err()
}

func scanDesk(row pgx.Row) (domain.Desk, error) {
	var (
		d    domain.Desk
		x, y *float64
	)
	if err := row.Scan(&d.ID, &d.Number, &d.Status, &d.Occupant, &d.Area, &d.Team, &x, &y); err != nil {
		return domain.Desk{}, err
	}
	if x != nil && y != nil {
		d.Position = &domain.Point{X: *x, Y: *y}
	}
	if err := d.Validate(); err != nil {
		return domain.Desk{}, fmt.Errorf("seed row %s: %w", d.ID, err)
	}
	return d, nil
}

var _ DeskRepository = (*PGDeskRepository)(nil)
