package store

import (
	"context"
	"fmt"

	"github.com/roach88/launchdims/internal/ir"
	"github.com/roach88/launchdims/internal/level"
)

// GetLaunch returns the launch stored under id.
// Returns ErrNotFound if id is unknown.
func (s *Store) GetLaunch(ctx context.Context, id string) (*ir.Launch, error) {
	l := &ir.Launch{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, content_hash, name, kernel
		FROM launches
		WHERE id = ?
	`, id).Scan(&l.ID, &l.Hash, &l.Name, &l.Kernel)
	if isNoRows(err) {
		return nil, fmt.Errorf("get launch %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get launch %s: %w", id, err)
	}

	if err := s.readLevels(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// FindByName returns every launch named name, oldest first.
// Returns an empty slice (not nil) if none exist.
func (s *Store) FindByName(ctx context.Context, name string) ([]*ir.Launch, error) {
	return s.listWhere(ctx, `WHERE name = ?`, name)
}

// ListLaunches returns every stored launch, oldest first.
// Returns an empty slice (not nil) if the catalog is empty.
func (s *Store) ListLaunches(ctx context.Context) ([]*ir.Launch, error) {
	return s.listWhere(ctx, "")
}

func (s *Store) listWhere(ctx context.Context, where string, args ...any) ([]*ir.Launch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content_hash, name, kernel
		FROM launches
		`+where+`
		ORDER BY id COLLATE BINARY ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query launches: %w", err)
	}
	defer rows.Close()

	launches := []*ir.Launch{}
	for rows.Next() {
		l := &ir.Launch{}
		if err := rows.Scan(&l.ID, &l.Hash, &l.Name, &l.Kernel); err != nil {
			return nil, fmt.Errorf("scan launch: %w", err)
		}
		launches = append(launches, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate launches: %w", err)
	}
	rows.Close()

	for _, l := range launches {
		if err := s.readLevels(ctx, l); err != nil {
			return nil, err
		}
	}
	return launches, nil
}

// readLevels fills the level slots of l from level_dims.
func (s *Store) readLevels(ctx context.Context, l *ir.Launch) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT level, x, y, z, static_mask
		FROM level_dims
		WHERE launch_id = ?
		ORDER BY depth ASC
	`, l.ID)
	if err != nil {
		return fmt.Errorf("query levels of %s: %w", l.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name    string
			x, y, z uint32
			mask    int
		)
		if err := rows.Scan(&name, &x, &y, &z, &mask); err != nil {
			return fmt.Errorf("scan level of %s: %w", l.ID, err)
		}
		kind, err := level.ParseKind(name)
		if err != nil {
			return fmt.Errorf("level of %s: %w", l.ID, err)
		}
		if err := l.SetLevel(kind, extentsFromRow(x, y, z, mask)); err != nil {
			return fmt.Errorf("level of %s: %w", l.ID, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate levels of %s: %w", l.ID, err)
	}
	return nil
}
