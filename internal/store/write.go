package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/launchdims/internal/dims"
	"github.com/roach88/launchdims/internal/ir"
)

// SaveLaunch stores l and its level rows in one transaction.
//
// Saving is idempotent on content: if a launch with the same content hash
// exists, its id is returned with created == false and nothing is written.
// On return l.ID and l.Hash are set.
func (s *Store) SaveLaunch(ctx context.Context, l *ir.Launch) (id string, created bool, err error) {
	if l.Hash == "" {
		if l.Hash, err = ir.LaunchHash(l); err != nil {
			return "", false, fmt.Errorf("save launch: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("save launch: begin: %w", err)
	}
	defer tx.Rollback()

	id = s.ids.Generate()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO launches (id, content_hash, name, kernel, ir_version)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO NOTHING
	`, id, l.Hash, l.Name, l.Kernel, ir.IRVersion)
	if err != nil {
		return "", false, fmt.Errorf("save launch: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("save launch: %w", err)
	}
	if n == 0 {
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM launches WHERE content_hash = ?`, l.Hash,
		).Scan(&id); err != nil {
			return "", false, fmt.Errorf("save launch: lookup existing: %w", err)
		}
		l.ID = id
		slog.Debug("launch already stored", "id", id, "name", l.Name)
		return id, false, nil
	}

	for _, le := range l.Levels() {
		e := le.Extents
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO level_dims (launch_id, level, depth, x, y, z, static_mask)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, string(le.Level), le.Level.Depth(),
			e.X().Value(), e.Y().Value(), e.Z().Value(), staticMask(e),
		); err != nil {
			return "", false, fmt.Errorf("save launch: level %s: %w", le.Level, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("save launch: commit: %w", err)
	}

	l.ID = id
	slog.Debug("launch stored", "id", id, "name", l.Name, "levels", len(l.Levels()))
	return id, true, nil
}

// DeleteLaunch removes a launch and its level rows.
// Returns ErrNotFound if id is unknown.
func (s *Store) DeleteLaunch(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM launches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete launch %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete launch %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete launch %s: %w", id, ErrNotFound)
	}
	slog.Debug("launch deleted", "id", id)
	return nil
}

// staticMask packs the per-axis classification: bit 0 x, bit 1 y, bit 2 z.
func staticMask(e dims.Extents) int {
	mask := 0
	for i, id := range []dims.AxisID{dims.X, dims.Y, dims.Z} {
		if e.Axis(id).IsStatic() {
			mask |= 1 << i
		}
	}
	return mask
}

// extentsFromRow is the inverse of staticMask plus the stored values.
func extentsFromRow(x, y, z uint32, mask int) dims.Extents {
	axis := func(v uint32, bit int) dims.Axis {
		if mask&(1<<bit) != 0 {
			return dims.StaticAxis(v)
		}
		return dims.DynamicAxis(v)
	}
	return dims.NewExtents(axis(x, 0), axis(y, 1), axis(z, 2))
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
