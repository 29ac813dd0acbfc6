package store

import (
	"context"
	"time"
)

// Setting is the site settings singleton row.
type Setting struct {
	ID           string
	ShowProjects bool
	UpdatedAt    time.Time
}

const settingColumns = `id, show_projects, updated_at`

func scanSetting(row interface{ Scan(...any) error }) (Setting, error) {
	var s Setting
	err := row.Scan(&s.ID, &s.ShowProjects, &s.UpdatedAt)
	return s, err
}

// GetSetting returns the settings row with the given id.
func (q *Queries) GetSetting(ctx context.Context, id string) (Setting, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+settingColumns+` FROM settings WHERE id = ?`, id)
	return scanSetting(row)
}

// UpsertSettingParams holds the fields for creating or updating settings.
type UpsertSettingParams struct {
	ID           string
	ShowProjects bool
	UpdatedAt    time.Time
}

// UpsertSetting creates the settings row if absent, otherwise updates it.
// The singleton never returns to the absent state.
func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) (Setting, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO settings (id, show_projects, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			show_projects = excluded.show_projects,
			updated_at = excluded.updated_at
		RETURNING `+settingColumns,
		arg.ID, arg.ShowProjects, arg.UpdatedAt,
	)
	return scanSetting(row)
}
