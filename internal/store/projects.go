package store

import (
	"context"
	"time"
)

// Project is a showcase entry. Tags are stored as a JSON-encoded list so
// insertion order survives the round trip; model.EncodeTags/DecodeTags
// handle the conversion. Position drives the public display order (the
// API exposes it as "order").
type Project struct {
	ID        string
	TitleEn   string
	TitleRu   string
	DescEn    string
	DescRu    string
	DetailsEn string
	DetailsRu string
	Tags      string
	Price     string
	Link      string
	Visible   bool
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

const projectColumns = `id, title_en, title_ru, desc_en, desc_ru, details_en, details_ru,
	tags, price, link, visible, position, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.TitleEn, &p.TitleRu, &p.DescEn, &p.DescRu,
		&p.DetailsEn, &p.DetailsRu, &p.Tags, &p.Price, &p.Link,
		&p.Visible, &p.Position, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (q *Queries) listProjects(ctx context.Context, query string, args ...any) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateProjectParams holds the fields for a new project.
type CreateProjectParams struct {
	ID        string
	TitleEn   string
	TitleRu   string
	DescEn    string
	DescRu    string
	DetailsEn string
	DetailsRu string
	Tags      string
	Price     string
	Link      string
	Visible   bool
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateProject inserts a new project.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+projectColumns,
		arg.ID, arg.TitleEn, arg.TitleRu, arg.DescEn, arg.DescRu,
		arg.DetailsEn, arg.DetailsRu, arg.Tags, arg.Price, arg.Link,
		arg.Visible, arg.Position, arg.CreatedAt, arg.UpdatedAt,
	)
	return scanProject(row)
}

// GetProjectByID returns a single project.
func (q *Queries) GetProjectByID(ctx context.Context, id string) (Project, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// ListProjects returns all projects ordered by position ascending.
// Position is neither unique nor contiguous; ties break by storage order.
func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	return q.listProjects(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY position ASC, rowid ASC`)
}

// ListVisibleProjects returns visible projects ordered by position ascending.
func (q *Queries) ListVisibleProjects(ctx context.Context) ([]Project, error) {
	return q.listProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE visible = 1 ORDER BY position ASC, rowid ASC`)
}

// UpdateProjectParams holds the full mutable field set of a project.
// Handlers merge a partial patch onto the current row before calling this,
// so unsupplied fields keep their values (last write wins under
// concurrent edits).
type UpdateProjectParams struct {
	ID        string
	TitleEn   string
	TitleRu   string
	DescEn    string
	DescRu    string
	DetailsEn string
	DetailsRu string
	Tags      string
	Price     string
	Link      string
	Visible   bool
	Position  int64
	UpdatedAt time.Time
}

// UpdateProject updates a project and returns the updated row.
// sql.ErrNoRows is returned when the id does not exist.
func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (Project, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE projects SET
			title_en = ?, title_ru = ?, desc_en = ?, desc_ru = ?,
			details_en = ?, details_ru = ?, tags = ?, price = ?, link = ?,
			visible = ?, position = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+projectColumns,
		arg.TitleEn, arg.TitleRu, arg.DescEn, arg.DescRu,
		arg.DetailsEn, arg.DetailsRu, arg.Tags, arg.Price, arg.Link,
		arg.Visible, arg.Position, arg.UpdatedAt, arg.ID,
	)
	return scanProject(row)
}

// DeleteProject removes a project. Deleting a nonexistent id is a no-op.
func (q *Queries) DeleteProject(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

// CountProjects returns the total number of projects.
func (q *Queries) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}
