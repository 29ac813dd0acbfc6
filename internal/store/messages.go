package store

import (
	"context"
	"time"
)

// Message is a contact-form lead.
type Message struct {
	ID          string
	Name        string
	Telegram    string
	ProjectType string
	Budget      string
	Description string
	Status      string
	Notes       string
	CreatedAt   time.Time
}

const messageColumns = `id, name, telegram, project_type, budget, description, status, notes, created_at`

func scanMessage(row interface{ Scan(...any) error }) (Message, error) {
	var m Message
	err := row.Scan(
		&m.ID, &m.Name, &m.Telegram, &m.ProjectType, &m.Budget,
		&m.Description, &m.Status, &m.Notes, &m.CreatedAt,
	)
	return m, err
}

// CreateMessageParams holds the fields for a new message.
type CreateMessageParams struct {
	ID          string
	Name        string
	Telegram    string
	ProjectType string
	Budget      string
	Description string
	Status      string
	Notes       string
	CreatedAt   time.Time
}

// CreateMessage inserts a new message.
func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+messageColumns,
		arg.ID, arg.Name, arg.Telegram, arg.ProjectType, arg.Budget,
		arg.Description, arg.Status, arg.Notes, arg.CreatedAt,
	)
	return scanMessage(row)
}

// GetMessageByID returns a single message.
func (q *Queries) GetMessageByID(ctx context.Context, id string) (Message, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	return scanMessage(row)
}

// ListMessages returns all messages, newest first. Ties on the timestamp
// fall back to insertion order.
func (q *Queries) ListMessages(ctx context.Context) ([]Message, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// UpdateMessageParams holds the mutable fields of a message.
type UpdateMessageParams struct {
	ID     string
	Status string
	Notes  string
}

// UpdateMessage updates status and notes of a message and returns the
// updated row. sql.ErrNoRows is returned when the id does not exist.
func (q *Queries) UpdateMessage(ctx context.Context, arg UpdateMessageParams) (Message, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE messages SET status = ?, notes = ?
		WHERE id = ?
		RETURNING `+messageColumns,
		arg.Status, arg.Notes, arg.ID,
	)
	return scanMessage(row)
}

// DeleteMessage removes a message. Deleting a nonexistent id is a no-op.
func (q *Queries) DeleteMessage(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	return err
}

// CountMessages returns the total number of messages.
func (q *Queries) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&count)
	return count, err
}
