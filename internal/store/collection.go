package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/RitterHou/search-platform/internal/resource"
)

// Collection stores records of one kind as JSON documents
type Collection[T resource.Record] struct {
	s    *Store
	kind string
}

func NewCollection[T resource.Record](s *Store, kind string) *Collection[T] {
	return &Collection[T]{s: s, kind: kind}
}

// List returns every record of the kind in creation order
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.s.query(ctx, `SELECT name, body FROM resources WHERE kind = ? ORDER BY seq`, c.kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, err
		}
		var record T
		if err := json.Unmarshal([]byte(body), &record); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", c.kind, name, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (c *Collection[T]) Get(ctx context.Context, name string) (T, error) {
	var record T
	var body string
	err := c.s.queryRow(ctx, `SELECT body FROM resources WHERE kind = ? AND name = ?`, c.kind, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return record, fmt.Errorf("%s/%s: %w", c.kind, name, resource.ErrNotFound)
	}
	if err != nil {
		return record, fmt.Errorf("get %s/%s: %w", c.kind, name, err)
	}
	if err := json.Unmarshal([]byte(body), &record); err != nil {
		return record, fmt.Errorf("decode %s/%s: %w", c.kind, name, err)
	}
	return record, nil
}

func (c *Collection[T]) Create(ctx context.Context, record T) error {
	name := record.RecordName()
	if name == "" {
		return resource.ErrNameRequired
	}
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := c.s.exec(ctx,
		`INSERT INTO resources (kind, name, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (kind, name) DO NOTHING`,
		c.kind, name, string(body), now, now)
	if err != nil {
		return fmt.Errorf("create %s/%s: %w", c.kind, name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s/%s: %w", c.kind, name, resource.ErrAlreadyExists)
	}
	return nil
}

func (c *Collection[T]) Update(ctx context.Context, record T) error {
	name := record.RecordName()
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	res, err := c.s.exec(ctx, `UPDATE resources SET body = ?, updated_at = ? WHERE kind = ? AND name = ?`,
		string(body), time.Now().UTC(), c.kind, name)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", c.kind, name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s/%s: %w", c.kind, name, resource.ErrNotFound)
	}
	return nil
}

// Delete removes the named record. Deleting a missing record is not an error.
func (c *Collection[T]) Delete(ctx context.Context, name string) error {
	res, err := c.s.exec(ctx, `DELETE FROM resources WHERE kind = ? AND name = ?`, c.kind, name)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.kind, name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Printf("🗑️  %s/%s does not exist, nothing deleted", c.kind, name)
	}
	return nil
}
