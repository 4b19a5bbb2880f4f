package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
)

// sysParamsName is the row holding the system parameter document
const sysParamsName = "consts"

type sysParams struct {
	s *Store
}

// Get returns the system parameters, or an empty document if none were saved
func (p *sysParams) Get(ctx context.Context) (model.Object, error) {
	var body string
	err := p.s.queryRow(ctx, `SELECT body FROM resources WHERE kind = ? AND name = ?`,
		resource.KindSysParams, sysParamsName).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Object{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sysparams: %w", err)
	}
	params := model.Object{}
	if err := json.Unmarshal([]byte(body), &params); err != nil {
		return nil, fmt.Errorf("decode sysparams: %w", err)
	}
	return params, nil
}

func (p *sysParams) Put(ctx context.Context, params model.Object) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = p.s.exec(ctx,
		`INSERT INTO resources (kind, name, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (kind, name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		resource.KindSysParams, sysParamsName, string(body), now, now)
	if err != nil {
		return fmt.Errorf("put sysparams: %w", err)
	}
	return nil
}

type messages struct {
	s *Store
}

func (m *messages) List(ctx context.Context) ([]model.Message, error) {
	rows, err := m.s.query(ctx, `SELECT id, body, created_at FROM messages ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	msgs := []model.Message{}
	for rows.Next() {
		var msg model.Message
		var body string
		if err := rows.Scan(&msg.ID, &body, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(body), &msg.Payload); err != nil {
			return nil, fmt.Errorf("decode message %s: %w", msg.ID, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

// Send records a message with a fresh id
func (m *messages) Send(ctx context.Context, payload model.Object) (model.Message, error) {
	if payload == nil {
		payload = model.Object{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return model.Message{}, err
	}
	msg := model.Message{
		ID:        uuid.New().String(),
		Payload:   payload.Clone(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := m.s.exec(ctx, `INSERT INTO messages (id, body, created_at) VALUES (?, ?, ?)`,
		msg.ID, string(body), msg.CreatedAt); err != nil {
		return model.Message{}, fmt.Errorf("send message: %w", err)
	}
	return msg, nil
}
