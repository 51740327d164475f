package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Agent is a known agent endpoint recorded by discovery or by the user.
type Agent struct {
	ID        string
	Address   string
	Transport string
	TokenPath string
	LastSeen  string
	UpdatedAt string
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgent(scanner rowScanner) (Agent, error) {
	var (
		agent     Agent
		tokenPath sql.NullString
		lastSeen  sql.NullString
	)
	err := scanner.Scan(
		&agent.ID,
		&agent.Address,
		&agent.Transport,
		&tokenPath,
		&lastSeen,
		&agent.UpdatedAt,
	)
	if tokenPath.Valid {
		agent.TokenPath = tokenPath.String
	}
	if lastSeen.Valid {
		agent.LastSeen = lastSeen.String
	}
	return agent, err
}

// GetAgent returns the saved endpoint for the given agent id.
func (s *Store) GetAgent(ctx context.Context, id string) (Agent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, address, transport, token_path, last_seen, updated_at
		FROM agents WHERE id = ?
	`, id)

	agent, err := scanAgent(row)
	if err == sql.ErrNoRows {
		return Agent{}, NotFoundError{Entity: "agent", Key: id}
	}
	if err != nil {
		return Agent{}, fmt.Errorf("config: get agent %q: %w", id, err)
	}
	return agent, nil
}

// ListAgents returns all known agents ordered by id.
func (s *Store) ListAgents(ctx context.Context) ([]Agent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, address, transport, token_path, last_seen, updated_at
		FROM agents ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("config: list agents: %w", err)
	}
	defer rows.Close()

	var result []Agent
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("config: scan agent row: %w", err)
		}
		result = append(result, agent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("config: iterate agent rows: %w", err)
	}
	return result, nil
}

// SaveAgent upserts an agent endpoint.
func (s *Store) SaveAgent(ctx context.Context, agent Agent) error {
	if s.readOnly {
		return fmt.Errorf("config: save agent: store opened read-only")
	}
	if agent.ID == "" {
		return fmt.Errorf("config: save agent: id is required")
	}
	if agent.Transport == "" {
		agent.Transport = "unix"
	}

	var tokenPath any
	if agent.TokenPath != "" {
		tokenPath = agent.TokenPath
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO agents (id, address, transport, token_path, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			address = excluded.address,
			transport = excluded.transport,
			token_path = excluded.token_path,
			updated_at = CURRENT_TIMESTAMP
	`, agent.ID, agent.Address, agent.Transport, tokenPath); err != nil {
		return fmt.Errorf("config: save agent %q: %w", agent.ID, err)
	}
	return nil
}

// TouchAgent updates the last_seen timestamp after a successful health check.
func (s *Store) TouchAgent(ctx context.Context, id string) error {
	if s.readOnly {
		return fmt.Errorf("config: touch agent: store opened read-only")
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE agents SET last_seen = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("config: touch agent %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return NotFoundError{Entity: "agent", Key: id}
	}
	return nil
}

// DeleteAgent removes an agent endpoint. Deleting an unknown id is an error
// so callers can distinguish typos from successful removal.
func (s *Store) DeleteAgent(ctx context.Context, id string) error {
	if s.readOnly {
		return fmt.Errorf("config: delete agent: store opened read-only")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM agents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("config: delete agent %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return NotFoundError{Entity: "agent", Key: id}
	}
	return nil
}
