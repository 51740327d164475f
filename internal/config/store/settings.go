package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// LoadSettings returns key/value settings. Optional keys limit the selection
// to specific entries.
func (s *Store) LoadSettings(ctx context.Context, keys ...string) (map[string]string, error) {
	query := `SELECT key, value FROM settings`
	var args []any

	if len(keys) > 0 {
		placeholders := strings.TrimRight(strings.Repeat("?,", len(keys)), ",")
		query += fmt.Sprintf(" WHERE key IN (%s)", placeholders)
		for _, key := range keys {
			args = append(args, key)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("config: load settings: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("config: scan settings row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("config: iterate settings rows: %w", err)
	}

	return result, nil
}

// GetSetting returns a single setting value, or a NotFoundError when the key
// has never been saved.
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", NotFoundError{Entity: "setting", Key: key}
	}
	if err != nil {
		return "", fmt.Errorf("config: get setting %q: %w", key, err)
	}
	return value, nil
}

// SaveSettings upserts the provided key/value pairs.
func (s *Store) SaveSettings(ctx context.Context, values map[string]string) error {
	if s.readOnly {
		return fmt.Errorf("config: save settings: store opened read-only")
	}
	if len(values) == 0 {
		return nil
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
            INSERT INTO settings (key, value, updated_at)
            VALUES (?, ?, CURRENT_TIMESTAMP)
            ON CONFLICT(key) DO UPDATE SET
                value = excluded.value,
                updated_at = CURRENT_TIMESTAMP
        `)
		if err != nil {
			return fmt.Errorf("config: prepare save settings: %w", err)
		}
		defer stmt.Close()

		for key, value := range values {
			if _, err := stmt.ExecContext(ctx, key, value); err != nil {
				return fmt.Errorf("config: exec save setting %q: %w", key, err)
			}
		}
		return nil
	})
}

// DeleteSettings removes the provided keys. Missing keys are ignored.
func (s *Store) DeleteSettings(ctx context.Context, keys ...string) error {
	if s.readOnly {
		return fmt.Errorf("config: delete settings: store opened read-only")
	}
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.TrimRight(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, 0, len(keys))
	for _, key := range keys {
		args = append(args, key)
	}

	if _, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM settings WHERE key IN (%s)`, placeholders), args...); err != nil {
		return fmt.Errorf("config: delete settings: %w", err)
	}
	return nil
}
