package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

const scriptColumns = `id, ref, created_at, summary, intent, script, check_status, check_output`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScript(row rowScanner) (*Script, error) {
	sc := &Script{}
	err := row.Scan(
		&sc.ID, &sc.Ref, &sc.CreatedAt, &sc.Summary,
		&sc.Intent, &sc.Script, &sc.CheckStatus, &sc.CheckOutput,
	)
	return sc, err
}

// CreateScriptWithWarnings inserts a script and its warnings.
// It relies on the caller (Service layer) to wrap it in ExecTx for atomicity.
func (s *Store) CreateScriptWithWarnings(script Script, warnings []Warning) (int64, error) {
	stmtScript, err := s.db.Prepare(`
        INSERT INTO scripts (ref, created_at, summary, intent, script, check_status, check_output)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare script SQL: %w", err)
	}
	defer stmtScript.Close()

	var newID int64
	err = stmtScript.QueryRow(
		script.Ref, script.CreatedAt, script.Summary, script.Intent,
		script.Script, script.CheckStatus, script.CheckOutput,
	).Scan(&newID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateRef, script.Ref)
		}
		return 0, fmt.Errorf("failed to insert script: %w", err)
	}

	if len(warnings) == 0 {
		return newID, nil
	}

	stmtWarning, err := s.db.Prepare(`
        INSERT INTO script_warnings (script_id, posting_index, code, message)
        VALUES (?, ?, ?, ?);
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare warning SQL: %w", err)
	}
	defer stmtWarning.Close()

	for _, w := range warnings {
		if _, err := stmtWarning.Exec(newID, w.PostingIndex, w.Code, w.Message); err != nil {
			return 0, fmt.Errorf("failed to insert warning (posting %d): %w", w.PostingIndex, err)
		}
	}

	return newID, nil
}

func (s *Store) GetScriptByID(id int64) (*Script, error) {
	row := s.db.QueryRow(`SELECT `+scriptColumns+` FROM scripts WHERE id = ?`, id)

	sc, err := scanScript(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("script with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query script: %w", err)
	}
	return sc, nil
}

func (s *Store) GetScriptByRef(ref string) (*Script, error) {
	row := s.db.QueryRow(`SELECT `+scriptColumns+` FROM scripts WHERE ref = ?`, ref)

	sc, err := scanScript(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("script with ref %s: %w", ref, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query script: %w", err)
	}
	return sc, nil
}

// GetAllScripts returns the most recent scripts first. A limit <= 0 returns all of them.
func (s *Store) GetAllScripts(limit int) ([]*Script, error) {
	query := `SELECT ` + scriptColumns + ` FROM scripts ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scripts: %w", err)
	}
	defer rows.Close()

	var scripts []*Script
	for rows.Next() {
		sc, err := scanScript(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan script: %w", err)
		}
		scripts = append(scripts, sc)
	}

	return scripts, rows.Err()
}

func (s *Store) UpdateCheckStatus(id int64, status int, output string) error {
	res, err := s.db.Exec(`
        UPDATE scripts
        SET check_status = ?, check_output = ?
        WHERE id = ?
    `, status, output, id)
	if err != nil {
		return fmt.Errorf("failed to update check status: %w", err)
	}
	return requireAffected(res, id)
}

// DeleteScript removes a script; its warnings are removed by the foreign key cascade.
func (s *Store) DeleteScript(id int64) error {
	res, err := s.db.Exec(`DELETE FROM scripts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete script: %w", err)
	}
	return requireAffected(res, id)
}

func (s *Store) GetWarningsByScript(scriptID int64) ([]*Warning, error) {
	rows, err := s.db.Query(`
        SELECT id, script_id, posting_index, code, message
        FROM script_warnings
        WHERE script_id = ?
        ORDER BY id
    `, scriptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query warnings: %w", err)
	}
	defer rows.Close()

	var warnings []*Warning
	for rows.Next() {
		w := &Warning{}
		if err := rows.Scan(&w.ID, &w.ScriptID, &w.PostingIndex, &w.Code, &w.Message); err != nil {
			return nil, fmt.Errorf("failed to scan warning: %w", err)
		}
		warnings = append(warnings, w)
	}

	return warnings, rows.Err()
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("script with ID %d: %w", id, ErrRecordNotFound)
	}
	return nil
}
