package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lexfile/lexfile/internal/domain"
)

// RecentFileAccesses returns the newest access log entries with the file
// reference number joined in. The log is append-only; newest-first is a
// derived ordering, not stored state.
func (r *Repo) RecentFileAccesses(ctx context.Context, limit int) ([]domain.AccessRow, error) {
	const sql = `
SELECT a.access_id, a.file_id, a.user_name, a.user_role, a.access_timestamp,
       a.access_type, COALESCE(a.ip_address, ''), COALESCE(a.user_agent, ''),
       COALESCE(f.reference_number, '')
FROM file_access_log a
LEFT JOIN physical_files f ON a.file_id = f.file_id
ORDER BY a.access_timestamp DESC
LIMIT $1`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("recent file accesses: %w", err)
	}
	defer rows.Close()

	var out []domain.AccessRow
	for rows.Next() {
		var a domain.AccessRow
		if err := rows.Scan(
			&a.AccessID, &a.FileID, &a.UserName, &a.UserRole, &a.AccessTimestamp,
			&a.AccessType, &a.IPAddress, &a.UserAgent, &a.ReferenceNumber,
		); err != nil {
			return nil, fmt.Errorf("scan file access: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file accesses: %w", err)
	}
	return out, nil
}

// LogFileAccess appends an access record and bumps the file's last_accessed
// timestamp. Returns the generated access id or domain.ErrNotFound when the
// file does not exist.
func (r *Repo) LogFileAccess(ctx context.Context, in domain.FileAccessInput) (string, error) {
	if in.UserName == "" {
		in.UserName = "Anonymous User"
	}
	if in.UserRole == "" {
		in.UserRole = "Visitor"
	}
	if in.AccessType == "" {
		in.AccessType = "view"
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT true FROM physical_files WHERE file_id = $1`, in.FileID,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("check file %s: %w", in.FileID, err)
	}

	accessID := uuid.NewString()
	_, err = r.db.Exec(ctx, `
INSERT INTO file_access_log
	(access_id, file_id, user_name, user_role, access_timestamp, access_type, ip_address, user_agent)
VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, $5, $6, $7)`,
		accessID, in.FileID, in.UserName, in.UserRole, in.AccessType, in.IPAddress, in.UserAgent,
	)
	if err != nil {
		return "", fmt.Errorf("insert file access: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`UPDATE physical_files SET last_accessed = CURRENT_TIMESTAMP WHERE file_id = $1`, in.FileID,
	)
	if err != nil {
		return "", fmt.Errorf("update last_accessed for %s: %w", in.FileID, err)
	}

	return accessID, nil
}
