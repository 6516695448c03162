package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EmailRecordRepository stores the append-only dispatch log. Failed sends are
// recorded too so the history shows every attempt.
type EmailRecordRepository struct {
	DB *pgxpool.Pool
}

func NewEmailRecordRepository(db *pgxpool.Pool) *EmailRecordRepository {
	return &EmailRecordRepository{DB: db}
}

func (r *EmailRecordRepository) Create(ctx context.Context, e *models.EmailRecord) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO email_records(proposalno, email, status, message, sent_by)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		e.ProposalNo, e.Email, e.Status, e.Message, e.SentBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EmailRecordRepository) List(ctx context.Context, params models.ListParams, proposalNo string) ([]*models.EmailRecord, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if proposalNo != "" {
		conditions = append(conditions, fmt.Sprintf("proposalno = $%d", argNum))
		args = append(args, proposalNo)
		argNum++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(proposalno ILIKE $%d OR email ILIKE $%d)", argNum, argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argNum))
		args = append(args, params.Status)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM email_records %s`, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, proposalno, email, status, COALESCE(message, '') as message,
			COALESCE(sent_by, '') as sent_by, created_at, updated_at
		FROM email_records
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argNum, argNum+1)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*models.EmailRecord
	for rows.Next() {
		var e models.EmailRecord
		err := rows.Scan(&e.ID, &e.ProposalNo, &e.Email, &e.Status, &e.Message,
			&e.SentBy, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, &e)
	}
	return records, total, nil
}
