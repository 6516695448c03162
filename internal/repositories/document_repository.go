package repositories

import (
	"context"
	"fmt"
	"strings"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository stores the append-only log of generated proposal PDFs.
// Rows are keyed by the proposal number string so the history survives a
// proposal being renumbered or deleted.
type DocumentRepository struct {
	DB *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *models.ProposalDocument) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO proposal_documents(proposalno, doc_link, created_by)
         VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		d.ProposalNo, d.DocLink, d.CreatedBy,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *DocumentRepository) List(ctx context.Context, params models.ListParams, proposalNo string) ([]*models.ProposalDocument, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if proposalNo != "" {
		conditions = append(conditions, fmt.Sprintf("proposalno = $%d", argNum))
		args = append(args, proposalNo)
		argNum++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(proposalno ILIKE $%d OR created_by ILIKE $%d)", argNum, argNum))
		args = append(args, "%"+params.Search+"%")
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM proposal_documents %s`, whereClause)
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, proposalno, doc_link, COALESCE(created_by, '') as created_by, created_at, updated_at
		FROM proposal_documents
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

	var docs []*models.ProposalDocument
	for rows.Next() {
		var d models.ProposalDocument
		err := rows.Scan(&d.ID, &d.ProposalNo, &d.DocLink, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, &d)
	}
	return docs, total, nil
}
