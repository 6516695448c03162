package repositories

import (
	"context"

	"amc-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MailSetupRepository manages the single mail_setup row. Save replaces the
// existing row so there is never more than one configuration.
type MailSetupRepository struct {
	DB *pgxpool.Pool
}

func NewMailSetupRepository(db *pgxpool.Pool) *MailSetupRepository {
	return &MailSetupRepository{DB: db}
}

func (r *MailSetupRepository) Get(ctx context.Context) (*models.MailSetup, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, smtp_host, smtp_port, smtp_user, smtp_password, enable_ssl,
                COALESCE(sender_name, '') as sender_name, COALESCE(sender_email, '') as sender_email,
                created_at, updated_at
         FROM mail_setup ORDER BY id LIMIT 1`)

	var m models.MailSetup
	err := row.Scan(&m.ID, &m.SMTPHost, &m.SMTPPort, &m.SMTPUser, &m.SMTPPassword,
		&m.EnableSSL, &m.SenderName, &m.SenderEmail, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *MailSetupRepository) Save(ctx context.Context, m *models.MailSetup) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx, `SELECT id FROM mail_setup ORDER BY id LIMIT 1`).Scan(&id)
	if err == nil {
		err = tx.QueryRow(ctx,
			`UPDATE mail_setup
             SET smtp_host=$1, smtp_port=$2, smtp_user=$3, smtp_password=$4,
                 enable_ssl=$5, sender_name=$6, sender_email=$7, updated_at=CURRENT_TIMESTAMP
             WHERE id=$8
             RETURNING id, created_at, updated_at`,
			m.SMTPHost, m.SMTPPort, m.SMTPUser, m.SMTPPassword,
			m.EnableSSL, m.SenderName, m.SenderEmail, id,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	} else {
		err = tx.QueryRow(ctx,
			`INSERT INTO mail_setup(smtp_host, smtp_port, smtp_user, smtp_password,
                                    enable_ssl, sender_name, sender_email)
             VALUES($1, $2, $3, $4, $5, $6, $7)
             RETURNING id, created_at, updated_at`,
			m.SMTPHost, m.SMTPPort, m.SMTPUser, m.SMTPPassword,
			m.EnableSSL, m.SenderName, m.SenderEmail,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
