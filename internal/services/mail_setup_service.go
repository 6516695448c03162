package services

import (
	"context"
	"errors"

	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
)

type MailSetupService struct {
	Repo *repositories.MailSetupRepository
}

func NewMailSetupService(repo *repositories.MailSetupRepository) *MailSetupService {
	return &MailSetupService{Repo: repo}
}

func (s *MailSetupService) Get(ctx context.Context) (*models.MailSetup, error) {
	return s.Repo.Get(ctx)
}

func (s *MailSetupService) Save(ctx context.Context, req *models.SaveMailSetupRequest) (*models.MailSetup, error) {
	if req.SMTPHost == "" {
		return nil, errors.New("smtphost is required")
	}
	port := req.SMTPPort
	if port <= 0 {
		port = 587
	}

	m := &models.MailSetup{
		SMTPHost:     req.SMTPHost,
		SMTPPort:     port,
		SMTPUser:     req.SMTPUser,
		SMTPPassword: req.SMTPPassword,
		EnableSSL:    req.EnableSSL,
		SenderName:   req.SenderName,
		SenderEmail:  req.SenderEmail,
	}
	if err := s.Repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
