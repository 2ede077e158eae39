package service

import (
	"context"
	"job-dashboard/entities"
	"job-dashboard/repository"
)

// LookupService serves the reference data the dashboard filters and forms
// are built from.
type LookupService interface {
	Users(ctx context.Context) ([]*entities.User, error)
	Departments(ctx context.Context) ([]*entities.Department, error)
	JobTitles(ctx context.Context) ([]*entities.JobTitle, error)
	JobTypes(ctx context.Context) ([]*entities.JobType, error)
	PaymentChannels(ctx context.Context) ([]*entities.PaymentChannel, error)
}

type lookupService struct {
	repo repository.Repository
}

func (s *lookupService) Users(ctx context.Context) ([]*entities.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *lookupService) Departments(ctx context.Context) ([]*entities.Department, error) {
	return s.repo.ListDepartments(ctx)
}

func (s *lookupService) JobTitles(ctx context.Context) ([]*entities.JobTitle, error) {
	return s.repo.ListJobTitles(ctx)
}

func (s *lookupService) JobTypes(ctx context.Context) ([]*entities.JobType, error) {
	return s.repo.ListJobTypes(ctx)
}

func (s *lookupService) PaymentChannels(ctx context.Context) ([]*entities.PaymentChannel, error) {
	return s.repo.ListPaymentChannels(ctx)
}

func NewLookupService(repo repository.Repository) LookupService {
	return &lookupService{repo: repo}
}
