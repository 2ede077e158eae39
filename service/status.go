package service

import (
	"context"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/repository"
)

type StatusService interface {
	Graph(ctx context.Context) (*StatusGraph, error)
	List(ctx context.Context) ([]*entities.JobStatus, error)
	Transitions(ctx context.Context, statusId uint) (*dto.StatusTransitions, error)
}

type statusService struct {
	repo   repository.Repository
	signer ThumbnailSigner
}

func (s *statusService) Graph(ctx context.Context) (*StatusGraph, error) {
	statuses, err := s.repo.ListJobStatuses(ctx)
	if err != nil {
		return nil, err
	}
	return NewStatusGraph(statuses)
}

func (s *statusService) List(ctx context.Context) ([]*entities.JobStatus, error) {
	graph, err := s.Graph(ctx)
	if err != nil {
		return nil, err
	}
	return graph.Statuses(), nil
}

// Transitions tells the client which forward/backward buttons to draw for a
// job sitting in statusId.
func (s *statusService) Transitions(ctx context.Context, statusId uint) (*dto.StatusTransitions, error) {
	graph, err := s.Graph(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := graph.Get(statusId)
	if !ok {
		return nil, ErrStatusNotFound
	}
	return &dto.StatusTransitions{
		Current:  *statusSummary(ctx, s.signer, current),
		Forward:  statusSummary(ctx, s.signer, graph.Next(statusId)),
		Backward: statusSummary(ctx, s.signer, graph.Prev(statusId)),
	}, nil
}

func NewStatusService(repo repository.Repository, signer ThumbnailSigner) StatusService {
	return &statusService{
		repo:   repo,
		signer: signer,
	}
}
