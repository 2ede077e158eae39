package service

import (
	"context"
	"fmt"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/repository"
	"strings"
)

type CommentService interface {
	Create(ctx context.Context, actor dto.Actor, jobId uint, req dto.CreateCommentRequest) (*entities.Comment, error)
	List(ctx context.Context, jobId uint) ([]*entities.Comment, error)
}

type commentService struct {
	repo repository.Repository
}

func (s *commentService) Create(ctx context.Context, actor dto.Actor, jobId uint, req dto.CreateCommentRequest) (*entities.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment is empty", ErrInvalidInput)
	}
	if _, err := s.repo.FindJobById(ctx, jobId); err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}

	comment := &entities.Comment{
		JobID:    jobId,
		AuthorID: actor.ID,
		Content:  content,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) List(ctx context.Context, jobId uint) ([]*entities.Comment, error) {
	if _, err := s.repo.FindJobById(ctx, jobId); err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}
	return s.repo.ListComments(ctx, jobId)
}

func NewCommentService(repo repository.Repository) CommentService {
	return &commentService{repo: repo}
}
