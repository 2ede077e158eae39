package repository

import (
	"context"
	"job-dashboard/entities"
)

func (r *repo) FindUsersByIds(ctx context.Context, ids []uint) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	err := r.GetDB(ctx).Where("id IN ?", ids).Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repo) ListUsers(ctx context.Context) ([]*entities.User, error) {
	users := make([]*entities.User, 0)
	err := r.GetDB(ctx).
		Preload("Department").
		Preload("JobTitle").
		Where("is_active = ?", true).
		Order("display_name ASC").
		Find(&users).Error
	return users, err
}

func (r *repo) ListDepartments(ctx context.Context) ([]*entities.Department, error) {
	departments := make([]*entities.Department, 0)
	err := r.GetDB(ctx).Order("name ASC").Find(&departments).Error
	return departments, err
}

func (r *repo) ListJobTitles(ctx context.Context) ([]*entities.JobTitle, error) {
	titles := make([]*entities.JobTitle, 0)
	err := r.GetDB(ctx).Order("name ASC").Find(&titles).Error
	return titles, err
}

func (r *repo) ListJobTypes(ctx context.Context) ([]*entities.JobType, error) {
	types := make([]*entities.JobType, 0)
	err := r.GetDB(ctx).Order("code ASC").Find(&types).Error
	return types, err
}

func (r *repo) FindJobTypeById(ctx context.Context, id uint) (*entities.JobType, error) {
	jobType := &entities.JobType{}
	if err := r.GetDB(ctx).First(jobType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return jobType, nil
}

func (r *repo) ListPaymentChannels(ctx context.Context) ([]*entities.PaymentChannel, error) {
	channels := make([]*entities.PaymentChannel, 0)
	err := r.GetDB(ctx).Where("is_active = ?", true).Order("name ASC").Find(&channels).Error
	return channels, err
}

func (r *repo) FindPaymentChannelById(ctx context.Context, id uint) (*entities.PaymentChannel, error) {
	channel := &entities.PaymentChannel{}
	if err := r.GetDB(ctx).First(channel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return channel, nil
}
