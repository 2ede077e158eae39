package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"job-dashboard/config"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/repository"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// createAttempts bounds retries when a concurrent create took the same number.
	createAttempts = 3
)

type JobService interface {
	Create(ctx context.Context, actor dto.Actor, req dto.CreateJobRequest) (*entities.Job, error)
	Get(ctx context.Context, id uint) (*entities.Job, error)
	List(ctx context.Context, query dto.JobListQuery) (*dto.Page[*entities.Job], error)
	Update(ctx context.Context, actor dto.Actor, id uint, req dto.UpdateJobRequest) (*entities.Job, error)
	Delete(ctx context.Context, actor dto.Actor, id uint) error

	ChangeStatus(ctx context.Context, actor dto.Actor, id uint, req dto.ChangeStatusRequest) (*entities.Job, error)
	AssignMembers(ctx context.Context, actor dto.Actor, id uint, req dto.AssignMemberRequest) (*entities.Job, error)
	UnassignMember(ctx context.Context, actor dto.Actor, id uint, userId uint) (*entities.Job, error)
	ActivityLog(ctx context.Context, id uint) ([]dto.ActivityLogEntry, error)
}

type jobService struct {
	repo      repository.Repository
	publisher EventPublisher
	signer    ThumbnailSigner
	cfg       config.Jobs
	now       func() time.Time
}

func (s *jobService) Create(ctx context.Context, actor dto.Actor, req dto.CreateJobRequest) (*entities.Job, error) {
	priority := req.Priority
	if priority == "" {
		priority = constant.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, priority)
	}

	job := &entities.Job{
		TypeID:           req.TypeId,
		DisplayName:      req.DisplayName,
		ClientName:       req.ClientName,
		Income:           req.Income,
		StaffCost:        req.StaffCost,
		PaymentChannelID: req.PaymentChannelId,
		Priority:         priority,
		DueAt:            req.DueAt,
		IsPublished:      req.IsPublished,
		CreatedByID:      actor.ID,
	}

	var err error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		job.ID = 0
		err = s.createJob(ctx, actor, req, job)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		zerolog.Ctx(ctx).Warn().Int("attempt", attempt).Str("job_no", job.No).Msg("job number taken, retrying")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = fmt.Errorf("%w: %s after %d attempts", ErrJobNumberConflict, job.No, createAttempts)
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Uint("job_id", job.ID).Str("job_no", job.No).Msg("job created")
	publishEvent(ctx, s.publisher, constant.EventJobCreated, job, actor, "", job.No)
	return s.repo.FindJobDetail(ctx, job.ID)
}

func (s *jobService) createJob(ctx context.Context, actor dto.Actor, req dto.CreateJobRequest, job *entities.Job) error {
	return s.repo.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, req.TypeId, req.PaymentChannelId); err != nil {
			return err
		}

		statuses, err := s.repo.ListJobStatuses(ctx)
		if err != nil {
			return err
		}
		graph, err := NewStatusGraph(statuses)
		if err != nil {
			return err
		}
		head, ok := graph.Head()
		if !ok {
			return fmt.Errorf("%w: no initial status configured", ErrStatusNotFound)
		}
		job.StatusID = head.ID

		no, err := s.nextJobNumber(ctx)
		if err != nil {
			return err
		}
		job.No = no

		if err := s.repo.CreateJob(ctx, job); err != nil {
			return err
		}

		memberIds := req.MemberIds.Normalize()
		if len(memberIds) > 0 {
			if err := s.ensureUsers(ctx, memberIds); err != nil {
				return err
			}
			if err := s.repo.AddJobMembers(ctx, job.ID, memberIds); err != nil {
				return err
			}
		}

		return s.repo.CreateActivityLog(ctx, &entities.JobActivityLog{
			JobID:        job.ID,
			FieldName:    constant.FieldNameJob,
			ActivityType: constant.ActivityTypeCreate,
			CurrentValue: job.No,
			ModifiedByID: actor.ID,
			ModifiedAt:   s.now(),
		})
	})
}

// nextJobNumber builds <prefix><year>-<seq>, seq following the highest number
// of the year including deleted jobs.
func (s *jobService) nextJobNumber(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("%s%d-", s.cfg.NumberPrefix, s.now().Year())
	last, err := s.repo.LastJobNumber(ctx, prefix)
	if err != nil {
		return "", err
	}
	seq := 0
	if last != "" {
		seq, err = strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("unexpected job number %q: %w", last, err)
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}

func (s *jobService) checkReferences(ctx context.Context, typeId, paymentChannelId *uint) error {
	if typeId != nil {
		if _, err := s.repo.FindJobTypeById(ctx, *typeId); err != nil {
			return notFound(err, fmt.Errorf("%w: job type %d does not exist", ErrInvalidInput, *typeId))
		}
	}
	if paymentChannelId != nil {
		if _, err := s.repo.FindPaymentChannelById(ctx, *paymentChannelId); err != nil {
			return notFound(err, fmt.Errorf("%w: payment channel %d does not exist", ErrInvalidInput, *paymentChannelId))
		}
	}
	return nil
}

func (s *jobService) ensureUsers(ctx context.Context, ids []uint) error {
	users, err := s.repo.FindUsersByIds(ctx, ids)
	if err != nil {
		return err
	}
	if len(users) == len(ids) {
		return nil
	}
	found := make(map[uint]struct{}, len(users))
	for _, user := range users {
		found[user.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUserNotFound, id)
		}
	}
	return nil
}

func (s *jobService) Get(ctx context.Context, id uint) (*entities.Job, error) {
	job, err := s.repo.FindJobDetail(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context, query dto.JobListQuery) (*dto.Page[*entities.Job], error) {
	if query.Priority != "" && !query.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, query.Priority)
	}
	sortFields, err := ParseSort(query.Sort)
	if err != nil {
		return nil, err
	}
	if len(sortFields) == 0 {
		sortFields = DefaultJobSort()
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	jobs, total, err := s.repo.ListJobs(ctx, repository.JobFilter{
		Search:           query.Search,
		StatusId:         query.StatusId,
		TypeId:           query.TypeId,
		AssigneeId:       query.AssigneeId,
		PaymentChannelId: query.PaymentChannelId,
		Priority:         query.Priority,
		HideFinished:     query.HideFinished,
		Pinned:           query.Pinned,
		Sort:             sortFields,
		Offset:           (page - 1) * limit,
		Limit:            limit,
	})
	if err != nil {
		return nil, err
	}

	return &dto.Page[*entities.Job]{
		Items: jobs,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

type fieldChange struct {
	field    string
	column   string
	previous string
	current  string
	value    interface{}
}

func (s *jobService) Update(ctx context.Context, actor dto.Actor, id uint, req dto.UpdateJobRequest) (*entities.Job, error) {
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *req.Priority)
	}
	if req.DisplayName != nil && *req.DisplayName == "" {
		return nil, fmt.Errorf("%w: displayName must not be empty", ErrInvalidInput)
	}

	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		job, err := s.repo.FindJobForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrJobNotFound)
		}
		if err := s.checkReferences(ctx, req.TypeId, req.PaymentChannelId); err != nil {
			return err
		}

		changes := diffJob(job, req)
		if len(changes) == 0 {
			return nil
		}

		updates := make(map[string]interface{}, len(changes))
		for _, change := range changes {
			updates[change.column] = change.value
		}
		if err := s.repo.UpdateJobFields(ctx, id, updates); err != nil {
			return err
		}

		now := s.now()
		for _, change := range changes {
			err := s.repo.CreateActivityLog(ctx, &entities.JobActivityLog{
				JobID:         id,
				FieldName:     change.field,
				ActivityType:  constant.ActivityTypeUpdateInfo,
				PreviousValue: change.previous,
				CurrentValue:  change.current,
				ModifiedByID:  actor.ID,
				ModifiedAt:    now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindJobDetail(ctx, id)
}

func diffJob(job *entities.Job, req dto.UpdateJobRequest) []fieldChange {
	var changes []fieldChange
	add := func(field, column, previous, current string, value interface{}) {
		if previous != current {
			changes = append(changes, fieldChange{field: field, column: column, previous: previous, current: current, value: value})
		}
	}

	if req.TypeId != nil {
		add("Type", "type_id", formatUintPtr(job.TypeID), formatUintPtr(req.TypeId), *req.TypeId)
	}
	if req.DisplayName != nil {
		add("DisplayName", "display_name", job.DisplayName, *req.DisplayName, *req.DisplayName)
	}
	if req.ClientName != nil {
		add("ClientName", "client_name", job.ClientName, *req.ClientName, *req.ClientName)
	}
	if req.Income != nil {
		add("Income", "income", formatMoney(job.Income), formatMoney(*req.Income), *req.Income)
	}
	if req.StaffCost != nil {
		add("StaffCost", "staff_cost", formatMoney(job.StaffCost), formatMoney(*req.StaffCost), *req.StaffCost)
	}
	if req.PaymentChannelId != nil {
		add("PaymentChannel", "payment_channel_id", formatUintPtr(job.PaymentChannelID), formatUintPtr(req.PaymentChannelId), *req.PaymentChannelId)
	}
	if req.Priority != nil {
		add("Priority", "priority", string(job.Priority), string(*req.Priority), *req.Priority)
	}
	if req.DueAt != nil {
		add("DueAt", "due_at", formatTimePtr(job.DueAt), formatTimePtr(req.DueAt), *req.DueAt)
	}
	if req.CompletedAt != nil {
		add("CompletedAt", "completed_at", formatTimePtr(job.CompletedAt), formatTimePtr(req.CompletedAt), *req.CompletedAt)
	}
	if req.IsPinned != nil {
		add("IsPinned", "is_pinned", strconv.FormatBool(job.IsPinned), strconv.FormatBool(*req.IsPinned), *req.IsPinned)
	}
	if req.IsPublished != nil {
		add("IsPublished", "is_published", strconv.FormatBool(job.IsPublished), strconv.FormatBool(*req.IsPublished), *req.IsPublished)
	}
	if req.IsPaid != nil {
		add("IsPaid", "is_paid", strconv.FormatBool(job.IsPaid), strconv.FormatBool(*req.IsPaid), *req.IsPaid)
	}
	return changes
}

func formatUintPtr(v *uint) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *jobService) Delete(ctx context.Context, actor dto.Actor, id uint) error {
	if !actor.Role.CanDeleteJob() {
		return ErrForbidden
	}
	if err := s.repo.SoftDeleteJob(ctx, id); err != nil {
		return notFound(err, ErrJobNotFound)
	}
	zerolog.Ctx(ctx).Info().Uint("job_id", id).Uint("actor_id", actor.ID).Msg("job soft-deleted")
	return nil
}

func NewJobService(repo repository.Repository, publisher EventPublisher, signer ThumbnailSigner, cfg config.Jobs) JobService {
	return &jobService{
		repo:      repo,
		publisher: publisher,
		signer:    signer,
		cfg:       cfg,
		now:       time.Now,
	}
}
