package repository

import (
	"context"
	"database/sql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"job-dashboard/entities"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, callback func(ctx context.Context) error, opts ...*sql.TxOptions) error
	GetDB(ctx context.Context) *gorm.DB

	FindJobById(ctx context.Context, id uint) (*entities.Job, error)
	FindJobForUpdate(ctx context.Context, id uint) (*entities.Job, error)
	FindJobDetail(ctx context.Context, id uint) (*entities.Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]*entities.Job, int64, error)
	CreateJob(ctx context.Context, job *entities.Job) error
	UpdateJobFields(ctx context.Context, id uint, updates map[string]interface{}) error
	UpdateJobStatus(ctx context.Context, id uint, statusId uint, finishedAt *time.Time) error
	SoftDeleteJob(ctx context.Context, id uint) error
	LastJobNumber(ctx context.Context, prefix string) (string, error)

	GetJobMemberIds(ctx context.Context, jobId uint) ([]uint, error)
	AddJobMembers(ctx context.Context, jobId uint, userIds []uint) error
	RemoveJobMember(ctx context.Context, jobId uint, userId uint) (bool, error)

	ListJobStatuses(ctx context.Context) ([]*entities.JobStatus, error)

	CreateActivityLog(ctx context.Context, log *entities.JobActivityLog) error
	ListActivityLogs(ctx context.Context, jobId uint) ([]*entities.JobActivityLog, error)

	FindUsersByIds(ctx context.Context, ids []uint) ([]*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	ListDepartments(ctx context.Context) ([]*entities.Department, error)
	ListJobTitles(ctx context.Context) ([]*entities.JobTitle, error)
	ListJobTypes(ctx context.Context) ([]*entities.JobType, error)
	FindJobTypeById(ctx context.Context, id uint) (*entities.JobType, error)
	ListPaymentChannels(ctx context.Context) ([]*entities.PaymentChannel, error)
	FindPaymentChannelById(ctx context.Context, id uint) (*entities.PaymentChannel, error)

	CreateComment(ctx context.Context, comment *entities.Comment) error
	ListComments(ctx context.Context, jobId uint) ([]*entities.Comment, error)

	CreateNotification(ctx context.Context, notification *entities.Notification, userIds []uint) (bool, error)
	ListUserNotifications(ctx context.Context, userId uint, unreadOnly bool) ([]*entities.UserNotification, error)
	MarkNotificationRead(ctx context.Context, userId uint, id uint, at time.Time) error

	FindUserPreference(ctx context.Context, userId uint) (*entities.UserPreference, error)
	CreateUserPreference(ctx context.Context, pref *entities.UserPreference) (bool, error)
	UpdateUserPreference(ctx context.Context, pref *entities.UserPreference, fromVersion int) (bool, error)
}

type repo struct {
	db *gorm.DB
}

type txKey struct{}

// Open wraps an already opened postgres connection pool in gorm.
func Open(db *sql.DB, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return gorm.Open(postgres.New(postgres.Config{
		Conn: db}),
		&gorm.Config{
			Logger:         logger.Default.LogMode(level),
			TranslateError: true,
		},
	)
}

func NewRepo(db *gorm.DB) (Repository, error) {
	if err := setupJoinTables(db); err != nil {
		return nil, err
	}
	return &repo{
		db: db,
	}, nil
}

func setupJoinTables(db *gorm.DB) error {
	return db.SetupJoinTable(&entities.Job{}, "Assignees", &entities.JobAssignee{})
}

// GetDB returns the transaction bound to ctx, or the root handle.
func (r *repo) GetDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Transaction runs callback inside one database transaction. Repository calls
// made with the ctx handed to callback join that transaction; a nested call
// becomes a savepoint.
func (r *repo) Transaction(ctx context.Context, callback func(ctx context.Context) error, opts ...*sql.TxOptions) error {
	return r.GetDB(ctx).Transaction(func(tx *gorm.DB) error {
		return callback(context.WithValue(ctx, txKey{}, tx))
	}, opts...)
}
