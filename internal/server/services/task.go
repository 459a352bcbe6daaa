package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/repomanager"
)

const maxTitleLength = 255

// TaskService enforces task ownership: every mutation first resolves the
// target row, confirms it belongs to the caller, and only then applies the
// change, all inside a single transaction. Existence is checked before
// ownership, so callers can distinguish ErrorNotFound from ErrorForbidden.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return common.ErrorValidation
	}
	if len(title) > maxTitleLength {
		return common.ErrorValidation
	}
	return nil
}

// List returns all tasks owned by userID, newest-created first. The owner
// filter in the query is the enforcement; no per-row check is needed.
func (s *TaskService) List(ctx context.Context, userID int64) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	result, err := repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// Create persists a new task owned by userID and returns the stored record
// with its assigned identifier.
func (s *TaskService) Create(ctx context.Context, userID int64, title string, description *string) (*models.Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   false,
	}

	repo := s.repomanager.Tasks(s.db)
	created, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return created, nil
}

// Update applies the supplied fields to the task, leaving absent fields
// unchanged. The load, ownership check, and write run under one transaction
// with the row locked, so concurrent updates of the same task serialize
// instead of silently losing writes.
func (s *TaskService) Update(ctx context.Context, userID int64, taskID int64, upd models.TaskUpdate) (*models.Task, error) {
	if upd.Title != nil {
		if err := validateTitle(*upd.Title); err != nil {
			return nil, err
		}
	}

	var result *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Tasks(tx)

		task, err := repoTx.GetByIDForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		if task.UserID != userID {
			return common.ErrorForbidden
		}

		if upd.Title != nil {
			task.Title = *upd.Title
		}
		if upd.Description != nil {
			task.Description = upd.Description
		}
		if upd.Completed != nil {
			task.Completed = *upd.Completed
		}

		result, err = repoTx.Update(ctx, task)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorForbidden) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}
	return result, nil
}

// Delete removes the task permanently after the same existence-then-ownership
// sequence as Update.
func (s *TaskService) Delete(ctx context.Context, userID int64, taskID int64) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Tasks(tx)

		task, err := repoTx.GetByIDForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		if task.UserID != userID {
			return common.ErrorForbidden
		}

		return repoTx.Delete(ctx, taskID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorForbidden) {
			return err
		}
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}
