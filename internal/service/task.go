package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/store"
)

// TaskService owns the nested task tree. Every operation is scoped to the
// calling user; a task belonging to someone else behaves exactly like a
// missing task.
type TaskService struct {
	Store store.Store
}

// List returns the caller's tasks as a forest. Roots are ordered newest
// first, children within a parent are ordered by creation (ascending id).
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	flat, err := s.Store.Tasks().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return buildTree(flat), nil
}

// Create validates the text, checks parent ownership when nesting, and
// inserts the task. A parent owned by another user reads as not found so the
// endpoint leaks nothing about other tenants' ids.
func (s *TaskService) Create(ctx context.Context, ownerID int64, text string, parentID *int64) (domain.Task, error) {
	text, err := validateTaskText(text)
	if err != nil {
		return domain.Task{}, err
	}

	if parentID != nil {
		if _, err := s.Store.Tasks().GetTask(ctx, *parentID, ownerID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Task{}, domain.ErrTaskNotFound
			}
			return domain.Task{}, fmt.Errorf("failed to load parent task: %w", err)
		}
	}

	task, err := s.Store.Tasks().CreateTask(ctx, domain.Task{
		Text:     text,
		ParentID: parentID,
		OwnerID:  ownerID,
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update applies a partial patch. Setting done cascades the new value to the
// whole subtree in a single transaction, so readers never observe a
// half-toggled tree.
func (s *TaskService) Update(ctx context.Context, ownerID, id int64, patch domain.TaskPatch) (domain.Task, error) {
	if patch.Text != nil {
		text, err := validateTaskText(*patch.Text)
		if err != nil {
			return domain.Task{}, err
		}
		patch.Text = &text
	}

	var updated domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if patch.Text != nil {
			textOnly := domain.TaskPatch{Text: patch.Text}
			if _, err := tx.Tasks().UpdateTask(ctx, id, ownerID, textOnly); err != nil {
				return err
			}
		}
		if patch.Done != nil {
			if err := tx.Tasks().SetSubtreeDone(ctx, id, ownerID, *patch.Done); err != nil {
				return err
			}
		}

		var err error
		updated, err = tx.Tasks().GetTask(ctx, id, ownerID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete removes the task; descendants go with it via the parent foreign
// key cascade.
func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.Store.Tasks().DeleteTask(ctx, id, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func validateTaskText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewValidation("task text must not be empty")
	}
	if utf8.RuneCountInString(text) > domain.MaxTaskTextLength {
		return "", domain.NewValidation(fmt.Sprintf("task text must be at most %d characters", domain.MaxTaskTextLength))
	}
	return text, nil
}

// buildTree assembles the forest from a flat id-ordered slice. Appending in
// input order keeps children sorted by id; roots are re-sorted newest first.
func buildTree(flat []domain.Task) []*domain.Task {
	byID := make(map[int64]*domain.Task, len(flat))
	nodes := make([]*domain.Task, len(flat))
	for i := range flat {
		t := flat[i]
		t.Children = []*domain.Task{}
		nodes[i] = &t
		byID[t.ID] = nodes[i]
	}

	roots := []*domain.Task{}
	for _, n := range nodes {
		if n.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		parent, ok := byID[*n.ParentID]
		if !ok {
			// Orphaned row, should not happen with the FK in place.
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	sort.Slice(roots, func(i, j int) bool {
		if !roots[i].CreatedAt.Equal(roots[j].CreatedAt) {
			return roots[i].CreatedAt.After(roots[j].CreatedAt)
		}
		return roots[i].ID > roots[j].ID
	})
	return roots
}
