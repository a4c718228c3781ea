package http

import (
	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/pkg/taskapi"
)

func userView(u domain.User) taskapi.UserInfo {
	return taskapi.UserInfo{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		MFAEnabled: u.MFAEnabled,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func userViews(users []domain.User) []taskapi.UserInfo {
	out := make([]taskapi.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, userView(u))
	}
	return out
}

func taskView(t *domain.Task) taskapi.Task {
	children := make([]taskapi.Task, 0, len(t.Children))
	for _, c := range t.Children {
		children = append(children, taskView(c))
	}
	return taskapi.Task{
		ID:        t.ID,
		Text:      t.Text,
		Done:      t.Done,
		ParentID:  t.ParentID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Children:  children,
	}
}

func taskViews(tree []*domain.Task) []taskapi.Task {
	out := make([]taskapi.Task, 0, len(tree))
	for _, t := range tree {
		out = append(out, taskView(t))
	}
	return out
}

func loginRecordViews(records []domain.LoginRecord) []taskapi.LoginRecord {
	out := make([]taskapi.LoginRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, taskapi.LoginRecord{
			ID:         rec.ID,
			UserID:     rec.UserID,
			RemoteAddr: rec.RemoteAddr,
			UserAgent:  rec.UserAgent,
			Status:     string(rec.Status),
			CreatedAt:  rec.CreatedAt,
		})
	}
	return out
}
