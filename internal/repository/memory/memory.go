// Package memory holds an in-memory implementation of the repository
// interfaces. It backs handler tests, where a real Postgres instance would
// only slow things down.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"precrastine-se/internal/models"
	"precrastine-se/internal/repository"
)

// Store keeps all rows behind one mutex. The per-aggregate repositories
// returned by Users, Tasks and LifeAreas are views over the same data, which
// is what makes the user-delete cascade observable across them.
type Store struct {
	mu      sync.RWMutex
	users   map[string]models.User
	tasks   map[string]models.Task
	areas   map[string]models.LifeArea // keyed userID + "/" + areaID
	taskSeq map[string]int64
	seq     int64
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]models.User),
		tasks:   make(map[string]models.Task),
		areas:   make(map[string]models.LifeArea),
		taskSeq: make(map[string]int64),
	}
}

func (s *Store) Users() repository.UserRepository         { return &userRepo{s} }
func (s *Store) Tasks() repository.TaskRepository         { return &taskRepo{s} }
func (s *Store) LifeAreas() repository.LifeAreaRepository { return &areaRepo{s} }

func areaKey(userID, id string) string { return userID + "/" + id }

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *models.User, areas []models.LifeArea) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user

	for i := range areas {
		areas[i].UserID = user.ID
		s.areas[areaKey(user.ID, areas[i].ID)] = areas[i]
	}
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) Update(_ context.Context, id string, upd repository.UserUpdate) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Email != nil {
		for otherID, other := range s.users {
			if otherID != id && other.Email == *upd.Email {
				return nil, repository.ErrEmailTaken
			}
		}
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Photo != nil {
		photo := *upd.Photo
		u.Photo = &photo
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return &u, nil
}

func (r *userRepo) Delete(_ context.Context, id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	for taskID, t := range s.tasks {
		if t.UserID == id {
			delete(s.tasks, taskID)
			delete(s.taskSeq, taskID)
		}
	}
	for key, a := range s.areas {
		if a.UserID == id {
			delete(s.areas, key)
		}
	}
	return nil
}

type taskRepo struct{ s *Store }

func (r *taskRepo) Create(_ context.Context, task *models.Task) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	s.seq++
	s.taskSeq[task.ID] = s.seq
	s.tasks[task.ID] = *task
	return nil
}

func (r *taskRepo) ListByUser(_ context.Context, userID string) ([]models.Task, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := []models.Task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return s.taskSeq[tasks[i].ID] > s.taskSeq[tasks[j].ID]
	})
	return tasks, nil
}

func (r *taskRepo) Update(_ context.Context, userID, id string, upd repository.TaskUpdate) (*models.Task, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Category != nil {
		t.Category = *upd.Category
	}
	if upd.DueDate.Set {
		t.DueDate = upd.DueDate.Time
	}
	t.UpdatedAt = time.Now().UTC()
	s.tasks[id] = t
	return &t, nil
}

func (r *taskRepo) Delete(_ context.Context, userID, id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.tasks, id)
	delete(s.taskSeq, id)
	return nil
}

func (r *taskRepo) Stats(_ context.Context, userID string, dayStart, dayEnd time.Time) (repository.TaskStats, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats repository.TaskStats
	for _, t := range s.tasks {
		if t.UserID != userID {
			continue
		}
		stats.TotalTasks++
		if t.Completed {
			stats.CompletedTasks++
		}
		if t.DueDate != nil && !t.DueDate.Before(dayStart) && t.DueDate.Before(dayEnd) {
			stats.TodayTasks++
		}
		if t.Priority == models.PriorityHigh && !t.Completed {
			stats.HighPriorityTasks++
		}
	}
	return stats, nil
}

type areaRepo struct{ s *Store }

func (r *areaRepo) ListByUser(_ context.Context, userID string) ([]models.LifeArea, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	areas := []models.LifeArea{}
	for _, a := range s.areas {
		if a.UserID == userID {
			areas = append(areas, a)
		}
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].ID < areas[j].ID })
	return areas, nil
}

func (r *areaRepo) UpdateScore(_ context.Context, userID, id string, score int) (*models.LifeArea, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.areas[areaKey(userID, id)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Score = score
	a.LastUpdated = time.Now().UTC()
	s.areas[areaKey(userID, id)] = a
	return &a, nil
}
