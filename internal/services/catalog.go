package services

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
)

// TaskLookup resolves catalog tasks for the timer
type TaskLookup interface {
	FindByName(name string) (domain.Task, bool)
	FindByNameAndDuration(name string, durationSeconds int) (domain.Task, bool)
	Get(id uuid.UUID) (domain.Task, bool)
}

// CatalogService owns the ordered list of tasks.
// Every mutation persists the whole list; write failures are logged, not returned.
type CatalogService struct {
	mu    sync.RWMutex
	store ports.TaskCatalogStore
	tasks []domain.Task
}

var _ TaskLookup = (*CatalogService)(nil)

// NewCatalogService creates an empty catalog; call Load before use
func NewCatalogService(store ports.TaskCatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// Load reads the persisted catalog, seeding the defaults when it is missing, empty or unreadable
func (s *CatalogService) Load(ctx context.Context) {
	tasks, err := s.store.ReadTaskCatalog(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read task catalog, seeding defaults", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(tasks) == 0 {
		s.tasks = domain.DefaultTasks()
		logging.Logger.Info("Seeded default task catalog", "count", len(s.tasks))
		s.persistLocked(ctx)
		return
	}
	s.tasks = tasks
	logging.Logger.Debug("Task catalog loaded", "count", len(tasks))
}

// List returns a copy of the tasks in order
func (s *CatalogService) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// Get finds a task by id
func (s *CatalogService) Get(id uuid.UUID) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

// FindByName returns the first task with the given name
func (s *CatalogService) FindByName(name string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.Name == name {
			return task, true
		}
	}
	return domain.Task{}, false
}

// FindByNameAndDuration returns the first task matching both fields
func (s *CatalogService) FindByNameAndDuration(name string, durationSeconds int) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.Name == name && task.DurationSeconds == durationSeconds {
			return task, true
		}
	}
	return domain.Task{}, false
}

// Resolve finds a task by id string, list position (1-based) or name
func (s *CatalogService) Resolve(ref string) (domain.Task, error) {
	if id, err := uuid.Parse(ref); err == nil {
		if task, ok := s.Get(id); ok {
			return task, nil
		}
	}

	if position, err := strconv.Atoi(ref); err == nil {
		tasks := s.List()
		if position >= 1 && position <= len(tasks) {
			return tasks[position-1], nil
		}
		return domain.Task{}, fmt.Errorf("%w: %d", domain.ErrInvalidPosition, position)
	}

	if task, ok := s.FindByName(ref); ok {
		return task, nil
	}
	for _, task := range s.List() {
		if strings.EqualFold(task.Name, ref) {
			return task, nil
		}
	}
	return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, ref)
}

// Add appends a new task with a fresh id
func (s *CatalogService) Add(ctx context.Context, name string, durationSeconds int) (domain.Task, error) {
	task := domain.NewTask(strings.TrimSpace(name), durationSeconds)
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	s.persistLocked(ctx)

	logging.Logger.Info("Task added", "id", task.ID, "name", task.Name, "duration", durationSeconds)
	return task, nil
}

// Update replaces the task with the same id; an unknown id is ignored
func (s *CatalogService) Update(ctx context.Context, task domain.Task) error {
	task.Name = strings.TrimSpace(task.Name)
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == task.ID })
	if idx < 0 {
		logging.Logger.Debug("Update ignored, task not in catalog", "id", task.ID)
		return nil
	}
	s.tasks[idx] = task
	s.persistLocked(ctx)

	logging.Logger.Info("Task updated", "id", task.ID, "name", task.Name)
	return nil
}

// Delete removes the tasks at the given 0-based positions
func (s *CatalogService) Delete(ctx context.Context, positions []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remove := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(s.tasks) {
			return fmt.Errorf("%w: %d", domain.ErrInvalidPosition, p)
		}
		remove[p] = true
	}

	kept := make([]domain.Task, 0, len(s.tasks))
	for i, task := range s.tasks {
		if !remove[i] {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
	s.persistLocked(ctx)

	logging.Logger.Info("Tasks deleted", "count", len(remove))
	return nil
}

// Move relocates the tasks at from (0-based) so they land before the element
// that was at position to; to == len(tasks) moves them to the end
func (s *CatalogService) Move(ctx context.Context, from []int, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if to < 0 || to > len(s.tasks) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPosition, to)
	}
	selected := make(map[int]bool, len(from))
	for _, p := range from {
		if p < 0 || p >= len(s.tasks) {
			return fmt.Errorf("%w: %d", domain.ErrInvalidPosition, p)
		}
		selected[p] = true
	}

	var moved, rest []domain.Task
	insertAt := to
	for i, task := range s.tasks {
		if selected[i] {
			moved = append(moved, task)
			if i < to {
				insertAt--
			}
			continue
		}
		rest = append(rest, task)
	}

	reordered := make([]domain.Task, 0, len(s.tasks))
	reordered = append(reordered, rest[:insertAt]...)
	reordered = append(reordered, moved...)
	reordered = append(reordered, rest[insertAt:]...)
	s.tasks = reordered
	s.persistLocked(ctx)

	logging.Logger.Info("Tasks moved", "from", from, "to", to)
	return nil
}

type exportedTask struct {
	DurationSeconds int    `yaml:"duration_seconds"`
	ID              string `yaml:"id,omitempty"`
	Name            string `yaml:"name"`
}

type exportedCatalog struct {
	Tasks []exportedTask `yaml:"tasks"`
}

// Export writes the catalog as YAML
func (s *CatalogService) Export(w io.Writer) error {
	var doc exportedCatalog
	for _, task := range s.List() {
		doc.Tasks = append(doc.Tasks, exportedTask{
			DurationSeconds: task.DurationSeconds,
			ID:              task.ID.String(),
			Name:            task.Name,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

// Import merges YAML tasks into the catalog: known ids are updated in place,
// everything else is appended. Returns how many tasks were added and updated.
func (s *CatalogService) Import(ctx context.Context, r io.Reader) (added, updated int, err error) {
	var doc exportedCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return 0, 0, fmt.Errorf("failed to decode catalog: %w", err)
	}

	incoming := make([]domain.Task, 0, len(doc.Tasks))
	for i, entry := range doc.Tasks {
		task := domain.Task{
			DurationSeconds: entry.DurationSeconds,
			Name:            strings.TrimSpace(entry.Name),
		}
		if entry.ID != "" {
			id, err := uuid.Parse(entry.ID)
			if err != nil {
				return 0, 0, fmt.Errorf("task %d has invalid id %q: %w", i+1, entry.ID, err)
			}
			task.ID = id
		} else {
			task.ID = uuid.New()
		}
		if err := task.Validate(); err != nil {
			return 0, 0, fmt.Errorf("task %d: %w", i+1, err)
		}
		incoming = append(incoming, task)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range incoming {
		idx := slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == task.ID })
		if idx >= 0 {
			s.tasks[idx] = task
			updated++
			continue
		}
		s.tasks = append(s.tasks, task)
		added++
	}
	s.persistLocked(ctx)

	logging.Logger.Info("Catalog imported", "added", added, "updated", updated)
	return added, updated, nil
}

func (s *CatalogService) persistLocked(ctx context.Context) {
	if err := s.store.WriteTaskCatalog(ctx, slices.Clone(s.tasks)); err != nil {
		logging.Logger.Warn("Failed to persist task catalog", "error", err)
	}
}
