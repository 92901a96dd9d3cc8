// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task

	// Saves counts successful mutations, standing in for file writes.
	Saves int

	// Error injection for testing
	TasksErr        error
	AddTaskErr      error
	CompleteTaskErr error
	DeleteTaskErr   error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// Seed adds a task directly, bypassing error injection and save counting.
func (f *FakeService) Seed(description string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{Description: description, Completed: completed})
}

// Snapshot returns the current tasks.
func (f *FakeService) Snapshot() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Tasks implements service.Service.
func (f *FakeService) Tasks(ctx context.Context) ([]service.Task, error) {
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	return f.Snapshot(), nil
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, description string) (service.Task, error) {
	if f.AddTaskErr != nil {
		return service.Task{}, f.AddTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	task := service.Task{Description: description}
	f.tasks = append(f.tasks, task)
	f.Saves++
	return task, nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, index int) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !service.InRange(index, len(f.tasks)) {
		return service.Task{}, service.ErrInvalidIndex
	}
	if f.CompleteTaskErr != nil {
		return service.Task{}, f.CompleteTaskErr
	}
	f.tasks[index].Completed = true
	f.Saves++
	return f.tasks[index], nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, index int) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !service.InRange(index, len(f.tasks)) {
		return service.Task{}, service.ErrInvalidIndex
	}
	if f.DeleteTaskErr != nil {
		return service.Task{}, f.DeleteTaskErr
	}
	removed := f.tasks[index]
	f.tasks = append(f.tasks[:index], f.tasks[index+1:]...)
	f.Saves++
	return removed, nil
}
