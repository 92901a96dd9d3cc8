// Package jsonfile implements service.Service on top of a single JSON file.
//
// The whole list is loaded once when the client is created and rewritten
// after every mutation, so memory and disk agree between operations.
// Only one process is expected to use the file at a time.
package jsonfile

import (
	"context"

	"todo/internal/config"
	"todo/internal/log"
	"todo/internal/service"
)

// Client implements service.Service using a JSON task file.
type Client struct {
	path   string
	tasks  []service.Task
	logger *log.Logger
}

// New loads the task file named by cfg and returns a client over it.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Client, error) {
	return Open(ctx, cfg.TaskFile, logger)
}

// Open loads the task file at path.
func Open(ctx context.Context, path string, logger *log.Logger) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tasks, err := Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded %d tasks from %s", len(tasks), path)
	return &Client{path: path, tasks: tasks, logger: logger}, nil
}

// Path returns the task file path.
func (c *Client) Path() string { return c.path }

// Tasks implements service.Service.
func (c *Client) Tasks(ctx context.Context) ([]service.Task, error) {
	result := make([]service.Task, len(c.tasks))
	copy(result, c.tasks)
	return result, nil
}

// AddTask implements service.Service.
func (c *Client) AddTask(ctx context.Context, description string) (service.Task, error) {
	task := service.Task{Description: description}
	prev := c.tasks
	next := make([]service.Task, len(prev), len(prev)+1)
	copy(next, prev)
	next = append(next, task)

	if err := c.commit(next); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// CompleteTask implements service.Service.
func (c *Client) CompleteTask(ctx context.Context, index int) (service.Task, error) {
	if !service.InRange(index, len(c.tasks)) {
		return service.Task{}, service.ErrInvalidIndex
	}
	next := make([]service.Task, len(c.tasks))
	copy(next, c.tasks)
	next[index].Completed = true

	if err := c.commit(next); err != nil {
		return service.Task{}, err
	}
	return next[index], nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, index int) (service.Task, error) {
	if !service.InRange(index, len(c.tasks)) {
		return service.Task{}, service.ErrInvalidIndex
	}
	removed := c.tasks[index]
	next := make([]service.Task, 0, len(c.tasks)-1)
	next = append(next, c.tasks[:index]...)
	next = append(next, c.tasks[index+1:]...)

	if err := c.commit(next); err != nil {
		return service.Task{}, err
	}
	return removed, nil
}

// commit saves next and swaps it in only if the write succeeded.
func (c *Client) commit(next []service.Task) error {
	if err := Save(c.path, next); err != nil {
		c.logger.Errorf("save failed: %v", err)
		return err
	}
	c.tasks = next
	c.logger.Debugf("saved %d tasks to %s", len(next), c.path)
	return nil
}
