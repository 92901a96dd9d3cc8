package commands

import (
	"context"
	"fmt"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements menu option 1.
type AddCmd struct{}

func (c *AddCmd) Key() string      { return "1" }
func (c *AddCmd) Synopsis() string { return "Add task" }

func (c *AddCmd) Run(ctx context.Context, env *Env) (Action, error) {
	desc, err := env.Prompt.Line("Enter task description: ")
	if err != nil {
		return Quit, err
	}

	// Descriptions are stored exactly as typed, empty ones included.
	task, err := env.Service.AddTask(ctx, desc)
	if err != nil {
		return Quit, err
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "Task added: %s\n", task.Description)
	}
	return Continue, nil
}
