package main

import (
	"fmt"

	"github.com/fwojciec/docchat"
)

// Run executes the threads command.
func (c *ThreadsCmd) Run(deps *Dependencies) error {
	conversations, err := deps.Checkpoints.ListConversations(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docchat.ErrorMessage(err))
		return err
	}

	if len(conversations) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversations yet. Use 'docchat ask' to start one.")
		return nil
	}

	for _, conv := range conversations {
		fmt.Fprintf(deps.Stdout, "%s  %d message(s)  updated %s\n",
			conv.ThreadID, len(conv.Messages), conv.UpdatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
