package main

import (
	"fmt"
	"strings"

	"github.com/Achintya1800/lexdoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.Join(c.Question, " ")

	answer, err := deps.Answerer.Answer(deps.Ctx, question, c.TopK)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer.Content)
	return nil
}
