package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/yardstick"
)

// Run executes the amend command.
func (c *AmendCmd) Run(deps *Dependencies) error {
	text := c.Text
	if text == "" || text == "-" {
		if deps.Stdin == nil {
			return yardstick.Errorf(yardstick.EINVALID, "Article text is required")
		}
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
		text = strings.TrimRight(string(b), "\r\n")
	}

	amended, err := deps.Amender.Amend(deps.Ctx, text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yardstick.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, amended)
	return nil
}
