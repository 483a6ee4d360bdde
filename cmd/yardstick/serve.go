package main

import (
	"fmt"
	"net"
	"strconv"

	ydhttp "github.com/fwojciec/yardstick/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is
// cancelled, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := ydhttp.NewServer(deps.Scraper, deps.Amender, deps.Logger)
	server.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	if err := server.Listen(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})
	return g.Wait()
}
