// Command iterate-pages lists the workspaces an API key can see, fetches the
// top-level pages of one of them, and optionally creates and trashes a page.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olgasafonova/nuclino-mcp-server/nuclino"
)

func main() {
	name := flag.String("workspace", "Engineering", "Workspace whose pages to fetch")
	write := flag.Bool("write", false, "Also create a test page in the workspace and move it to the trash")
	verbose := flag.Bool("v", false, "Log API requests to stderr")
	flag.Parse()

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client, err := nuclino.NewClientFromEnv(nuclino.WithLogger(logger))
	if errors.Is(err, nuclino.ErrAPIKeyNotFound) {
		fmt.Printf("%s is not set; export it before running this program\n", nuclino.EnvAPIKey)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, client, *name, *write); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *nuclino.Client, name string, write bool) error {
	workspaces, err := allWorkspaces(ctx, client)
	if err != nil {
		return fmt.Errorf("listing workspaces: %w", err)
	}

	fmt.Println("Nuclino workspaces you have access to:")
	var target *nuclino.Workspace
	for i := range workspaces {
		ws := &workspaces[i]
		fmt.Printf("    %s: %s\n", ws.Name, ws.ID)
		if ws.Name == name && target == nil {
			target = ws
		}
	}

	if target == nil {
		fmt.Printf("\nNo workspace named %q.\n", name)
		return nil
	}

	fmt.Printf("\nThe workspace named %q has %d direct children. Fetching...\n", name, len(target.Children()))
	for _, id := range target.Children() {
		page, err := client.Page(ctx, id)
		if err != nil {
			fmt.Printf("    %s: %v\n", id, err)
			continue
		}
		fmt.Printf("    %s: %s %s\n", page.Title(), page.Kind(), page.ID())
	}

	if !write {
		return nil
	}

	newPage := nuclino.NewItem().
		Title("This is a test").
		Content("Yes it's only a *test*.").
		Workspace(target.ID).
		Build()
	created, err := client.PageCreate(ctx, newPage)
	if err != nil {
		return fmt.Errorf("creating test page: %w", err)
	}
	fmt.Printf("\nCreated new page at %s\n", created.URL())

	if _, err := client.PageDelete(ctx, created.ID()); err != nil {
		return fmt.Errorf("trashing test page: %w", err)
	}
	fmt.Println("Moved the page to the trash.")
	return nil
}

// allWorkspaces follows the after cursor until a short batch comes back.
func allWorkspaces(ctx context.Context, client *nuclino.Client) ([]nuclino.Workspace, error) {
	const batchSize = 100

	var all []nuclino.Workspace
	opts := &nuclino.ListOptions{Limit: batchSize}
	for {
		batch, err := client.WorkspaceList(ctx, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < batchSize {
			return all, nil
		}
		next := batch[len(batch)-1].ID.String()
		if next == opts.After {
			return all, nil
		}
		opts.After = next
	}
}
