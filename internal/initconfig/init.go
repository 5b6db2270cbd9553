// filepath: internal/initconfig/init.go
package initconfig

import (
	"context"
	"fmt"
	"os"

	"todohub/internal/services"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Load reads and parses a seed file.
func Load(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file '%s': %w", path, err)
	}

	var seed SeedConfig
	if _, err := toml.Decode(string(data), &seed); err != nil {
		return nil, fmt.Errorf("failed to parse TOML seed file '%s': %w", path, err)
	}
	return &seed, nil
}

// Run creates the lists and items of a seed file through the todo service.
// Lists whose title already exists are skipped, so running a seed twice is safe.
// Individual failures are logged and counted; only an unreadable file or an
// unreachable store aborts the run.
func Run(ctx context.Context, todo services.TodoService, path string, logger *logrus.Logger) (*Report, error) {
	logger.Infof("Seed file found at: %s. Processing...", path)

	seed, err := Load(path)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d list(s) in seed file.", len(seed.Lists))

	existing, err := todo.ListTodoLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing todo lists: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, l := range existing {
		known[l.Title] = true
	}

	report := &Report{}
	for _, l := range seed.Lists {
		if known[l.Title] {
			logger.Infof("Skipping list: '%s' already exists.", l.Title)
			report.ListsSkipped++
			continue
		}
		processList(ctx, todo, l, report, logger)
		known[l.Title] = true
	}

	logger.WithFields(logrus.Fields{
		"lists_created": report.ListsCreated,
		"lists_skipped": report.ListsSkipped,
		"items_created": report.ItemsCreated,
		"items_checked": report.ItemsChecked,
		"failures":      report.Failures,
	}).Info("Seed run finished")
	return report, nil
}

// processList creates one list and its items.
func processList(ctx context.Context, todo services.TodoService, l SeedList, report *Report, logger *logrus.Logger) {
	list, err := todo.CreateTodoList(ctx, l.Title)
	if err != nil {
		logger.Errorf("Failed to create list '%s': %v", l.Title, err)
		report.Failures++
		return
	}
	report.ListsCreated++

	for _, it := range l.Items {
		item, err := todo.CreateTodoItem(ctx, it.Title, list.ID)
		if err != nil {
			logger.Errorf("Failed to create item '%s' in list '%s': %v", it.Title, l.Title, err)
			report.Failures++
			continue
		}
		report.ItemsCreated++

		if !it.Checked {
			continue
		}
		if ok, err := todo.CheckItem(ctx, list.ID, item.ID); err != nil {
			logger.Errorf("Failed to check item '%s' in list '%s': %v", it.Title, l.Title, err)
			report.Failures++
		} else if ok {
			report.ItemsChecked++
		}
	}
}
