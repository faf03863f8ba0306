package cmd

import (
	adaptergit "greener/internal/adapters/git"
	adapterstorage "greener/internal/adapters/storage"
	"greener/internal/logging"
	"greener/internal/paths"
	"greener/internal/ports"
	"greener/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	GitRepo ports.GitRepository

	// Journal is opened on first use only, runs without --journal never touch it
	journal     ports.RunJournal
	openJournal func() (ports.RunJournal, error)
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	return &Container{
		GitRepo: adaptergit.NewCLIRepository(),
		openJournal: func() (ports.RunJournal, error) {
			return adapterstorage.NewSQLiteRepository(paths.GetJournalPath())
		},
	}, nil
}

// Journal returns the run journal, opening it if needed
func (c *Container) Journal() (ports.RunJournal, error) {
	if c.journal != nil {
		return c.journal, nil
	}
	journal, err := c.openJournal()
	if err != nil {
		return nil, err
	}
	c.journal = journal
	return journal, nil
}

// NewRunService creates a RunService, journaling when asked to.
// A journal that cannot be opened is logged and the run goes on without it.
func (c *Container) NewRunService(journaled bool) *services.RunService {
	if !journaled {
		return services.NewRunService(c.GitRepo, nil)
	}

	journal, err := c.Journal()
	if err != nil {
		logging.Logger.Warn("Failed to open run journal, continuing without it", "error", err)
		return services.NewRunService(c.GitRepo, nil)
	}
	return services.NewRunService(c.GitRepo, journal)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.journal != nil {
		return c.journal.Close()
	}
	return nil
}
