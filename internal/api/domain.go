package api

import (
	"newsdesk/internal/agents"
	"newsdesk/internal/articles"
	"newsdesk/internal/editorial"
	"newsdesk/internal/interviews"
	"newsdesk/internal/reviews"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Articles  articles.System
	Reviews   reviews.System
	Editorial editorial.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	cfg := runtime.Config
	db := runtime.Database.Connection()
	logger := runtime.Logger

	articlesSystem := articles.New(db, logger, runtime.Pagination)
	reviewsSystem := reviews.New(db, logger)
	dispatchSystem := interviews.NewRepository(db, logger)

	workflowLogger := logger.With("workflow", "editorial")

	rt := &editorial.Runtime{
		Articles:  articlesSystem,
		Reviews:   reviewsSystem,
		Dispatch:  dispatchSystem,
		Editor:    agents.NewEditor(cfg.Agent, workflowLogger),
		Reviser:   agents.NewReviser(cfg.Agent, workflowLogger),
		Validator: agents.NewValidator(cfg.Agent, workflowLogger),
		Enricher:  agents.NewEnricher(cfg.Agent, workflowLogger),
		Embedder:  agents.NewEmbedder(cfg.Embedding, workflowLogger),
		Questions: agents.NewQuestionAgent(cfg.Agent, workflowLogger),
		Email:     interviews.NewEmailDispatcher(cfg.Mail, workflowLogger),
		Phone:     interviews.NewPhoneDispatcher(cfg.Phone, workflowLogger),
		Timeout:   cfg.Workflow.CollaboratorTimeoutDuration(),
		Logger:    workflowLogger,
	}

	editorialSystem := editorial.New(rt, cfg.Workflow.BatchLimit)

	return &Domain{
		Articles:  articlesSystem,
		Reviews:   reviewsSystem,
		Editorial: editorialSystem,
	}
}
