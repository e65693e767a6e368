package usecases

import "context"

type GetChangelogExecutor interface {
	Execute(ctx context.Context, query GetChangelogQuery) (*ChangelogDTO, error)
}

type AcknowledgeExecutor interface {
	Execute(ctx context.Context, cmd AcknowledgeCommand) (string, error)
}
