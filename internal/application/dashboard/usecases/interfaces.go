package usecases

import "context"

type GetDashboardExecutor interface {
	Execute(ctx context.Context) (*DashboardDTO, error)
}
