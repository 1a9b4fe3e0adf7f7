package services

import (
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/platform/config"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/utils"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config, telemetry *utils.TelemetryClient) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Fund:        NewFundService(repos.FundRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo),
		Budget:      NewBudgetService(repos.BudgetRepo),
		Analytics: NewAnalyticsService(
			repos.AnalyticsRepo,
			repos.BudgetRepo,
			repos.AccountRepo,
			repos.FundRepo,
			WithTelemetry(telemetry),
		),
		User:  NewUserService(repos.UserRepo),
		Token: NewTokenService(repos.UserRepo, cfg),
	}
}
