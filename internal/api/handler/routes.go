package handler

import (
	"net/http"

	"github.com/Kingcorpe/practice-manager-api/internal/api/handler/router"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/alerting"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/authenticating"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/clienting"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/documents"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/goals"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/milestones"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/portfolios"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/prospecting"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/revenue"
	"github.com/Kingcorpe/practice-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Revenue(service revenue.RevenueService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/revenue/entries",
			Method:      http.MethodGet,
			Handler:     ListRevenueEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/entries",
			Method:      http.MethodPost,
			Handler:     CreateRevenueEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
		{
			Path:        "/v1/revenue/summary",
			Method:      http.MethodGet,
			Handler:     GetRevenueSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/ytd",
			Method:      http.MethodGet,
			Handler:     GetYearToDate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/pacing",
			Method:      http.MethodGet,
			Handler:     GetPacingReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/commission/preview",
			Method:      http.MethodPost,
			Handler:     PreviewCommission(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/entries/:id",
			Method:      http.MethodGet,
			Handler:     GetRevenueEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/entries/:id",
			Method:      http.MethodPut,
			Handler:     UpdateRevenueEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
		{
			Path:        "/v1/revenue/entries/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteRevenueEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
	}
}

func Goals(service goals.GoalService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals",
			Method:      http.MethodGet,
			Handler:     ListGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:key",
			Method:      http.MethodGet,
			Handler:     GetGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:key",
			Method:      http.MethodPut,
			Handler:     SetGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
		{
			Path:        "/v1/goals/:key",
			Method:      http.MethodDelete,
			Handler:     ClearGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
	}
}

func Households(service clienting.ClientService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/households",
			Method:      http.MethodGet,
			Handler:     ListHouseholds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/households",
			Method:      http.MethodPost,
			Handler:     CreateHousehold(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/households/:id",
			Method:      http.MethodGet,
			Handler:     GetHousehold(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/households/:id",
			Method:      http.MethodPut,
			Handler:     UpdateHousehold(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/households/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteHousehold(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
		{
			Path:        "/v1/households/:id/members",
			Method:      http.MethodPost,
			Handler:     AddHouseholdMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/households/:id/members/:client_id",
			Method:      http.MethodPut,
			Handler:     UpdateHouseholdMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/households/:id/members/:client_id",
			Method:      http.MethodDelete,
			Handler:     RemoveHouseholdMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
	}
}

func Prospects(service prospecting.ProspectService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/prospects",
			Method:      http.MethodGet,
			Handler:     ListProspects(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prospects",
			Method:      http.MethodPost,
			Handler:     CreateProspect(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/funnel",
			Method:      http.MethodGet,
			Handler:     GetFunnelSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prospects/:id",
			Method:      http.MethodGet,
			Handler:     GetProspect(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prospects/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProspect(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prospects/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProspect(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prospects/:id/stage",
			Method:      http.MethodPost,
			Handler:     MoveProspectStage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Alerts(service alerting.AlertService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     ListAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts",
			Method:      http.MethodPost,
			Handler:     CreateAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id",
			Method:      http.MethodGet,
			Handler:     GetAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id/trigger",
			Method:      http.MethodPost,
			Handler:     TriggerAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id/dismiss",
			Method:      http.MethodPost,
			Handler:     DismissAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Milestones(service milestones.MilestoneService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/milestones",
			Method:      http.MethodGet,
			Handler:     ListMilestones(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/milestones",
			Method:      http.MethodPost,
			Handler:     CreateMilestone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/milestones/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMilestone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/milestones/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMilestone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/milestones/:id/complete",
			Method:      http.MethodPost,
			Handler:     CompleteMilestone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Portfolios(service portfolios.PortfolioService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/portfolios",
			Method:      http.MethodGet,
			Handler:     ListPortfolios(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/portfolios",
			Method:      http.MethodPost,
			Handler:     CreatePortfolio(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
		{
			Path:        "/v1/portfolios/:id",
			Method:      http.MethodGet,
			Handler:     GetPortfolio(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/portfolios/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePortfolio(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
		{
			Path:        "/v1/portfolios/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePortfolio(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
	}
}

func Documents(service documents.DocumentService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/documents",
			Method:      http.MethodGet,
			Handler:     ListDocuments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents",
			Method:      http.MethodPost,
			Handler:     CreateDocument(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents/:id",
			Method:      http.MethodGet,
			Handler:     GetDocument(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDocument(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDocument(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdvisor()},
		},
	}
}
