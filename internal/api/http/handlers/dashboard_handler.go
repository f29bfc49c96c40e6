package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/issue-dashboard/internal/analytics"
	"github.com/spec-kit/issue-dashboard/internal/api/dto"
	"github.com/spec-kit/issue-dashboard/internal/domain"
	"github.com/spec-kit/issue-dashboard/internal/service"
)

// DashboardHandler serves the derived dashboard views.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Dashboard GET /api/dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	overview, err := h.service.Overview(criteria)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dashboardResponse(overview)})
}

// Issues GET /api/issues.
func (h *DashboardHandler) Issues(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	issues, total, err := h.service.Issues(criteria)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.IssueListResponse{
		Rows:         dto.NewIssueRows(issues),
		ShowingCount: len(issues),
		TotalCount:   total,
	}})
}

// Summary GET /api/summary.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(parseCriteria(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summaryResponse(summary)})
}

// FilterOptions GET /api/filters.
func (h *DashboardHandler) FilterOptions(c *fiber.Ctx) error {
	options, err := h.service.FilterOptions()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": options})
}

// Unresolved GET /api/unresolved.
func (h *DashboardHandler) Unresolved(c *fiber.Ctx) error {
	view, err := h.service.Unresolved()
	if err != nil {
		return err
	}

	groups := make([]dto.AgingGroupResponse, 0, len(view.Groups))
	for _, group := range view.Groups {
		aged := make([]dto.AgedIssueResponse, 0, len(group.Issues))
		for _, item := range group.Issues {
			aged = append(aged, dto.AgedIssueResponse{
				IssueRow: dto.NewIssueRow(item.Issue),
				AgeDays:  item.AgeDays,
			})
		}
		groups = append(groups, dto.AgingGroupResponse{
			Assignee: group.Assignee,
			Count:    len(group.Issues),
			Issues:   aged,
		})
	}
	return c.JSON(fiber.Map{"data": dto.UnresolvedResponse{Count: view.Count, Groups: groups}})
}

// Export GET /api/export.
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	export, err := h.service.BuildExport(c.Context(), parseCriteria(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.FileName+`"`)
	return c.SendString(export.CSV)
}

func parseCriteria(c *fiber.Ctx) domain.FilterCriteria {
	criteria := domain.DefaultCriteria()
	criteria.Search = c.Query("search")
	if v := c.Query("city"); v != "" {
		criteria.City = v
	}
	if v := c.Query("client"); v != "" {
		criteria.Client = v
	}
	if v := c.Query("assigned_to"); v != "" {
		criteria.AssignedTo = v
	}
	if v := c.Query("priority"); v != "" {
		criteria.Priority = v
	}
	if v := c.Query("status"); v != "" {
		criteria.Status = v
	}
	return criteria
}

func summaryResponse(summary analytics.Summary) dto.SummaryResponse {
	return dto.SummaryResponse{
		Total:  summary.Total,
		Open:   summary.Open,
		Closed: summary.Closed,
		OnHold: summary.OnHold,
	}
}

func dashboardResponse(overview *service.Overview) dto.DashboardResponse {
	oldest := make([]dto.OldestIssueResponse, 0, len(overview.OldestPerAssignee))
	for _, item := range overview.OldestPerAssignee {
		oldest = append(oldest, dto.OldestIssueResponse{
			Assignee: item.Assignee,
			Issue:    dto.NewIssueRow(item.Issue),
			AgeDays:  item.AgeDays,
		})
	}
	return dto.DashboardResponse{
		Summary:            summaryResponse(overview.Summary),
		StatusSeries:       overview.StatusSeries,
		PrioritySeries:     overview.PrioritySeries,
		CitySeries:         overview.CitySeries,
		MonthlySeries:      overview.MonthlySeries,
		AssigneeIssueTypes: overview.AssigneeIssueTypes,
		OldestPerAssignee:  oldest,
		Rows:               dto.NewIssueRows(overview.Rows),
		ShowingCount:       len(overview.Rows),
		TotalCount:         overview.TotalCount,
		Source:             string(overview.Source),
		LastUpdated:        overview.LastUpdated.Format(time.RFC3339),
	}
}
