package v1

import (
	"encoding/json"

	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type idParams struct {
	ID int64 `json:"id" validate:"required,min=1"`
}

type createResumeParams struct {
	Bio             *string  `json:"bio"`
	CurrentPosition string   `json:"current_position" validate:"required,max=50"`
	DesiredPosition *string  `json:"desired_position" validate:"omitempty,max=50"`
	Experience      *int     `json:"experience" validate:"omitempty,min=0"`
	Skills          []string `json:"skills" validate:"omitempty,dive,min=1,max=50"`
}

func (h *RPCHandler) createResume(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req createResumeParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}

	resume := &domain.Resume{
		Bio:             req.Bio,
		CurrentPosition: req.CurrentPosition,
		DesiredPosition: req.DesiredPosition,
		Experience:      req.Experience,
		Skills:          req.Skills,
	}
	created, err := h.resumeUC.Create(c.Request.Context(), user.ID, resume)
	if err != nil {
		return nil, err
	}
	return toResumeView(created), nil
}

func (h *RPCHandler) getResumeForApplicant(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req idParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	resume, err := h.resumeUC.Get(c.Request.Context(), user.ID, req.ID)
	if err != nil {
		return nil, err
	}
	return toResumeView(resume), nil
}

type resumeFiltersParams struct {
	State           *domain.State `json:"state"`
	CurrentPosition *string       `json:"current_position"`
	DesiredPosition *string       `json:"desired_position"`
}

type listResumesParams struct {
	Filters *resumeFiltersParams `json:"filters"`
}

func (h *RPCHandler) getResumesForApplicant(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req listResumesParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}

	var filters domain.ResumeFilters
	if req.Filters != nil {
		if req.Filters.State != nil && !req.Filters.State.Valid() {
			return nil, apperror.InvalidParams("unknown state filter value")
		}
		filters = domain.ResumeFilters{
			State:           req.Filters.State,
			CurrentPosition: req.Filters.CurrentPosition,
			DesiredPosition: req.Filters.DesiredPosition,
		}
	}

	resumes, err := h.resumeUC.List(c.Request.Context(), user.ID, filters)
	if err != nil {
		return nil, err
	}
	return toResumeViews(resumes), nil
}

func (h *RPCHandler) publishResume(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req idParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	resume, err := h.resumeUC.Publish(c.Request.Context(), user.ID, req.ID)
	if err != nil {
		return nil, err
	}
	return toResumeView(resume), nil
}

func (h *RPCHandler) hideResume(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req idParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	resume, err := h.resumeUC.Hide(c.Request.Context(), user.ID, req.ID)
	if err != nil {
		return nil, err
	}
	return toResumeView(resume), nil
}

type resumeUpdateParams struct {
	Bio             *string   `json:"bio"`
	CurrentPosition *string   `json:"current_position" validate:"omitempty,max=50"`
	DesiredPosition *string   `json:"desired_position" validate:"omitempty,max=50"`
	Experience      *int      `json:"experience" validate:"omitempty,min=0"`
	Skills          *[]string `json:"skills" validate:"omitempty,dive,min=1,max=50"`
}

type updateResumeParams struct {
	ID      int64              `json:"id" validate:"required,min=1"`
	NewData resumeUpdateParams `json:"new_data"`
}

func (h *RPCHandler) updateResume(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req updateResumeParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}

	update := domain.ResumeUpdate{
		Bio:             req.NewData.Bio,
		CurrentPosition: req.NewData.CurrentPosition,
		DesiredPosition: req.NewData.DesiredPosition,
		Experience:      req.NewData.Experience,
		Skills:          req.NewData.Skills,
	}
	resume, err := h.resumeUC.Update(c.Request.Context(), user.ID, req.ID, update)
	if err != nil {
		return nil, err
	}
	return toResumeView(resume), nil
}

func (h *RPCHandler) getVacancyForApplicant(c *gin.Context, _ *domain.User, params json.RawMessage) (interface{}, error) {
	var req idParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	vacancy, err := h.vacancyUC.GetForApplicant(c.Request.Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return toVacancyApplicantView(vacancy), nil
}

type vacancyApplicantFiltersParams struct {
	Position     *string `json:"position"`
	Experience   *int    `json:"experience" validate:"omitempty,min=0"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,min=1"`
}

type listVacanciesForApplicantParams struct {
	paginationParams
	Filters *vacancyApplicantFiltersParams `json:"filters"`
}

func (h *RPCHandler) getVacanciesForApplicant(c *gin.Context, _ *domain.User, params json.RawMessage) (interface{}, error) {
	var req listVacanciesForApplicantParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	page, cursorMode, err := req.pageQuery()
	if err != nil {
		return nil, err
	}

	var filters domain.VacancyApplicantFilters
	if req.Filters != nil {
		filters = domain.VacancyApplicantFilters{
			Position:     req.Filters.Position,
			Experience:   req.Filters.Experience,
			DepartmentID: req.Filters.DepartmentID,
		}
	}

	vacancies, total, err := h.vacancyUC.ListForApplicant(c.Request.Context(), filters, page)
	if err != nil {
		return nil, err
	}

	var lastID int64
	if len(vacancies) > 0 {
		lastID = vacancies[len(vacancies)-1].ID
	}
	return paginated(toShortVacancyApplicantViews(vacancies), len(vacancies), lastID, total, page, cursorMode), nil
}
