package v1

import (
	"time"

	"hr-platform-backend/internal/domain"
)

// View schemas are selected by caller role: the same entity serializes
// differently for applicants and managers. Mapping is explicit per view, no
// shared shape.

type DepartmentView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toDepartmentView(d domain.Department) DepartmentView {
	return DepartmentView{ID: d.ID, Name: d.Name}
}

func toDepartmentViews(departments []domain.Department) []DepartmentView {
	views := make([]DepartmentView, 0, len(departments))
	for _, d := range departments {
		views = append(views, toDepartmentView(d))
	}
	return views
}

// ResumeForApplicantView is the owner's full view of their resume.
type ResumeForApplicantView struct {
	ID              int64        `json:"id"`
	State           domain.State `json:"state"`
	Bio             *string      `json:"bio"`
	CurrentPosition string       `json:"current_position"`
	DesiredPosition *string      `json:"desired_position"`
	Experience      *int         `json:"experience"`
	Skills          []string     `json:"skills"`
	CreatedAt       time.Time    `json:"created_at"`
	PublishedAt     *time.Time   `json:"published_at"`
}

func toResumeView(r *domain.Resume) ResumeForApplicantView {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeForApplicantView{
		ID:              r.ID,
		State:           r.State,
		Bio:             r.Bio,
		CurrentPosition: r.CurrentPosition,
		DesiredPosition: r.DesiredPosition,
		Experience:      r.Experience,
		Skills:          skills,
		CreatedAt:       r.CreatedAt,
		PublishedAt:     r.PublishedAt,
	}
}

func toResumeViews(resumes []domain.Resume) []ResumeForApplicantView {
	views := make([]ResumeForApplicantView, 0, len(resumes))
	for i := range resumes {
		views = append(views, toResumeView(&resumes[i]))
	}
	return views
}

// VacancyForApplicantView hides creator identity and lifecycle internals.
type VacancyForApplicantView struct {
	ID          int64           `json:"id"`
	Position    string          `json:"position"`
	Experience  int             `json:"experience"`
	Description string          `json:"description"`
	PublishedAt *time.Time      `json:"published_at"`
	Department  *DepartmentView `json:"department"`
}

func toVacancyApplicantView(v *domain.Vacancy) VacancyForApplicantView {
	view := VacancyForApplicantView{
		ID:          v.ID,
		Position:    v.Position,
		Experience:  v.Experience,
		Description: v.Description,
		PublishedAt: v.PublishedAt,
	}
	if v.Department != nil {
		d := toDepartmentView(*v.Department)
		view.Department = &d
	}
	return view
}

type ShortVacancyForApplicantView struct {
	ID         int64           `json:"id"`
	Position   string          `json:"position"`
	Experience int             `json:"experience"`
	Department *DepartmentView `json:"department"`
}

func toShortVacancyApplicantViews(vacancies []domain.Vacancy) []ShortVacancyForApplicantView {
	views := make([]ShortVacancyForApplicantView, 0, len(vacancies))
	for i := range vacancies {
		v := &vacancies[i]
		view := ShortVacancyForApplicantView{ID: v.ID, Position: v.Position, Experience: v.Experience}
		if v.Department != nil {
			d := toDepartmentView(*v.Department)
			view.Department = &d
		}
		views = append(views, view)
	}
	return views
}

// VacancyForManagerView exposes creator and lifecycle state.
type VacancyForManagerView struct {
	ID          int64           `json:"id"`
	CreatorID   int64           `json:"creator_id"`
	Position    string          `json:"position"`
	Experience  int             `json:"experience"`
	Description string          `json:"description"`
	State       domain.State    `json:"state"`
	CreatedAt   time.Time       `json:"created_at"`
	PublishedAt *time.Time      `json:"published_at"`
	Department  *DepartmentView `json:"department"`
}

func toVacancyManagerView(v *domain.Vacancy) VacancyForManagerView {
	view := VacancyForManagerView{
		ID:          v.ID,
		CreatorID:   v.CreatorID,
		Position:    v.Position,
		Experience:  v.Experience,
		Description: v.Description,
		State:       v.State,
		CreatedAt:   v.CreatedAt,
		PublishedAt: v.PublishedAt,
	}
	if v.Department != nil {
		d := toDepartmentView(*v.Department)
		view.Department = &d
	}
	return view
}

type ShortVacancyForManagerView struct {
	ID        int64        `json:"id"`
	Position  string       `json:"position"`
	State     domain.State `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
}

func toShortVacancyManagerViews(vacancies []domain.Vacancy) []ShortVacancyForManagerView {
	views := make([]ShortVacancyForManagerView, 0, len(vacancies))
	for i := range vacancies {
		v := &vacancies[i]
		views = append(views, ShortVacancyForManagerView{
			ID: v.ID, Position: v.Position, State: v.State, CreatedAt: v.CreatedAt,
		})
	}
	return views
}

// ShortApplicantView is the manager-facing applicant summary.
type ShortApplicantView struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func toShortApplicantViews(users []domain.User) []ShortApplicantView {
	views := make([]ShortApplicantView, 0, len(users))
	for i := range users {
		u := &users[i]
		views = append(views, ShortApplicantView{ID: u.ID, FullName: u.FullName(), Email: u.Email})
	}
	return views
}
