package v1

import (
	"encoding/json"
	"testing"
	"time"

	"hr-platform-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToResumeView(t *testing.T) {
	t.Run("nil skills serialize as an empty array", func(t *testing.T) {
		view := toResumeView(&domain.Resume{ID: 1, State: domain.StateDraft, CurrentPosition: "QA Engineer"})

		raw, err := json.Marshal(view)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, []any{}, decoded["skills"])
		assert.Nil(t, decoded["published_at"])
	})

	t.Run("keeps all owner fields", func(t *testing.T) {
		now := time.Now()
		exp := 4
		view := toResumeView(&domain.Resume{
			ID:              7,
			UserID:          3,
			State:           domain.StatePublished,
			Bio:             strPtr("ten years of backend work"),
			CurrentPosition: "Backend Developer",
			DesiredPosition: strPtr("Team Lead"),
			Experience:      &exp,
			Skills:          []string{"go", "postgres"},
			CreatedAt:       now,
			PublishedAt:     &now,
		})

		assert.Equal(t, int64(7), view.ID)
		assert.Equal(t, domain.StatePublished, view.State)
		assert.Equal(t, "Backend Developer", view.CurrentPosition)
		assert.Equal(t, []string{"go", "postgres"}, view.Skills)
		require.NotNil(t, view.PublishedAt)
	})
}

func TestVacancyViews(t *testing.T) {
	now := time.Now()
	vacancy := domain.Vacancy{
		ID:          11,
		CreatorID:   2,
		Position:    "Data Engineer",
		Experience:  3,
		Description: "Pipelines and warehouses",
		State:       domain.StatePublished,
		CreatedAt:   now,
		PublishedAt: &now,
		Department:  &domain.Department{ID: 5, Name: "Analytics"},
	}

	t.Run("applicant view omits creator and state", func(t *testing.T) {
		raw, err := json.Marshal(toVacancyApplicantView(&vacancy))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.NotContains(t, decoded, "creator_id")
		assert.NotContains(t, decoded, "state")
		assert.Equal(t, "Data Engineer", decoded["position"])

		dept, ok := decoded["department"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Analytics", dept["name"])
	})

	t.Run("manager view exposes creator and state", func(t *testing.T) {
		view := toVacancyManagerView(&vacancy)
		assert.Equal(t, int64(2), view.CreatorID)
		assert.Equal(t, domain.StatePublished, view.State)
	})

	t.Run("missing department stays null", func(t *testing.T) {
		bare := vacancy
		bare.Department = nil
		assert.Nil(t, toVacancyApplicantView(&bare).Department)
	})

	t.Run("short manager view keeps the listing columns only", func(t *testing.T) {
		views := toShortVacancyManagerViews([]domain.Vacancy{vacancy})
		require.Len(t, views, 1)
		assert.Equal(t, "Data Engineer", views[0].Position)
		assert.Equal(t, domain.StatePublished, views[0].State)
	})
}

func TestToShortApplicantViews(t *testing.T) {
	views := toShortApplicantViews([]domain.User{
		{
			ID:         9,
			Email:      "ivanov@example.com",
			FirstName:  "Ivan",
			LastName:   "Ivanov",
			Patronymic: "Ivanovich",
			Role:       domain.RoleApplicant,
		},
		{ID: 10, Email: "petrova@example.com", FirstName: "Anna", LastName: "Petrova"},
	})

	require.Len(t, views, 2)
	assert.Equal(t, "Ivanov Ivan Ivanovich", views[0].FullName)
	// Empty patronymic keeps the separator, same as the SQL concat the
	// full_name filter compares against.
	assert.Equal(t, "Petrova Anna ", views[1].FullName)
}
