package postgres

import (
	"testing"

	"hr-platform-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicantConds(t *testing.T) {
	t.Run("role scope alone without filters", func(t *testing.T) {
		b := applicantConds(domain.ApplicantFilters{})

		require.Len(t, b.conds, 1)
		assert.Equal(t, "role = $1", b.conds[0])
		assert.Equal(t, []any{domain.RoleApplicant}, b.args)
	})

	t.Run("full name matches the derived concatenation", func(t *testing.T) {
		fullName := "Ivanov Ivan Ivanovich"
		b := applicantConds(domain.ApplicantFilters{FullName: &fullName})

		require.Len(t, b.conds, 2)
		assert.Equal(t, "role = $1", b.conds[0])
		assert.Equal(t, `concat(last_name, ' ', first_name, ' ', patronymic) = $2`, b.conds[1])
		assert.Equal(t, []any{domain.RoleApplicant, fullName}, b.args)
	})
}
