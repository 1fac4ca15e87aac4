package postgres

import (
	"testing"

	"hr-platform-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerResumeConds(t *testing.T) {
	t.Run("owner scope alone without filters", func(t *testing.T) {
		b := ownerResumeConds(42, domain.ResumeFilters{})

		require.Len(t, b.conds, 1)
		assert.Equal(t, "r.user_id = $1", b.conds[0])
		assert.Equal(t, []any{int64(42)}, b.args)
	})

	t.Run("filters narrow within the owner scope", func(t *testing.T) {
		state := domain.StateDraft
		current := "QA Engineer"
		desired := "QA Lead"
		b := ownerResumeConds(42, domain.ResumeFilters{
			State:           &state,
			CurrentPosition: &current,
			DesiredPosition: &desired,
		})

		require.Len(t, b.conds, 4)
		assert.Equal(t, "r.user_id = $1", b.conds[0])
		assert.Equal(t, int64(42), b.args[0])
		assert.Equal(t,
			"r.user_id = $1 AND r.state = $2 AND r.current_position = $3 AND r.desired_position = $4",
			b.cond())
	})
}
