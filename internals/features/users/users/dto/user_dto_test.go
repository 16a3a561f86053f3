package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPatchOnlySetFields(t *testing.T) {
	schoolID := uuid.New()
	req := UpdateUserRequest{
		UserName:     strPtr("  Ana Souza "),
		UserSchoolID: &schoolID,
	}

	patch := req.Patch()

	assert.Equal(t, "Ana Souza", patch["user_name"])
	assert.Equal(t, schoolID, patch["user_school_id"])
	assert.Contains(t, patch, "user_updated_at")
	assert.NotContains(t, patch, "user_username")
	assert.NotContains(t, patch, "user_role")
	assert.NotContains(t, patch, "user_state")
	assert.Len(t, patch, 3)
}

func TestPatchEmptyRequest(t *testing.T) {
	patch := (&UpdateUserRequest{}).Patch()
	assert.Empty(t, patch)
}

func TestPatchNormalizesState(t *testing.T) {
	patch := (&UpdateUserRequest{UserState: strPtr(" sp ")}).Patch()
	assert.Equal(t, "SP", patch["user_state"])
}

func TestPatchRefreshesUpdatedAt(t *testing.T) {
	before := time.Now()
	patch := (&UpdateUserRequest{UserCity: strPtr("Campinas")}).Patch()
	ts, ok := patch["user_updated_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, ts.Before(before))
}
