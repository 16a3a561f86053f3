package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func intPtr(v int) *int { return &v }

func TestSubmitScoreRequestZeroIsValid(t *testing.T) {
	req := SubmitScoreRequest{
		UserID: uuid.New(),
		GameID: uuid.New(),
		Score:  intPtr(0),
	}
	assert.NoError(t, validate.Struct(&req))
}

func TestSubmitScoreRequestNegativeRejected(t *testing.T) {
	req := SubmitScoreRequest{
		UserID: uuid.New(),
		GameID: uuid.New(),
		Score:  intPtr(-1),
	}
	assert.Error(t, validate.Struct(&req))
}

func TestSubmitScoreRequestMissingScoreRejected(t *testing.T) {
	req := SubmitScoreRequest{
		UserID: uuid.New(),
		GameID: uuid.New(),
	}
	assert.Error(t, validate.Struct(&req))
}

func TestSubmitScoreRequestToModel(t *testing.T) {
	userID, gameID := uuid.New(), uuid.New()
	req := SubmitScoreRequest{UserID: userID, GameID: gameID, Score: intPtr(85)}

	m := req.ToModel()
	require.NotNil(t, m)
	assert.Equal(t, userID, m.GameScoreUserID)
	assert.Equal(t, gameID, m.GameScoreGameID)
	assert.Equal(t, 85, m.GameScoreValue)
}
