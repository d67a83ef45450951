package ownership

import (
	"testing"

	"fintrack-backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ownedRecord struct {
	userID string
}

func (r ownedRecord) Owner() string { return r.userID }

func TestAuthorize_Allow(t *testing.T) {
	err := Authorize("alice", ownedRecord{userID: "alice"}, "update", "category")
	require.NoError(t, err)
}

func TestAuthorize_Deny(t *testing.T) {
	err := Authorize("bob", ownedRecord{userID: "alice"}, "delete", "expense")
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
	assert.Equal(t, "Unauthorized to delete this expense.", err.Error())
}
