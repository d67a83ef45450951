package ownership

import (
	"fmt"

	"fintrack-backend/internal/apperr"
)

// Owned is implemented by every record that belongs to a single user.
type Owned interface {
	Owner() string
}

// Authorize decides whether userID may act on rec. The caller names the
// action and resource for the error message, e.g. ("update", "category").
func Authorize(userID string, rec Owned, action, resource string) error {
	if rec.Owner() != userID {
		return apperr.Authorization(fmt.Sprintf("Unauthorized to %s this %s.", action, resource))
	}
	return nil
}
