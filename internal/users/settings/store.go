// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import "context"

type Repository interface {
	// GetByUserID returns the user's settings row.
	GetByUserID(context context.Context, userID string) (*Settings, error)

	// Update rewrites both preference fields.
	Update(context context.Context, settings *Settings) error
}
