// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import "context"

type Repository interface {
	// Create inserts a new request and fills in its generated id and
	// creation timestamp.
	Create(context context.Context, feedback *Feedback) error

	// List returns every request, newest first.
	List(context context.Context) ([]*Feedback, error)

	// UpdateStatus moves a request through the triage workflow.
	UpdateStatus(context context.Context, id int, status string) error
}
