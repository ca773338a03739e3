// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package feedback handles support requests submitted by readers and the
// staff workflow for triaging them.
package feedback

import "time"

// Workflow statuses of a support request.
const (
	StatusNew        = "NEW"
	StatusProcessing = "PROCESSING"
	StatusProcessed  = "PROCESSED"
	StatusPostponed  = "POSTPONED"
)

// Statuses lists every valid workflow status.
var Statuses = []string{StatusNew, StatusProcessing, StatusProcessed, StatusPostponed}

// Feedback is one support request. The text is sanitized before storage.
type Feedback struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MaxTextLength mirrors the column size.
const MaxTextLength = 2000

// Global field names for validation
const (
	FieldText   = "text"
	FieldStatus = "status"
)
