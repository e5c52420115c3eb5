// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SubmissionStatusSubmitted is the status of every finalized invoice.
const SubmissionStatusSubmitted = "submitted"

// SubmissionRecord is an immutable snapshot of a submitted invoice.
// The record fields are flattened into the JSON object next to the
// submission metadata.
type SubmissionRecord struct {
	InvoiceRecord

	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
	ID          string    `json:"id"`
}
