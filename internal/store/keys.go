// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Keys of the entries kept by [Gateway].
const (
	KeySession        = "userSession"
	KeyUsers          = "userData"
	KeyDraft          = "invoiceFormData"
	KeyAttachment     = "pdfData"
	KeyAttachmentFile = "pdfFile"
	KeySampleFile     = "dummyPDFFile"
	KeySubmissions    = "invoiceSubmissions"
)
