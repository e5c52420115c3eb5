// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pdfinfo

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/invoice-entry/models"
)

// SampleFileName is the name of the generated demo document.
const SampleFileName = "sample-invoice.pdf"

// sampleLines is the text printed on the demo document, one entry per line.
var sampleLines = []string{
	"Vendor: A-1 Exterminators",
	"Invoice Number: INV-2024-001",
	"Amount: $1,250.00",
	"Due Date: 02/15/2024",
	"Date: 01/15/2024",
	"Payment Terms: Net 30",
}

// SampleFile returns a one-page demo invoice.
func SampleFile(now time.Time) models.PdfFile {
	return models.PdfFile{
		Name:         SampleFileName,
		ContentType:  models.PDFContentType,
		Content:      SamplePDF(),
		LastModified: now,
	}
}

// SamplePDF renders the demo invoice as a minimal PDF 1.4 document with a
// correct cross-reference table.
func SamplePDF() []byte {
	var stream bytes.Buffer
	fmt.Fprintf(&stream, "BT /F1 24 Tf 72 720 Td (%s) Tj ET\n", escapeText("Sample Invoice"))
	y := 680
	for _, line := range sampleLines {
		fmt.Fprintf(&stream, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", y, escapeText(line))
		y -= 20
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", stream.Len(), stream.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var doc bytes.Buffer
	doc.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = doc.Len()
		fmt.Fprintf(&doc, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := doc.Len()
	fmt.Fprintf(&doc, "xref\n0 %d\n", len(objects)+1)
	doc.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&doc, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&doc, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return doc.Bytes()
}

func escapeText(s string) string {
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(s)
}
