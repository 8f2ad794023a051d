package validate

import (
	"fmt"
	"strings"
)

// Render formats the report for human reading: one block per variant with
// its identity, PASSED/FAILED status and listed errors, then a batch-level
// verdict line.
func Render(report Report) string {
	var b strings.Builder

	for _, result := range report.Results {
		status := "PASSED"
		if !result.Passed() {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "variant %s (product %s) %q: %s\n", result.ID, result.ProductID, result.Title, status)
		for _, e := range result.Errors {
			fmt.Fprintf(&b, "  - [%d] %s\n", e.Code, e.Message)
		}
	}

	if report.OK {
		fmt.Fprintf(&b, "batch: PASSED (%d variants)\n", len(report.Results))
	} else {
		failed := 0
		for _, result := range report.Results {
			if !result.Passed() {
				failed++
			}
		}
		fmt.Fprintf(&b, "batch: FAILED (%d of %d variants)\n", failed, len(report.Results))
	}

	return b.String()
}
