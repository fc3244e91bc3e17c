// SPDX-License-Identifier: MIT

package matrix

// Test bridge for unexported validators. Compiled only with the tests.
var (
	ExportedValidateIndex = validateIndex
	ExportedValidateRange = validateRange
	ExportedValidateSpan  = validateSpan
)
