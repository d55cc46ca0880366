package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo(CodeRule, "bewitched as KindString", "store.Product", "Name")
	d.AddWarning(CodeNotAddressable, "target passed by value", "store.Product", "", "pass a pointer")
	assert.True(t, d.IsValid())

	d.AddError(CodeUnsupported, "no rule for int", "store.Product", "Stock")
	assert.True(t, d.HasErrors())
	require.EqualError(t, d.Error(), "[store.Product] Stock: [unsupported-type] no rule for int")

	var other Diagnostics
	other.AddError(CodeFieldNotFound, "no such field", "store.Product", "Nope")
	d.Merge(other)
	assert.Len(t, d.Errors, 2)

	assert.Len(t, d.ForField("Name"), 1)
	assert.Equal(t, DiagnosticError, d.ForField("Stock")[0].Severity)
	assert.Empty(t, d.ForField("Missing"))
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		diag     Diagnostic
		expected string
	}{
		{Diagnostic{Message: "plain"}, "plain"},
		{Diagnostic{Code: CodeRule, Message: "m"}, "[rule] m"},
		{Diagnostic{Type: "T", Message: "m"}, "[T]: m"},
		{Diagnostic{Type: "T", Field: "F", Code: "c", Message: "m", Suggestions: []string{"a", "b"}}, "[T] F: [c] m (a, b)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}

	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
