package magic_test

import (
	"fairy-generator/internal/diagnostic"
	"fairy-generator/magic"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	t.Parallel()

	obj := sample{Custom: custom{Value: 3}}

	diags := magic.Explain(&obj)
	require.Len(t, diags.Infos, 1)
	require.Len(t, diags.Errors, 1)
	assert.Empty(t, diags.Warnings)

	assert.Equal(t, "Name", diags.Infos[0].Field)
	assert.Equal(t, "Custom", diags.Errors[0].Field)
	assert.Equal(t, diagnostic.CodeUnsupported, diags.Errors[0].Code)
	assert.Equal(t, sample{Custom: custom{Value: 3}}, obj, "explaining never mutates")
}

func TestExplainMissingFields(t *testing.T) {
	t.Parallel()

	diags := magic.Explain(&sample{}, "Name", "Nope", "Neither")
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "Nope", diags.Errors[0].Field)
	assert.Equal(t, "Neither", diags.Errors[1].Field)
	assert.Equal(t, diagnostic.CodeFieldNotFound, diags.Errors[1].Code)
	assert.Empty(t, diags.Infos)
}

func TestExplainByValue(t *testing.T) {
	t.Parallel()

	diags := magic.Explain(sample{}, "Name")
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeNotAddressable, diags.Warnings[0].Code)
	assert.True(t, diags.IsValid())
}

func TestExplainNil(t *testing.T) {
	t.Parallel()

	diags := magic.Explain(nil)
	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Infos)
}

func ExampleExplain() {
	type Order struct {
		Reference string
		Total     float64
		Items     []string
	}

	diags := magic.Explain(&Order{})
	for _, d := range diags.Infos {
		fmt.Println(d)
	}
	fmt.Println(diags.Error())

	// Output:
	// [magic_test.Order] Reference: [rule] bewitched as KindString (text)
	// [magic_test.Order] Total: [rule] bewitched as KindFloat64 (64-bit floating point)
	// [magic_test.Order] Items: [unsupported-type] no rule for type []string
}
