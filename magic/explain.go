package magic

import (
	"fairy-generator/internal/common"
	"fairy-generator/internal/diagnostic"
	"fairy-generator/primitive"
	"fmt"
)

// Explain reports how Bewitch would treat the fields of target without
// touching them: an info for every field with a rule, an error for every
// field without one and for every requested field the target lacks.
func Explain(target any, fieldNames ...string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	owner, ok := indirect(target)
	if !ok {
		return diags
	}

	typeName := common.TypeName(owner.Type())

	if !owner.CanAddr() {
		diags.AddWarning(diagnostic.CodeNotAddressable, "target is passed by value, no field can be written",
			typeName, "", "pass a pointer to the struct")
	}

	fields, err := declaredFields(owner.Type(), fieldNames)
	if err != nil {
		for _, name := range fieldNames {
			if _, err := declaredFields(owner.Type(), []string{name}); err != nil {
				diags.AddError(diagnostic.CodeFieldNotFound, "field is not declared on the target", typeName, name)
			}
		}
		return diags
	}

	for _, f := range fields {
		kind, _, ok := Dispatch(f.Type)
		if !ok {
			diags.AddError(diagnostic.CodeUnsupported, fmt.Sprintf("no rule for type %s", f.Type), typeName, f.Name)
			continue
		}

		diags.AddInfo(diagnostic.CodeRule, fmt.Sprintf("bewitched as %s (%s)", kind, describe(kind)), typeName, f.Name)
	}

	return diags
}

// describe names the shape of values a kind is bewitched with.
func describe(kind primitive.KindEnum) string {
	if kind.IsTemporal() {
		return "temporal"
	}

	if !kind.IsNumber() {
		return "text"
	}

	var class string
	switch {
	case kind.IsInteger():
		class = "integer"
	case kind.IsFloat():
		class = "floating point"
	}

	if kind.Bits() == 0 {
		return "arbitrary precision " + class
	}

	return fmt.Sprintf("%d-bit %s", kind.Bits(), class)
}
