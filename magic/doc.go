// Package magic populates struct fields with random values ("bewitching").
//
// A Bewitcher walks the fields declared directly on a struct, resolves each
// field's semantic kind with primitive.FromReflectType and assigns a value
// produced by the rule the dispatch table holds for that kind. Unexported
// fields are reached through a scoped access token that is released before
// the next field is touched.
//
// Without field names the walk is best effort: fields that cannot be
// bewitched are left alone. With field names every requested field must
// succeed or the call fails.
package magic
