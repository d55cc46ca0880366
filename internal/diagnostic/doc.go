// Package diagnostic provides structured errors, warnings and infos
// explaining how the fields of a target would be bewitched.
//
// Key capabilities:
//   - Fields without an assignment rule
//   - Requested fields missing from the target
//   - Targets whose fields cannot be written
//   - Which rule applies to every supported field
package diagnostic
