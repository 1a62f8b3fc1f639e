// Package field implements the per-keystroke normalization rules of the card-entry form.
//
// Every rule is total: whatever the user typed or pasted, the result is a displayable
// canonical value. Invalid input is corrected silently (non-digits dropped, overflow
// truncated, an impossible month rolled back to its last valid prefix) instead of being
// reported. Only the expiry rule looks at the previous value, to tell a deletion from an
// insertion.
package field
