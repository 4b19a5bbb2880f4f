// Package mapper converts backend wire records into the grid-editable view
// records used by the console editors, and reduces edited views back into
// wire records at save time.
//
// Every function is pure: inputs are deep copied, nothing performs I/O, and
// calling a function twice with the same input yields the same output.
package mapper
