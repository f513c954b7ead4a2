// Package codelabel parses annotated reference source code and serves the
// annotated sources shipped with algoscope.
//
// A line is annotated by a trailing marker comment naming a code label:
//
//	if arr[j] > arr[j+1] { // @label:compare
//	if arr[j] > arr[j+1]:  # @label:compare
//	if (a > b) {           /* @label:compare */
//
// Parse strips the marker from the line and records the 0-based line index
// for the label. Step generators set Step.CodeLabel to one of these names so
// a viewer can highlight the executing line in whichever language is shown.
//
// Reference sources live under sources/<algorithm-id>/<language>.txt and are
// embedded into the binary. They are plain text and never compiled.
package codelabel
