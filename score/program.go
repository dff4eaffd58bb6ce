package score

import (
	"fmt"
)

// programTemplate is the scoring routine installed into the embedded
// runtime. It is a fixed parameterized template rendered once per
// deployment: the routine takes the bound parameter maps, delegates to the
// deployed model through the modelrt bridge, and leaves the two output
// fields for readback.
const programTemplate = `package main

import "modelrt"

// %[1]s scores one normalized applicant record.
func %[1]s(num map[string]float64, txt map[string]string) (map[string]interface{}, error) {
	label, p, err := modelrt.Predict(num, txt)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"EM_CLASSIFICATION":   label,
		"EM_EVENTPROBABILITY": p,
	}, nil
}
`

// RenderProgram materializes the scoring program source for one deployment's
// routine name.
func RenderProgram(routine string) string {
	return fmt.Sprintf(programTemplate, routine)
}
