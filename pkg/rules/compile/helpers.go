package compile

import "github.com/kaigoshift/kaigoshift/pkg/model"

// shiftBoolSet turns a shift-code slice into the map[ShiftCode]bool
// shape Grid.WorkExpr and Grid.TotalWorkExpr expect.
func shiftBoolSet(codes []model.ShiftCode) map[model.ShiftCode]bool {
	set := make(map[model.ShiftCode]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}
