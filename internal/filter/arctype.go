package filter

import (
	"slices"

	"arcqa/internal/model"
)

// delayFamily lists the arc kinds that the template vocabulary calls
// "delay" or "slew".
var delayFamily = []model.ArcType{
	model.ArcCombinational,
	model.ArcCombinationalFall,
	model.ArcCombinationalRise,
	model.ArcFallingEdge,
	model.ArcRisingEdge,
	model.ArcThreeStateDisable,
	model.ArcThreeStateEnable,
	model.ArcClear,
	model.ArcPreset,
}

// edgeFamilies are bare constraint names that stand for their _rising and
// _falling kinds.
var edgeFamilies = []string{
	"setup",
	"hold",
	"recovery",
	"removal",
	"non_seq_setup",
	"non_seq_hold",
}

// ExpandArcTypes turns requested template vocabulary into the set of arc
// type names it accepts.
func ExpandArcTypes(requested []string) map[string]struct{} {
	set := make(map[string]struct{}, len(requested))

	for _, r := range requested {
		set[r] = struct{}{}

		switch {
		case r == "delay" || r == "slew":
			for _, t := range delayFamily {
				set[t.String()] = struct{}{}
			}

		case slices.Contains(edgeFamilies, r):
			set[r+"_rising"] = struct{}{}
			set[r+"_falling"] = struct{}{}
		}
	}

	return set
}

// IsArcTypeRequest reports whether name is accepted in a requested arc type
// list: an arc type name, "delay", "slew" or a bare edge family.
func IsArcTypeRequest(name string) bool {
	if name == "delay" || name == "slew" || slices.Contains(edgeFamilies, name) {
		return true
	}

	_, err := model.ParseArcType(name)

	return err == nil
}

// IsValidArcType reports whether typ is covered by the requested types.
func IsValidArcType(typ model.ArcType, requested []string) bool {
	_, ok := ExpandArcTypes(requested)[typ.String()]
	return ok
}
