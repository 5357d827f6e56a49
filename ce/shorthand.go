package ce

import (
	"fmt"
	"strings"

	"github.com/vegasq/godap/model"
)

// FixShorthand expands projection items that request a variable by its
// bare name instead of its full id. Clients use this "shorthand
// notation"; it is resolved by walking the dataset for a variable with a
// matching name. A name matching more than one variable is an error.
func FixShorthand(projection Projection, dataset *model.DatasetType) (Projection, error) {
	out := make(Projection, 0, len(projection))
	for _, item := range projection {
		if item.Call == "" && len(item.Path) == 1 && !dataset.Has(item.Path[0].Name) {
			expanded, err := expandShorthand(item.Path[0], dataset)
			if err != nil {
				return nil, err
			}
			if expanded != nil {
				item = Item{Path: expanded}
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// expandShorthand finds the unique variable named like seg and rebuilds
// the full path to it, keeping the segment's slices on the last step.
// A nil result means no variable matched; the item is left as is.
func expandShorthand(seg Segment, dataset *model.DatasetType) ([]Segment, error) {
	var found []Segment
	for _, node := range model.Walk(dataset)[1:] {
		if node.Name() != seg.Name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: ambiguous shorthand notation request: %s", ErrParse, seg.Name)
		}
		parents := strings.Split(node.ID(), ".")
		found = make([]Segment, 0, len(parents))
		for _, parent := range parents[:len(parents)-1] {
			found = append(found, Segment{Name: parent})
		}
		found = append(found, Segment{Name: seg.Name, Slices: seg.Slices})
	}
	return found, nil
}
