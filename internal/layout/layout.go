// Package layout groups blocks for rendering: each comment is paired with
// the code block that immediately follows it, when there is one.
package layout

import "weave/model"

// PairGroup couples a comment block with the code it documents. Either side
// may be nil when a block has no partner. Groups are derived transiently for
// rendering and never stored.
type PairGroup struct {
	Comment *model.Block
	Code    *model.Block
}

// Groups consumes blocks left to right with one block of lookahead. A
// comment followed directly by code becomes one pair and the index skips
// two; any other block stands alone and the index advances by one. No
// backtracking, no state beyond the index.
func Groups(blocks []model.Block) []PairGroup {
	var groups []PairGroup
	for i := 0; i < len(blocks); {
		cur := &blocks[i]
		if cur.Kind == model.KindComment && i+1 < len(blocks) && blocks[i+1].Kind == model.KindCode {
			groups = append(groups, PairGroup{Comment: cur, Code: &blocks[i+1]})
			i += 2
			continue
		}
		if cur.Kind == model.KindComment {
			groups = append(groups, PairGroup{Comment: cur})
		} else {
			groups = append(groups, PairGroup{Code: cur})
		}
		i++
	}
	return groups
}
