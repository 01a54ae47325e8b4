package track

import "fmt"

// Issue codes reported by Validate.
const (
	IssueOutOfBounds = "OUT_OF_BOUNDS"
	IssueDuplicate   = "DUPLICATE"
	IssueAlias       = "ALIAS"
)

// Issue describes a problem found in level tile data.
type Issue struct {
	Code    string
	Message string
	Index   int // Position of the offending tile in the input list
}

func (e Issue) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks tile data against the grid's indexing rules.
// Checks:
//   - every tile lies inside the map bounds
//   - no position appears twice (the later tile wins)
//   - no two distinct positions share a flattened index
func Validate(tiles []Tile) []Issue {
	var issues []Issue
	seen := make(map[int]int, len(tiles)) // flattened index -> tile list position

	for i, t := range tiles {
		if !InBounds(t.Col, t.Row) {
			issues = append(issues, Issue{
				Code:    IssueOutOfBounds,
				Message: fmt.Sprintf("tile %d at [%d, %d] is outside the %dx%d map", i, t.Col, t.Row, MapCols, MapRows),
				Index:   i,
			})
		}

		idx := Flatten(t.Col, t.Row)
		prev, ok := seen[idx]
		seen[idx] = i
		if !ok {
			continue
		}

		p := tiles[prev]
		if p.Col == t.Col && p.Row == t.Row {
			issues = append(issues, Issue{
				Code:    IssueDuplicate,
				Message: fmt.Sprintf("tile %d at [%d, %d] replaces tile %d", i, t.Col, t.Row, prev),
				Index:   i,
			})
			continue
		}
		issues = append(issues, Issue{
			Code: IssueAlias,
			Message: fmt.Sprintf("tile %d at [%d, %d] shares index %d with tile %d at [%d, %d] and replaces it",
				i, t.Col, t.Row, idx, prev, p.Col, p.Row),
			Index: i,
		})
	}

	return issues
}
