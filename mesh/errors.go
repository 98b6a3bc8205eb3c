package mesh

import "errors"

// ErrNoSignChange is returned by Leaf when none of a cell's 12 edges
// cross zero, despite the caller having classified the cell as a
// surface-bearing leaf. This signals a caller/classifier mismatch
// (the cell should have been Empty or Full), not a geometry failure.
var ErrNoSignChange = errors.New("mesh: no edge sign change in leaf cell")
