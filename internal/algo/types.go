// Package algo implements the three MAPF planners (cooperative/prioritized,
// CBS), the conflict detector they share, and MRTA task allocation.
package algo

import "github.com/elektrokombinacija/mapf-core/internal/core"

// Position aliases core.Position so the algo package reads naturally without
// a core. qualifier on every signature.
type Position = core.Position
