package profiling

import (
	"github.com/jonathan/voice-mirror/internal/types"
)

// Merge combines the aggregated structural metrics and the qualitative style
// profile into the canonical style signature. Pure and deterministic: no
// model calls, no mutation of its inputs. Unknown extra keys captured from
// the model response travel with the profile; the structural fields are typed
// numerics so the merged record always carries them.
func Merge(structural types.StructuralMetrics, style *types.StyleProfile) *types.StyleSignature {
	return &types.StyleSignature{
		StyleProfile:      *style,
		StructuralMetrics: structural,
	}
}
