package board

import (
	"fmt"

	"go.uber.org/zap"
)

// logger is the package-level structured logger used only at the
// construction-error reporting site (spec.md section 7); it never appears
// on the make/unmake/eval/SEE hot paths. It defaults to a no-op so this
// package stays silent unless a caller opts in.
var logger = zap.NewNop()

// SetLogger overrides the logger used to report construction failures.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// ConstructionError reports why New failed to build a Board from its input
// vector: too few entries, or a missing king. Both are fatal at
// construction time per spec.md section 7.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("board: construction failed: %s", e.Reason)
}

func newConstructionError(reason string, fields ...zap.Field) error {
	logger.Error("board construction failed", append(fields, zap.String("reason", reason))...)
	return &ConstructionError{Reason: reason}
}
