package errors

import "fmt"

var (
	ErrBackendUnavailable = fmt.Errorf("backend unavailable")
	ErrModelNotReady      = fmt.Errorf("model not ready")
	ErrGenerationFailed   = fmt.Errorf("generation failed")
	ErrUnknownProfile     = fmt.Errorf("unknown domain profile")
)
