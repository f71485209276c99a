package convert

import "fmt"

// Stages reported by ConversionError.
const (
	StageAssemble = "assemble"
	StageWrite    = "write"
	StageConvert  = "convert"
	StageVerify   = "verify"
	StageRead     = "read"
)

// ConversionError carries the failing stage and the converter's output.
type ConversionError struct {
	Stage  string
	Stdout string
	Stderr string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed at %s: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
