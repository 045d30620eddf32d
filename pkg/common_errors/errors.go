package common_errors

import (
	"golang.org/x/xerrors"
)

var (
	ErrMergingWindowsNotSupported = xerrors.New("merging window definition is not supported by the stateful processor")
	ErrUnrecognizedSerdeFormat    = xerrors.New("Unrecognized serde format")
	ErrUnrecognizedTimeDomain     = xerrors.New("Unrecognized time domain")
	ErrStateSpecAlreadyRegistered = xerrors.New("state spec with the same name is already registered")
	ErrStateSpecNotFound          = xerrors.New("state spec not found in registry")
	ErrTimerServiceClosed         = xerrors.New("timer service is closed")
	ErrNoTimerHandler             = xerrors.New("no timer handler registered")
)

func IsMergingWindowsError(err error) bool {
	return err == ErrMergingWindowsNotSupported
}
