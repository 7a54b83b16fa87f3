package notification

import (
	"errors"
	"fmt"
)

type PermissionStatus struct {
	v string
}

var (
	PermissionUndetermined = PermissionStatus{v: "undetermined"}
	PermissionGranted      = PermissionStatus{v: "granted"}
	PermissionDenied       = PermissionStatus{v: "denied"}
)

var ErrParsePermissionStatus = errors.New("invalid permission status")

func ParsePermissionStatus(value string) (PermissionStatus, error) {
	switch value {
	case PermissionUndetermined.v:
		return PermissionUndetermined, nil
	case PermissionGranted.v:
		return PermissionGranted, nil
	case PermissionDenied.v:
		return PermissionDenied, nil
	default:
		return PermissionUndetermined, fmt.Errorf("%w: %q", ErrParsePermissionStatus, value)
	}
}

func (s PermissionStatus) String() string {
	return s.v
}

func (s PermissionStatus) IsGranted() bool {
	return s == PermissionGranted
}
