package faults

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a system control operation failed
type Kind int

const (
	// None no failure
	None Kind = iota
	// InvalidArgument empty or malformed input
	InvalidArgument
	// UnsupportedPlatform the operating system is not Windows, macOS or Linux
	UnsupportedPlatform
	// LaunchFailed an application could not be spawned
	LaunchFailed
	// CaptureFailed the screen capture tool failed
	CaptureFailed
	// ActionFailed an OS invocation exited non-zero, timed out or could not run
	ActionFailed
	// CommandNotRecognized no trigger matched the command text
	CommandNotRecognized
	// Unsupported the verb has no implementation on the current platform
	Unsupported
)

var kindNames = map[Kind]string{
	None:                 "",
	InvalidArgument:      "InvalidArgument",
	UnsupportedPlatform:  "UnsupportedPlatform",
	LaunchFailed:         "LaunchFailed",
	CaptureFailed:        "CaptureFailed",
	ActionFailed:         "ActionFailed",
	CommandNotRecognized: "CommandNotRecognized",
	Unsupported:          "Unsupported",
}

// String returns the name of the kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name, empty for None
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown fault kind %q", string(b))
}

// Fault an error tagged with a Kind
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap returns the underlying cause
func (f *Fault) Unwrap() error {
	return f.Err
}

// Cause returns the underlying cause, for github.com/pkg/errors
func (f *Fault) Cause() error {
	return f.Err
}

// NewFault creates a fault without cause
func NewFault(kind Kind, desc string) error {
	return &Fault{Kind: kind, Message: desc}
}

// Newf creates a fault with a formatted message
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind, keeping it as the cause
func Wrap(kind Kind, err error, desc string) error {
	if err == nil {
		return nil
	}
	return &Fault{Kind: kind, Message: desc, Err: errors.WithStack(err)}
}

// KindOf returns the kind of the first Fault in err's chain, ActionFailed for
// untagged errors and None for nil
func KindOf(err error) Kind {
	if err == nil {
		return None
	}
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return ActionFailed
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
