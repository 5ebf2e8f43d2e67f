package typemeta

import "fmt"

// Capability names an erased operation a stored type may or may not support.
type Capability string

const (
	// CapabilityConstruct is violated when Construct is invoked for a type
	// that opted out of zero initialization.
	CapabilityConstruct Capability = "is not default-constructible"
	// CapabilityCopy is violated when Copy is invoked for a type that must
	// not be copy-assigned.
	CapabilityCopy Capability = "does not allow assignment"
)

// CapabilityError reports an erased operation invoked on a type that does not
// support it. Descriptors exist for every type, including ones that cannot be
// constructed or copied, so the violation is detected at call time rather
// than at registration time. It indicates a programming error at the call
// site and is not retryable.
type CapabilityError struct {
	// TypeName is the offending type, as reported by the descriptor.
	TypeName string
	// Capability is the operation the type does not support.
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("typemeta: type %s %s", e.TypeName, e.Capability)
}
