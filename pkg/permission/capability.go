package permission

//go:generate go run github.com/dmarkham/enumer -type Capability -trimprefix Capability -transform upper -json -yaml -output capability.gen.go

// Capability is one of the named lockable-resources permissions.
type Capability int

const (
	CapabilityUnlock Capability = iota
	CapabilityReset
	CapabilitySteal
	CapabilityReassign
	CapabilityReserve
	CapabilityUnreserve
	CapabilityEdit
	CapabilityAdminister
)
