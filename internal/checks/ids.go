package checks

// Well-known check IDs. The auditor wires tiers from these; keeping them
// here avoids string drift between the builtin package and its consumers.
const (
	IDContainerProbe   = "container-probe"
	IDFirstFrameDecode = "first-frame-decode"
	IDFullDecode       = "full-decode"
)
