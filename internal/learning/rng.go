package learning

const (
	lcgMultiplier uint32 = 1103515245
	lcgIncrement  uint32 = 12345
)

// PseudoRandom is the replayable draw used everywhere a race needs chance.
// Arithmetic wraps at 32 bits. A zero modulus yields zero.
func PseudoRandom(seed, modulus uint32) uint32 {
	if modulus == 0 {
		return 0
	}
	return (lcgMultiplier*seed + lcgIncrement) % modulus
}

// AgentSeed derives the per-agent draw seed for a tick
func AgentSeed(tick int, agentID uint32) uint32 {
	return uint32(tick) * agentID
}
