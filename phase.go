package resample

// phaseState is the rational-rate advance state machine from spec.md 4.D:
// sampIndex is the read offset into per-channel history, sampPhase selects
// the fractional sub-sample phase within one input-sample interval.
type phaseState struct {
	sampInc   int
	sampFrac  int
	sampIndex int
	sampPhase int
	outRate   int
}

// advance moves the phase state forward by one output sample. A single
// carry is sufficient because sampFrac is always < outRate (spec.md 4.D).
func (p *phaseState) advance() {
	p.sampIndex += p.sampInc
	p.sampPhase += p.sampFrac
	if p.sampPhase >= p.outRate {
		p.sampPhase -= p.outRate
		p.sampIndex++
	}
}
