package reverb

import "github.com/cwbudde/algo-fxengine/dsp/fxengine"

// ArenaSize is the number of storage slots a Reverb partitions.
const ArenaSize = 16384

// Delay lines in arena order.
const (
	lineAP1 = iota
	lineAP2
	lineAP3
	lineAP4
	lineDAP1A
	lineDAP1B
	lineDel1
	lineDAP2A
	lineDAP2B
	lineDel2

	numLines
)

// Reserved lengths in samples.
var lineReservations = [numLines]fxengine.Reservation{
	lineAP1:   {Name: "ap1", Length: 113},
	lineAP2:   {Name: "ap2", Length: 162},
	lineAP3:   {Name: "ap3", Length: 241},
	lineAP4:   {Name: "ap4", Length: 399},
	lineDAP1A: {Name: "dap1a", Length: 1653},
	lineDAP1B: {Name: "dap1b", Length: 2038},
	lineDel1:  {Name: "del1", Length: 3411},
	lineDAP2A: {Name: "dap2a", Length: 1913},
	lineDAP2B: {Name: "dap2b", Length: 1663},
	lineDel2:  {Name: "del2", Length: 4782},
}

// allPassStage is one diffuser: the delayed sample is read with
// readSign*diffusion and the all-pass write uses writeSign*diffusion.
type allPassStage struct {
	line      int
	readSign  float64
	writeSign float64
}

var (
	inputDiffusers = [...]allPassStage{
		{line: lineAP1, readSign: 1, writeSign: -1},
		{line: lineAP2, readSign: 1, writeSign: -1},
		{line: lineAP3, readSign: 1, writeSign: -1},
		{line: lineAP4, readSign: 1, writeSign: -1},
	}
	loopADiffusers = [...]allPassStage{
		{line: lineDAP1A, readSign: -1, writeSign: 1},
		{line: lineDAP1B, readSign: 1, writeSign: -1},
	}
	loopBDiffusers = [...]allPassStage{
		{line: lineDAP2A, readSign: 1, writeSign: -1},
		{line: lineDAP2B, readSign: -1, writeSign: 1},
	}
)

const (
	// ap1 is read around smearDelay samples, swept by smearDepth samples of
	// LFO1, and the result is written back smearWriteOffset samples deep.
	smearDelay       = 10.0
	smearDepth       = 60.0
	smearWriteOffset = 100.0

	// Loop A reads del2 at loopDelay samples swept by loopDepth samples of
	// LFO2.
	loopDelay = 4683.0
	loopDepth = 100.0

	// Each loop stores its output unscaled and hands twice that value to the
	// wet mix.
	loopWetGain = 2.0
)
