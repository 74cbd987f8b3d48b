package core

// InstructionKind discriminates playback instructions returned by
// scene updates.
type InstructionKind int

const (
	InstructionPlayMusic InstructionKind = iota
	InstructionPlaySound
)

// Instruction is one playback request produced by a scene update and
// executed by the frame bridge against the resource directory.
type Instruction struct {
	Kind   InstructionKind
	Ticket Ticket

	// Loops is the music repeat count; -1 loops until stopped.
	Loops int

	// Volume is linear in [0, 1].
	Volume float64
}

// PlayMusic builds a music playback instruction.
func PlayMusic(t Ticket, loops int, volume float64) Instruction {
	return Instruction{Kind: InstructionPlayMusic, Ticket: t, Loops: loops, Volume: volume}
}

// PlaySound builds a one-shot sound playback instruction.
func PlaySound(t Ticket, volume float64) Instruction {
	return Instruction{Kind: InstructionPlaySound, Ticket: t, Volume: volume}
}

// Info is an ambient per-frame fact handed to scene updates, sampled
// by the bridge before the update pass.
type Info int

const (
	// InfoMusicStopped reports that no music is playing this frame.
	InfoMusicStopped Info = iota
)
