package event

// Kind identifies a decoded event. The zero value is not a valid event and is used
// by opcode tables to mark unmapped bytes.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNote

	KindTempo
	KindTempoFade
	KindVolume
	KindVolumeFade
	KindVolumeAlt
	KindPan
	KindPanFade
	KindMasterVolume
	KindIgnoreMasterVolume
	KindIgnoreMasterVolumeByProgNum

	KindEchoVolume
	KindEchoVolumeFade
	KindEchoFeedback
	KindEchoFIR
	KindEchoFeedbackFIR
	KindEchoFeedbackFade
	KindEchoFIRFade
	KindEchoOn
	KindEchoOff

	KindTransposeAbs
	KindTransposeRel
	KindTuning
	KindOctave
	KindOctaveUp
	KindOctaveDown

	KindPitchSlideOn
	KindPitchSlideOff
	KindPitchSlide
	KindVibratoOn
	KindVibratoOff
	KindTremoloOn
	KindTremoloOff
	KindPanLFOOn
	KindPanLFOOnWithDelay
	KindPanLFOOff

	KindNoiseFreq
	KindNoiseOn
	KindNoiseOff
	KindPitchModOn
	KindPitchModOff

	KindProgChange
	KindVolumeEnvelope
	KindGainRelease
	KindDurationRate
	KindADSRAttack
	KindADSRDecay
	KindADSRSustainLevel
	KindADSRSustainRate
	KindADSRDefault

	KindSlurOn
	KindSlurOff
	KindLegatoOn
	KindLegatoOff
	KindPercussionOn
	KindPercussionOff
	KindOneTimeDuration

	KindLoopStart
	KindLoopEnd
	KindLoopBreak
	KindGoto
	KindEnd

	KindJumpToSFXLo
	KindJumpToSFXHi
	KindPlaySFX
	KindCPUControlledSetValue
	KindCPUControlledJump
	KindCPUControlledJumpV2
	KindIncCPUSharedCounter
	KindZeroCPUSharedCounter

	KindNop
	KindNop1
	KindUnknown1
	KindUnknown2

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid: "EVENT_INVALID",
	KindNote:    "EVENT_NOTE",

	KindTempo:                       "EVENT_TEMPO",
	KindTempoFade:                   "EVENT_TEMPO_FADE",
	KindVolume:                      "EVENT_VOLUME",
	KindVolumeFade:                  "EVENT_VOLUME_FADE",
	KindVolumeAlt:                   "EVENT_VOLUME_ALT",
	KindPan:                         "EVENT_PAN",
	KindPanFade:                     "EVENT_PAN_FADE",
	KindMasterVolume:                "EVENT_MASTER_VOLUME",
	KindIgnoreMasterVolume:          "EVENT_IGNORE_MASTER_VOLUME",
	KindIgnoreMasterVolumeByProgNum: "EVENT_IGNORE_MASTER_VOLUME_BY_PROGNUM",

	KindEchoVolume:       "EVENT_ECHO_VOLUME",
	KindEchoVolumeFade:   "EVENT_ECHO_VOLUME_FADE",
	KindEchoFeedback:     "EVENT_ECHO_FEEDBACK",
	KindEchoFIR:          "EVENT_ECHO_FIR",
	KindEchoFeedbackFIR:  "EVENT_ECHO_FEEDBACK_FIR",
	KindEchoFeedbackFade: "EVENT_ECHO_FEEDBACK_FADE",
	KindEchoFIRFade:      "EVENT_ECHO_FIR_FADE",
	KindEchoOn:           "EVENT_ECHO_ON",
	KindEchoOff:          "EVENT_ECHO_OFF",

	KindTransposeAbs: "EVENT_TRANSPOSE_ABS",
	KindTransposeRel: "EVENT_TRANSPOSE_REL",
	KindTuning:       "EVENT_TUNING",
	KindOctave:       "EVENT_OCTAVE",
	KindOctaveUp:     "EVENT_OCTAVE_UP",
	KindOctaveDown:   "EVENT_OCTAVE_DOWN",

	KindPitchSlideOn:      "EVENT_PITCH_SLIDE_ON",
	KindPitchSlideOff:     "EVENT_PITCH_SLIDE_OFF",
	KindPitchSlide:        "EVENT_PITCH_SLIDE",
	KindVibratoOn:         "EVENT_VIBRATO_ON",
	KindVibratoOff:        "EVENT_VIBRATO_OFF",
	KindTremoloOn:         "EVENT_TREMOLO_ON",
	KindTremoloOff:        "EVENT_TREMOLO_OFF",
	KindPanLFOOn:          "EVENT_PAN_LFO_ON",
	KindPanLFOOnWithDelay: "EVENT_PAN_LFO_ON_WITH_DELAY",
	KindPanLFOOff:         "EVENT_PAN_LFO_OFF",

	KindNoiseFreq:   "EVENT_NOISE_FREQ",
	KindNoiseOn:     "EVENT_NOISE_ON",
	KindNoiseOff:    "EVENT_NOISE_OFF",
	KindPitchModOn:  "EVENT_PITCHMOD_ON",
	KindPitchModOff: "EVENT_PITCHMOD_OFF",

	KindProgChange:       "EVENT_PROGCHANGE",
	KindVolumeEnvelope:   "EVENT_VOLUME_ENVELOPE",
	KindGainRelease:      "EVENT_GAIN_RELEASE",
	KindDurationRate:     "EVENT_DURATION_RATE",
	KindADSRAttack:       "EVENT_ADSR_AR",
	KindADSRDecay:        "EVENT_ADSR_DR",
	KindADSRSustainLevel: "EVENT_ADSR_SL",
	KindADSRSustainRate:  "EVENT_ADSR_SR",
	KindADSRDefault:      "EVENT_ADSR_DEFAULT",

	KindSlurOn:          "EVENT_SLUR_ON",
	KindSlurOff:         "EVENT_SLUR_OFF",
	KindLegatoOn:        "EVENT_LEGATO_ON",
	KindLegatoOff:       "EVENT_LEGATO_OFF",
	KindPercussionOn:    "EVENT_PERC_ON",
	KindPercussionOff:   "EVENT_PERC_OFF",
	KindOneTimeDuration: "EVENT_ONETIME_DURATION",

	KindLoopStart: "EVENT_LOOP_START",
	KindLoopEnd:   "EVENT_LOOP_END",
	KindLoopBreak: "EVENT_LOOP_BREAK",
	KindGoto:      "EVENT_GOTO",
	KindEnd:       "EVENT_END",

	KindJumpToSFXLo:           "EVENT_JUMP_TO_SFX_LO",
	KindJumpToSFXHi:           "EVENT_JUMP_TO_SFX_HI",
	KindPlaySFX:               "EVENT_PLAY_SFX",
	KindCPUControlledSetValue: "EVENT_CPU_CONTROLLED_SET_VALUE",
	KindCPUControlledJump:     "EVENT_CPU_CONTROLLED_JUMP",
	KindCPUControlledJumpV2:   "EVENT_CPU_CONTROLLED_JUMP_V2",
	KindIncCPUSharedCounter:   "EVENT_INC_CPU_SHARED_COUNTER",
	KindZeroCPUSharedCounter:  "EVENT_ZERO_CPU_SHARED_COUNTER",

	KindNop:      "EVENT_NOP",
	KindNop1:     "EVENT_NOP1",
	KindUnknown1: "EVENT_UNKNOWN1",
	KindUnknown2: "EVENT_UNKNOWN2",
}

// String returns the serialized EVENT_* name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "EVENT_INVALID"
	}
	return kindNames[k]
}

// Valid reports whether k is a real event kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// Terminates reports whether a track ends after this event.
func (k Kind) Terminates() bool {
	return k == KindGoto || k == KindEnd
}

// kinds returns every valid kind in declaration order.
func kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindNote; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
