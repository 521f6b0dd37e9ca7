package profile

import "github.com/valerio/go-akao/akao/event"

var durationsV1 = []int{
	0xC0, 0x90, 0x60, 0x48, 0x40, 0x30, 0x24, 0x20,
	0x18, 0x10, 0x0C, 0x08, 0x06, 0x04, 0x03,
}

// v2 and v3 swap the 4th/5th and 7th/8th entries of the v1 table
var durationsV23 = []int{
	0xC0, 0x90, 0x60, 0x40, 0x48, 0x30, 0x20, 0x24,
	0x18, 0x10, 0x0C, 0x08, 0x06, 0x04, 0x03,
}

var durationsV4 = []int{
	0xC0, 0x60, 0x40, 0x48, 0x30, 0x20, 0x24, 0x18,
	0x10, 0x0C, 0x08, 0x06, 0x04, 0x03,
}

var notesV12 = []string{
	"C", "C#", "D", "E", "E#", "F", "F#", "G", "G#", "A", "A#", "B",
	"REST", "TIE",
}

var notesV34 = []string{
	"C", "C#", "D", "E", "E#", "F", "F#", "G", "G#", "A", "A#", "B",
	"TIE", "REST",
}

// Final Fantasy IV command set, as mapped by VGMTrans (AkaoSnesSeq.cpp, AKAOSNES_V1).
// 0xE3-0xE5 are unused by the driver and 0xF6-0xFF all stop the channel.
var opcodesV1 = map[uint8]event.Kind{
	0xD2: event.KindTempoFade,
	0xD3: event.KindNop1,
	0xD4: event.KindEchoVolume,
	0xD5: event.KindEchoFeedbackFIR,
	0xD6: event.KindPitchSlideOn,
	0xD7: event.KindTremoloOn,
	0xD8: event.KindVibratoOn,
	0xD9: event.KindPanLFOOnWithDelay,
	0xDA: event.KindOctave,
	0xDB: event.KindProgChange,
	0xDC: event.KindVolumeEnvelope,
	0xDD: event.KindGainRelease,
	0xDE: event.KindDurationRate,
	0xDF: event.KindNoiseFreq,
	0xE0: event.KindLoopStart,
	0xE1: event.KindOctaveUp,
	0xE2: event.KindOctaveDown,
	0xE3: event.KindNop,
	0xE4: event.KindNop,
	0xE5: event.KindNop,
	0xE6: event.KindPitchSlideOff,
	0xE7: event.KindTremoloOff,
	0xE8: event.KindVibratoOff,
	0xE9: event.KindPanLFOOff,
	0xEA: event.KindEchoOn,
	0xEB: event.KindEchoOff,
	0xEC: event.KindNoiseOn,
	0xED: event.KindNoiseOff,
	0xEE: event.KindPitchModOn,
	0xEF: event.KindPitchModOff,
	0xF0: event.KindLoopEnd,
	0xF1: event.KindEnd,
	0xF2: event.KindVolumeFade,
	0xF3: event.KindPanFade,
	0xF4: event.KindGoto,
	0xF5: event.KindLoopBreak,
	0xF6: event.KindEnd,
	0xF7: event.KindEnd,
	0xF8: event.KindEnd,
	0xF9: event.KindEnd,
	0xFA: event.KindEnd,
	0xFB: event.KindEnd,
	0xFC: event.KindEnd,
	0xFD: event.KindEnd,
	0xFE: event.KindEnd,
	0xFF: event.KindEnd,
}

var opcodesV2 = map[uint8]event.Kind{
	0xD2: event.KindTempo,
	0xD3: event.KindTempoFade,
	0xD4: event.KindVolume,
	0xD5: event.KindVolumeFade,
	0xD6: event.KindPan,
	0xD7: event.KindPanFade,
	0xD8: event.KindEchoVolume,
	0xD9: event.KindEchoVolumeFade,
	0xDA: event.KindTransposeAbs,
	0xDB: event.KindPitchSlideOn,
	0xDC: event.KindPitchSlideOff,
	0xDD: event.KindTremoloOn,
	0xDE: event.KindTremoloOff,
	0xDF: event.KindVibratoOn,
	0xE0: event.KindVibratoOff,
	0xE1: event.KindNoiseFreq,
	0xE2: event.KindNoiseOn,
	0xE3: event.KindNoiseOff,
	0xE4: event.KindPitchModOn,
	0xE5: event.KindPitchModOff,
	0xE6: event.KindEchoFeedbackFIR,
	0xE7: event.KindEchoOn,
	0xE8: event.KindEchoOff,
	0xE9: event.KindPanLFOOn,
	0xEA: event.KindPanLFOOff,
	0xEB: event.KindOctave,
	0xEC: event.KindOctaveUp,
	0xED: event.KindOctaveDown,
	0xEE: event.KindLoopStart,
	0xEF: event.KindLoopEnd,
	0xF0: event.KindLoopBreak,
	0xF1: event.KindGoto,
	0xF2: event.KindSlurOn,
	0xF3: event.KindProgChange,
	0xF4: event.KindVolumeEnvelope,
	0xF5: event.KindSlurOff,
	0xF6: event.KindUnknown2,
	0xF7: event.KindTuning,
	0xF8: event.KindEnd,
	0xF9: event.KindEnd,
	0xFA: event.KindEnd,
	0xFB: event.KindEnd,
	0xFC: event.KindEnd,
	0xFD: event.KindEnd,
	0xFE: event.KindEnd,
	0xFF: event.KindEnd,
}

// shared by every version 4 game, 0xF4 and up differ per game
var opcodesV4Common = map[uint8]event.Kind{
	0xC4: event.KindVolume,
	0xC5: event.KindVolumeFade,
	0xC6: event.KindPan,
	0xC7: event.KindPanFade,
	0xC8: event.KindPitchSlide,
	0xC9: event.KindVibratoOn,
	0xCA: event.KindVibratoOff,
	0xCB: event.KindTremoloOn,
	0xCC: event.KindTremoloOff,
	0xCD: event.KindPanLFOOn,
	0xCE: event.KindPanLFOOff,
	0xCF: event.KindNoiseFreq,
	0xD0: event.KindNoiseOn,
	0xD1: event.KindNoiseOff,
	0xD2: event.KindPitchModOn,
	0xD3: event.KindPitchModOff,
	0xD4: event.KindEchoOn,
	0xD5: event.KindEchoOff,
	0xD6: event.KindOctave,
	0xD7: event.KindOctaveUp,
	0xD8: event.KindOctaveDown,
	0xD9: event.KindTransposeAbs,
	0xDA: event.KindTransposeRel,
	0xDB: event.KindTuning,
	0xDC: event.KindProgChange,
	0xDD: event.KindADSRAttack,
	0xDE: event.KindADSRDecay,
	0xDF: event.KindADSRSustainLevel,
	0xE0: event.KindADSRSustainRate,
	0xE1: event.KindADSRDefault,
	0xE2: event.KindLoopStart,
	0xE3: event.KindLoopEnd,
	0xE4: event.KindSlurOn,
	0xE5: event.KindSlurOff,
	0xE6: event.KindLegatoOn,
	0xE7: event.KindLegatoOff,
	0xE8: event.KindOneTimeDuration,
	0xE9: event.KindJumpToSFXLo,
	0xEA: event.KindJumpToSFXHi,
	0xEB: event.KindEnd,
	0xEC: event.KindEnd,
	0xED: event.KindEnd,
	0xEE: event.KindEnd,
	0xEF: event.KindEnd,
	0xF0: event.KindTempo,
	0xF1: event.KindTempoFade,
	0xF2: event.KindEchoVolume,
	0xF3: event.KindEchoVolumeFade,
}

var opcodesFinalFantasy6 = map[uint8]event.Kind{
	0xF4: event.KindMasterVolume,
	0xF5: event.KindLoopBreak,
	0xF6: event.KindGoto,
	0xF7: event.KindEchoFeedbackFade,
	0xF8: event.KindEchoFIRFade,
	0xF9: event.KindIncCPUSharedCounter,
	0xFA: event.KindZeroCPUSharedCounter,
	0xFB: event.KindIgnoreMasterVolume,
	0xFC: event.KindCPUControlledJump,
	0xFD: event.KindEnd,
	0xFE: event.KindEnd,
	0xFF: event.KindEnd,
}

var opcodesChronoTrigger = map[uint8]event.Kind{
	0xF4: event.KindMasterVolume,
	0xF5: event.KindLoopBreak,
	0xF6: event.KindGoto,
	0xF7: event.KindEchoFeedbackFade,
	0xF8: event.KindEchoFIRFade,
	0xF9: event.KindCPUControlledSetValue,
	0xFA: event.KindCPUControlledJumpV2,
	0xFB: event.KindPercussionOn,
	0xFC: event.KindPercussionOff,
	0xFD: event.KindVolumeAlt,
	0xFE: event.KindEnd,
	0xFF: event.KindEnd,
}

var layoutsV4 = map[event.Kind]event.Layout{
	event.KindPitchSlide: event.UnsignedPitchSlide,
}
