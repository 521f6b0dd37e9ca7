package event

// Field describes one operand of an event as it is stored in the byte stream.
type Field struct {
	Name      string
	Width     int // 1 or 2 bytes
	Signed    bool
	BigEndian bool
}

// Layout is the ordered list of operands following an opcode byte.
type Layout []Field

// Size returns the number of operand bytes the layout consumes.
func (l Layout) Size() int {
	n := 0
	for _, f := range l {
		n += f.Width
	}
	return n
}

// Operand field names, as they appear in serialized instructions.
const (
	FieldArg1      = "arg1"
	FieldArg2      = "arg2"
	FieldLength    = "length"
	FieldValue     = "value"
	FieldSemitones = "semitones"
	FieldDelay     = "delay"
	FieldRate      = "rate"
	FieldDepth     = "depth"
	FieldFeedback  = "feedback"
	FieldFIR       = "fir"
	FieldAddr      = "addr"
)

func u8(name string) Field    { return Field{Name: name, Width: 1} }
func i8(name string) Field    { return Field{Name: name, Width: 1, Signed: true} }
func u16be(name string) Field { return Field{Name: name, Width: 2, BigEndian: true} }

var (
	layoutNone       = Layout{}
	layoutValue      = Layout{u8(FieldValue)}
	layoutSigned     = Layout{i8(FieldValue)}
	layoutArgs       = Layout{u8(FieldArg1), u8(FieldArg2)}
	layoutFade       = Layout{u8(FieldLength), u8(FieldValue)}
	layoutSignedFade = Layout{u8(FieldLength), i8(FieldValue)}
	layoutLongFade   = Layout{u16be(FieldLength), u8(FieldValue)}
	layoutSlideOn    = Layout{i8(FieldSemitones), u8(FieldDelay), u8(FieldLength)}
	layoutSlide      = Layout{u8(FieldLength), i8(FieldSemitones)}
	layoutLFO        = Layout{u8(FieldDelay), u8(FieldRate), u8(FieldDepth)}
	layoutPanLFO     = Layout{u8(FieldDepth), u8(FieldRate)}
	layoutFeedback   = Layout{i8(FieldFeedback), u8(FieldFIR)}
	layoutBranch     = Layout{u8(FieldValue), u16be(FieldAddr)}
	layoutJump       = Layout{u16be(FieldAddr)}
)

// UnsignedPitchSlide is the short pitch slide form used by the version 4 driver,
// which stores the semitone count unsigned.
var UnsignedPitchSlide = Layout{u8(FieldLength), u8(FieldSemitones)}

// canonical operand layouts, kinds missing here take no operands
var layouts = map[Kind]Layout{
	KindUnknown2: layoutArgs,

	KindVolumeFade: layoutFade,
	KindPanFade:    layoutFade,
	KindTempoFade:  layoutFade,

	KindEchoVolumeFade: layoutSignedFade,

	KindPitchSlideOn: layoutSlideOn,
	KindPitchSlide:   layoutSlide,

	KindVibratoOn:         layoutLFO,
	KindTremoloOn:         layoutLFO,
	KindPanLFOOnWithDelay: layoutLFO,
	KindPanLFOOn:          layoutPanLFO,

	KindEchoFeedbackFIR:  layoutFeedback,
	KindEchoFeedbackFade: layoutLongFade,
	KindEchoFIRFade:      layoutLongFade,

	KindLoopBreak:           layoutBranch,
	KindCPUControlledJumpV2: layoutBranch,
	KindGoto:                layoutJump,
	KindCPUControlledJump:   layoutJump,

	KindUnknown1:                    layoutValue,
	KindNop1:                        layoutValue,
	KindVolume:                      layoutValue,
	KindPan:                         layoutValue,
	KindNoiseFreq:                   layoutValue,
	KindOctave:                      layoutValue,
	KindTuning:                      layoutValue,
	KindProgChange:                  layoutValue,
	KindVolumeEnvelope:              layoutValue,
	KindGainRelease:                 layoutValue,
	KindDurationRate:                layoutValue,
	KindADSRAttack:                  layoutValue,
	KindADSRDecay:                   layoutValue,
	KindADSRSustainLevel:            layoutValue,
	KindADSRSustainRate:             layoutValue,
	KindLoopStart:                   layoutValue,
	KindOneTimeDuration:             layoutValue,
	KindJumpToSFXLo:                 layoutValue,
	KindJumpToSFXHi:                 layoutValue,
	KindPlaySFX:                     layoutValue,
	KindTempo:                       layoutValue,
	KindEchoVolume:                  layoutValue,
	KindMasterVolume:                layoutValue,
	KindEchoFeedback:                layoutValue,
	KindEchoFIR:                     layoutValue,
	KindCPUControlledSetValue:       layoutValue,
	KindIgnoreMasterVolumeByProgNum: layoutValue,
	KindVolumeAlt:                   layoutValue,

	KindTransposeAbs: layoutSigned,
	KindTransposeRel: layoutSigned,
}

// LayoutOf returns the canonical operand layout of a kind.
func LayoutOf(k Kind) Layout {
	if l, ok := layouts[k]; ok {
		return l
	}
	return layoutNone
}
