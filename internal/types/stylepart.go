package types

// StylePart is one of the seventeen named style sections a CSEG can be
// declared for.
//
// IntroD and EndingD only exist on some instrument generations, and
// FillInBA is the section marketed as "Break".
type StylePart int

const (
	PartIntroA StylePart = iota
	PartIntroB
	PartIntroC
	PartIntroD
	PartMainA
	PartMainB
	PartMainC
	PartMainD
	PartFillInAA
	PartFillInBB
	PartFillInCC
	PartFillInDD
	PartFillInBA
	PartEndingA
	PartEndingB
	PartEndingC
	PartEndingD
)

var stylePartNames = map[StylePart]string{
	PartIntroA:   "Intro A",
	PartIntroB:   "Intro B",
	PartIntroC:   "Intro C",
	PartIntroD:   "Intro D",
	PartMainA:    "Main A",
	PartMainB:    "Main B",
	PartMainC:    "Main C",
	PartMainD:    "Main D",
	PartFillInAA: "Fill In AA",
	PartFillInBB: "Fill In BB",
	PartFillInCC: "Fill In CC",
	PartFillInDD: "Fill In DD",
	PartFillInBA: "Fill In BA",
	PartEndingA:  "Ending A",
	PartEndingB:  "Ending B",
	PartEndingC:  "Ending C",
	PartEndingD:  "Ending D",
}

var stylePartCodes = func() map[string]StylePart {
	m := make(map[string]StylePart, len(stylePartNames))
	for part, name := range stylePartNames {
		m[name] = part
	}
	return m
}()

// String returns the part name as it appears in Sdec declarations.
func (p StylePart) String() string {
	if name, ok := stylePartNames[p]; ok {
		return name
	}
	return "StylePart(?)"
}

// StylePartByName maps an Sdec token to its StylePart. The match is
// case-sensitive, as in the format itself.
func StylePartByName(name string) (StylePart, bool) {
	part, ok := stylePartCodes[name]
	return part, ok
}
