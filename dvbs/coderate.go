package dvbs

// CodeRate selects the puncturing pattern applied to the mother rate-1/2
// convolutional code.
type CodeRate int

const (
	Rate1_2 CodeRate = iota
	Rate2_3
	Rate3_4
	Rate5_6
	Rate7_8
)

func (r CodeRate) String() string {
	switch r {
	case Rate1_2:
		return "1/2"
	case Rate2_3:
		return "2/3"
	case Rate3_4:
		return "3/4"
	case Rate5_6:
		return "5/6"
	case Rate7_8:
		return "7/8"
	default:
		return "unknown"
	}
}

// punctureEmit says which of the mother code's two output bits (C1,
// C2) a puncture phase keeps.
type punctureEmit int

const (
	emitBoth punctureEmit = iota
	emitC1
	emitC2
)

// punctureSchedules gives the emit sequence per puncture-cycle phase for
// each code rate. Rate 7/8 is asymmetric: phases 1, 2, 3 and 5 emit C2
// while phases 4 and 6 emit C1, rather than the more regular pattern
// the other rates follow.
var punctureSchedules = map[CodeRate][]punctureEmit{
	Rate1_2: {emitBoth},
	Rate2_3: {emitBoth, emitC2},
	Rate3_4: {emitBoth, emitC2, emitC1},
	Rate5_6: {emitBoth, emitC2, emitC1, emitC2, emitC1},
	Rate7_8: {emitBoth, emitC2, emitC2, emitC2, emitC1, emitC2, emitC1},
}
