package rofdisasm

// AddrMode enumerates the 6809 addressing modes recognized by the
// decoder (spec.md §4.D). This is a tagged enum dispatched by a single
// switch in driver.go's (*Disassembler).decodeOp, per spec.md §9's explicit preference for
// "a tagged enum variant per addressing mode, with a single match in
// the decoder/tracer" over the original's function-pointer table —
// exactly the redesign fayep-bbcdisasm's own AddressingMode/decode()
// pair already demonstrates for the 6502.
type AddrMode int

const (
	AddrIllegal       AddrMode = iota // slot has no defined instruction
	AddrInherent                      // no operand, e.g. RTS
	AddrImmediateByte                 // #$nn
	AddrImmediateWord                 // #$nnnn
	AddrDirect                        // $nn (direct page)
	AddrExtended                      // $nnnn
	AddrIndexed                       // postbyte-encoded
	AddrRelative                      // 8-bit PC-relative branch
	AddrRelativeLong                  // 16-bit PC-relative branch
	AddrRegToReg                      // EXG/TFR
	AddrStackSystem                   // PSHS/PULS
	AddrStackUser                     // PSHU/PULU
	AddrSyscall                       // SWI2 OS-9 service call
	AddrPage10                        // dispatch to the $10 page table
	AddrPage11                        // dispatch to the $11 page table
)

// TraceEffect enumerates the control-flow effects the tracer applies
// after marking an instruction's bytes as code (spec.md §4.E). Like
// AddrMode, this is a tagged enum switched over in one place
// (tracer.go's applyEffect) rather than a table of function pointers.
type TraceEffect int

const (
	TraceGeneric         TraceEffect = iota // straight-line fall-through
	TraceReturn                             // RTS/RTI: stop the linear scan
	TracePage10                             // redispatch via the $10 page table
	TracePage11                             // redispatch via the $11 page table
	TraceIndexedEffect                      // add the postbyte's extra bytes
	TraceRelative                           // recurse into the branch target
	TraceRelativeLong                       // recurse into the branch target (16-bit)
	TraceRelativeJump                       // unconditional short jump: redirect
	TraceRelativeJumpLong                   // unconditional long jump: redirect
	TracePullStack                          // PULS/PULU: stop iff postbyte includes PC
)

// Opcode describes one opcode table slot: its mnemonic, its length in
// bytes (excluding any indexed-mode extra bytes), its addressing mode,
// and the control-flow effect the tracer applies when it executes.
type Opcode struct {
	Mnemonic string
	Length   int
	Mode     AddrMode
	Trace    TraceEffect
}

// postOpExtraBytes maps an indexed postbyte's low 5 bits (when bit 7 is
// set) to the count of extra bytes the sub-mode consumes. Grounded on
// original_source/disasm.c's postOpExtraBytes table.
var postOpExtraBytes = [32]int{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x00-0x07
	0x01, 0x02, 0x00, 0x00, 0x01, 0x02, 0x00, 0x00, // 0x08-0x0f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x10-0x17
	0x01, 0x02, 0x00, 0x00, 0x01, 0x02, 0x00, 0x02, // 0x18-0x1f
}

// Indexed-mode postbyte sub-codes (low nibble when bit 7 is set),
// spec.md §4.D's table.
const (
	idxIncReg    = 0x0 // ,R+  (indirect invalid)
	idxIncReg2   = 0x1 // ,R++
	idxDecReg    = 0x2 // ,-R  (indirect invalid)
	idxDecReg2   = 0x3 // ,--R
	idxOffset0   = 0x4 // ,R
	idxOffsetB   = 0x5 // B,R
	idxOffsetA   = 0x6 // A,R
	idxIllegal1  = 0x7
	idxOffsetByt = 0x8 // n,R (signed byte)
	idxOffsetWrd = 0x9 // n,R (signed word)
	idxIllegal2  = 0xA
	idxOffsetD   = 0xB // D,R
	idxOffsetPCR = 0xC // n,PCR (signed byte)
	idxOffsetPC2 = 0xD // n,PCR (signed word)
	idxIllegal3  = 0xE
	idxIndirectX = 0xF // [n] extended indirect, requires indirect bit

	pbIndirect = 0x10 // bit 4: indirect flag for the >=0x80 sub-modes
)

// indexedRegisters names the four index registers selected by postbyte
// bits 6-5.
var indexedRegisters = [4]string{"x", "y", "u", "s"}

// interRegisters names the 16 registers usable by EXG/TFR (postbyte
// nibble encoding), per original_source/disasm.c's Inter_Register.
var interRegisters = [16]string{
	"d", "x", "y", "u", "s", "pc", "??", "??",
	"a", "b", "cc", "dp", "??", "??", "??", "??",
}

// stackRegBits/stackSystemRegs/stackUserRegs encode PSHS/PULS/PSHU/PULU
// postbyte bit-to-register mapping, per original_source/disasm.c's
// stackRegBits/stackSRegTxt/stackURegTxt.
var stackRegBits = [8]byte{
	SREGPC, SREGUorS, SREGY, SREGX, SREGDP, SREGB, SREGA, SREGCC,
}

const (
	SREGPC   byte = 0x80
	SREGUorS byte = 0x40
	SREGY    byte = 0x20
	SREGX    byte = 0x10
	SREGDP   byte = 0x08
	SREGB    byte = 0x04
	SREGA    byte = 0x02
	SREGCC   byte = 0x01
)

var stackSystemRegs = [8]string{"pc", "u", "y", "x", "dp", "b", "a", "cc"}
var stackUserRegs = [8]string{"pc", "s", "y", "x", "dp", "b", "a", "cc"}

// baseTable is the 6809's unprefixed opcode table (spec.md §4.D).
//
// The mnemonic/length/addressing-mode assignments are authored from
// the published 6809 instruction set: original_source/disasm.c and
// disasm.h ship the dispatch *functions* (DisasmDirect, DisasmIndexed,
// ...) and the indexed postbyte tables, but not the literal
// per-opcode table contents, so this table is not a transcription of
// any single source file (os9calls.go's table is authored the same way).
var baseTable = [256]Opcode{
	0x00: {"neg", 2, AddrDirect, TraceGeneric},
	0x03: {"com", 2, AddrDirect, TraceGeneric},
	0x04: {"lsr", 2, AddrDirect, TraceGeneric},
	0x06: {"ror", 2, AddrDirect, TraceGeneric},
	0x07: {"asr", 2, AddrDirect, TraceGeneric},
	0x08: {"asl", 2, AddrDirect, TraceGeneric},
	0x09: {"rol", 2, AddrDirect, TraceGeneric},
	0x0A: {"dec", 2, AddrDirect, TraceGeneric},
	0x0C: {"inc", 2, AddrDirect, TraceGeneric},
	0x0D: {"tst", 2, AddrDirect, TraceGeneric},
	0x0E: {"jmp", 2, AddrDirect, TraceGeneric},
	0x0F: {"clr", 2, AddrDirect, TraceGeneric},

	0x10: {"", 1, AddrPage10, TracePage10},
	0x11: {"", 1, AddrPage11, TracePage11},
	0x12: {"nop", 1, AddrInherent, TraceGeneric},
	0x13: {"sync", 1, AddrInherent, TraceGeneric},
	0x16: {"lbra", 3, AddrRelativeLong, TraceRelativeJumpLong},
	0x17: {"lbsr", 3, AddrRelativeLong, TraceRelativeLong},
	0x19: {"daa", 1, AddrInherent, TraceGeneric},
	0x1A: {"orcc", 2, AddrImmediateByte, TraceGeneric},
	0x1C: {"andcc", 2, AddrImmediateByte, TraceGeneric},
	0x1D: {"sex", 1, AddrInherent, TraceGeneric},
	0x1E: {"exg", 2, AddrRegToReg, TraceGeneric},
	0x1F: {"tfr", 2, AddrRegToReg, TraceGeneric},

	0x20: {"bra", 2, AddrRelative, TraceRelativeJump},
	0x21: {"brn", 2, AddrRelative, TraceRelative},
	0x22: {"bhi", 2, AddrRelative, TraceRelative},
	0x23: {"bls", 2, AddrRelative, TraceRelative},
	0x24: {"bhs", 2, AddrRelative, TraceRelative},
	0x25: {"blo", 2, AddrRelative, TraceRelative},
	0x26: {"bne", 2, AddrRelative, TraceRelative},
	0x27: {"beq", 2, AddrRelative, TraceRelative},
	0x28: {"bvc", 2, AddrRelative, TraceRelative},
	0x29: {"bvs", 2, AddrRelative, TraceRelative},
	0x2A: {"bpl", 2, AddrRelative, TraceRelative},
	0x2B: {"bmi", 2, AddrRelative, TraceRelative},
	0x2C: {"bge", 2, AddrRelative, TraceRelative},
	0x2D: {"blt", 2, AddrRelative, TraceRelative},
	0x2E: {"bgt", 2, AddrRelative, TraceRelative},
	0x2F: {"ble", 2, AddrRelative, TraceRelative},

	0x30: {"leax", 2, AddrIndexed, TraceIndexedEffect},
	0x31: {"leay", 2, AddrIndexed, TraceIndexedEffect},
	0x32: {"leas", 2, AddrIndexed, TraceIndexedEffect},
	0x33: {"leau", 2, AddrIndexed, TraceIndexedEffect},
	0x34: {"pshs", 2, AddrStackSystem, TraceGeneric},
	0x35: {"puls", 2, AddrStackSystem, TracePullStack},
	0x36: {"pshu", 2, AddrStackUser, TraceGeneric},
	0x37: {"pulu", 2, AddrStackUser, TracePullStack},
	0x39: {"rts", 1, AddrInherent, TraceReturn},
	0x3A: {"abx", 1, AddrInherent, TraceGeneric},
	0x3B: {"rti", 1, AddrInherent, TraceReturn},
	0x3C: {"cwai", 2, AddrImmediateByte, TraceGeneric},
	0x3D: {"mul", 1, AddrInherent, TraceGeneric},
	0x3F: {"swi", 1, AddrInherent, TraceGeneric},

	0x40: {"nega", 1, AddrInherent, TraceGeneric},
	0x43: {"coma", 1, AddrInherent, TraceGeneric},
	0x44: {"lsra", 1, AddrInherent, TraceGeneric},
	0x46: {"rora", 1, AddrInherent, TraceGeneric},
	0x47: {"asra", 1, AddrInherent, TraceGeneric},
	0x48: {"asla", 1, AddrInherent, TraceGeneric},
	0x49: {"rola", 1, AddrInherent, TraceGeneric},
	0x4A: {"deca", 1, AddrInherent, TraceGeneric},
	0x4C: {"inca", 1, AddrInherent, TraceGeneric},
	0x4D: {"tsta", 1, AddrInherent, TraceGeneric},
	0x4F: {"clra", 1, AddrInherent, TraceGeneric},

	0x50: {"negb", 1, AddrInherent, TraceGeneric},
	0x53: {"comb", 1, AddrInherent, TraceGeneric},
	0x54: {"lsrb", 1, AddrInherent, TraceGeneric},
	0x56: {"rorb", 1, AddrInherent, TraceGeneric},
	0x57: {"asrb", 1, AddrInherent, TraceGeneric},
	0x58: {"aslb", 1, AddrInherent, TraceGeneric},
	0x59: {"rolb", 1, AddrInherent, TraceGeneric},
	0x5A: {"decb", 1, AddrInherent, TraceGeneric},
	0x5C: {"incb", 1, AddrInherent, TraceGeneric},
	0x5D: {"tstb", 1, AddrInherent, TraceGeneric},
	0x5F: {"clrb", 1, AddrInherent, TraceGeneric},

	0x60: {"neg", 2, AddrIndexed, TraceIndexedEffect},
	0x63: {"com", 2, AddrIndexed, TraceIndexedEffect},
	0x64: {"lsr", 2, AddrIndexed, TraceIndexedEffect},
	0x66: {"ror", 2, AddrIndexed, TraceIndexedEffect},
	0x67: {"asr", 2, AddrIndexed, TraceIndexedEffect},
	0x68: {"asl", 2, AddrIndexed, TraceIndexedEffect},
	0x69: {"rol", 2, AddrIndexed, TraceIndexedEffect},
	0x6A: {"dec", 2, AddrIndexed, TraceIndexedEffect},
	0x6C: {"inc", 2, AddrIndexed, TraceIndexedEffect},
	0x6D: {"tst", 2, AddrIndexed, TraceIndexedEffect},
	0x6E: {"jmp", 2, AddrIndexed, TraceIndexedEffect},
	0x6F: {"clr", 2, AddrIndexed, TraceIndexedEffect},

	0x70: {"neg", 3, AddrExtended, TraceGeneric},
	0x73: {"com", 3, AddrExtended, TraceGeneric},
	0x74: {"lsr", 3, AddrExtended, TraceGeneric},
	0x76: {"ror", 3, AddrExtended, TraceGeneric},
	0x77: {"asr", 3, AddrExtended, TraceGeneric},
	0x78: {"asl", 3, AddrExtended, TraceGeneric},
	0x79: {"rol", 3, AddrExtended, TraceGeneric},
	0x7A: {"dec", 3, AddrExtended, TraceGeneric},
	0x7C: {"inc", 3, AddrExtended, TraceGeneric},
	0x7D: {"tst", 3, AddrExtended, TraceGeneric},
	0x7E: {"jmp", 3, AddrExtended, TraceGeneric},
	0x7F: {"clr", 3, AddrExtended, TraceGeneric},

	0x80: {"suba", 2, AddrImmediateByte, TraceGeneric},
	0x81: {"cmpa", 2, AddrImmediateByte, TraceGeneric},
	0x82: {"sbca", 2, AddrImmediateByte, TraceGeneric},
	0x83: {"subd", 3, AddrImmediateWord, TraceGeneric},
	0x84: {"anda", 2, AddrImmediateByte, TraceGeneric},
	0x85: {"bita", 2, AddrImmediateByte, TraceGeneric},
	0x86: {"lda", 2, AddrImmediateByte, TraceGeneric},
	0x88: {"eora", 2, AddrImmediateByte, TraceGeneric},
	0x89: {"adca", 2, AddrImmediateByte, TraceGeneric},
	0x8A: {"ora", 2, AddrImmediateByte, TraceGeneric},
	0x8B: {"adda", 2, AddrImmediateByte, TraceGeneric},
	0x8C: {"cmpx", 3, AddrImmediateWord, TraceGeneric},
	0x8D: {"bsr", 2, AddrRelative, TraceRelative},
	0x8E: {"ldx", 3, AddrImmediateWord, TraceGeneric},

	0x90: {"suba", 2, AddrDirect, TraceGeneric},
	0x91: {"cmpa", 2, AddrDirect, TraceGeneric},
	0x92: {"sbca", 2, AddrDirect, TraceGeneric},
	0x93: {"subd", 2, AddrDirect, TraceGeneric},
	0x94: {"anda", 2, AddrDirect, TraceGeneric},
	0x95: {"bita", 2, AddrDirect, TraceGeneric},
	0x96: {"lda", 2, AddrDirect, TraceGeneric},
	0x97: {"sta", 2, AddrDirect, TraceGeneric},
	0x98: {"eora", 2, AddrDirect, TraceGeneric},
	0x99: {"adca", 2, AddrDirect, TraceGeneric},
	0x9A: {"ora", 2, AddrDirect, TraceGeneric},
	0x9B: {"adda", 2, AddrDirect, TraceGeneric},
	0x9C: {"cmpx", 2, AddrDirect, TraceGeneric},
	0x9D: {"jsr", 2, AddrDirect, TraceGeneric},
	0x9E: {"ldx", 2, AddrDirect, TraceGeneric},
	0x9F: {"stx", 2, AddrDirect, TraceGeneric},

	0xA0: {"suba", 2, AddrIndexed, TraceIndexedEffect},
	0xA1: {"cmpa", 2, AddrIndexed, TraceIndexedEffect},
	0xA2: {"sbca", 2, AddrIndexed, TraceIndexedEffect},
	0xA3: {"subd", 2, AddrIndexed, TraceIndexedEffect},
	0xA4: {"anda", 2, AddrIndexed, TraceIndexedEffect},
	0xA5: {"bita", 2, AddrIndexed, TraceIndexedEffect},
	0xA6: {"lda", 2, AddrIndexed, TraceIndexedEffect},
	0xA7: {"sta", 2, AddrIndexed, TraceIndexedEffect},
	0xA8: {"eora", 2, AddrIndexed, TraceIndexedEffect},
	0xA9: {"adca", 2, AddrIndexed, TraceIndexedEffect},
	0xAA: {"ora", 2, AddrIndexed, TraceIndexedEffect},
	0xAB: {"adda", 2, AddrIndexed, TraceIndexedEffect},
	0xAC: {"cmpx", 2, AddrIndexed, TraceIndexedEffect},
	0xAD: {"jsr", 2, AddrIndexed, TraceIndexedEffect},
	0xAE: {"ldx", 2, AddrIndexed, TraceIndexedEffect},
	0xAF: {"stx", 2, AddrIndexed, TraceIndexedEffect},

	0xB0: {"suba", 3, AddrExtended, TraceGeneric},
	0xB1: {"cmpa", 3, AddrExtended, TraceGeneric},
	0xB2: {"sbca", 3, AddrExtended, TraceGeneric},
	0xB3: {"subd", 3, AddrExtended, TraceGeneric},
	0xB4: {"anda", 3, AddrExtended, TraceGeneric},
	0xB5: {"bita", 3, AddrExtended, TraceGeneric},
	0xB6: {"lda", 3, AddrExtended, TraceGeneric},
	0xB7: {"sta", 3, AddrExtended, TraceGeneric},
	0xB8: {"eora", 3, AddrExtended, TraceGeneric},
	0xB9: {"adca", 3, AddrExtended, TraceGeneric},
	0xBA: {"ora", 3, AddrExtended, TraceGeneric},
	0xBB: {"adda", 3, AddrExtended, TraceGeneric},
	0xBC: {"cmpx", 3, AddrExtended, TraceGeneric},
	0xBD: {"jsr", 3, AddrExtended, TraceGeneric},
	0xBE: {"ldx", 3, AddrExtended, TraceGeneric},
	0xBF: {"stx", 3, AddrExtended, TraceGeneric},

	0xC0: {"subb", 2, AddrImmediateByte, TraceGeneric},
	0xC1: {"cmpb", 2, AddrImmediateByte, TraceGeneric},
	0xC2: {"sbcb", 2, AddrImmediateByte, TraceGeneric},
	0xC3: {"addd", 3, AddrImmediateWord, TraceGeneric},
	0xC4: {"andb", 2, AddrImmediateByte, TraceGeneric},
	0xC5: {"bitb", 2, AddrImmediateByte, TraceGeneric},
	0xC6: {"ldb", 2, AddrImmediateByte, TraceGeneric},
	0xC8: {"eorb", 2, AddrImmediateByte, TraceGeneric},
	0xC9: {"adcb", 2, AddrImmediateByte, TraceGeneric},
	0xCA: {"orb", 2, AddrImmediateByte, TraceGeneric},
	0xCB: {"addb", 2, AddrImmediateByte, TraceGeneric},
	0xCC: {"ldd", 3, AddrImmediateWord, TraceGeneric},
	0xCE: {"ldu", 3, AddrImmediateWord, TraceGeneric},

	0xD0: {"subb", 2, AddrDirect, TraceGeneric},
	0xD1: {"cmpb", 2, AddrDirect, TraceGeneric},
	0xD2: {"sbcb", 2, AddrDirect, TraceGeneric},
	0xD3: {"addd", 2, AddrDirect, TraceGeneric},
	0xD4: {"andb", 2, AddrDirect, TraceGeneric},
	0xD5: {"bitb", 2, AddrDirect, TraceGeneric},
	0xD6: {"ldb", 2, AddrDirect, TraceGeneric},
	0xD7: {"stb", 2, AddrDirect, TraceGeneric},
	0xD8: {"eorb", 2, AddrDirect, TraceGeneric},
	0xD9: {"adcb", 2, AddrDirect, TraceGeneric},
	0xDA: {"orb", 2, AddrDirect, TraceGeneric},
	0xDB: {"addb", 2, AddrDirect, TraceGeneric},
	0xDC: {"ldd", 2, AddrDirect, TraceGeneric},
	0xDD: {"std", 2, AddrDirect, TraceGeneric},
	0xDE: {"ldu", 2, AddrDirect, TraceGeneric},
	0xDF: {"stu", 2, AddrDirect, TraceGeneric},

	0xE0: {"subb", 2, AddrIndexed, TraceIndexedEffect},
	0xE1: {"cmpb", 2, AddrIndexed, TraceIndexedEffect},
	0xE2: {"sbcb", 2, AddrIndexed, TraceIndexedEffect},
	0xE3: {"addd", 2, AddrIndexed, TraceIndexedEffect},
	0xE4: {"andb", 2, AddrIndexed, TraceIndexedEffect},
	0xE5: {"bitb", 2, AddrIndexed, TraceIndexedEffect},
	0xE6: {"ldb", 2, AddrIndexed, TraceIndexedEffect},
	0xE7: {"stb", 2, AddrIndexed, TraceIndexedEffect},
	0xE8: {"eorb", 2, AddrIndexed, TraceIndexedEffect},
	0xE9: {"adcb", 2, AddrIndexed, TraceIndexedEffect},
	0xEA: {"orb", 2, AddrIndexed, TraceIndexedEffect},
	0xEB: {"addb", 2, AddrIndexed, TraceIndexedEffect},
	0xEC: {"ldd", 2, AddrIndexed, TraceIndexedEffect},
	0xED: {"std", 2, AddrIndexed, TraceIndexedEffect},
	0xEE: {"ldu", 2, AddrIndexed, TraceIndexedEffect},
	0xEF: {"stu", 2, AddrIndexed, TraceIndexedEffect},

	0xF0: {"subb", 3, AddrExtended, TraceGeneric},
	0xF1: {"cmpb", 3, AddrExtended, TraceGeneric},
	0xF2: {"sbcb", 3, AddrExtended, TraceGeneric},
	0xF3: {"addd", 3, AddrExtended, TraceGeneric},
	0xF4: {"andb", 3, AddrExtended, TraceGeneric},
	0xF5: {"bitb", 3, AddrExtended, TraceGeneric},
	0xF6: {"ldb", 3, AddrExtended, TraceGeneric},
	0xF7: {"stb", 3, AddrExtended, TraceGeneric},
	0xF8: {"eorb", 3, AddrExtended, TraceGeneric},
	0xF9: {"adcb", 3, AddrExtended, TraceGeneric},
	0xFA: {"orb", 3, AddrExtended, TraceGeneric},
	0xFB: {"addb", 3, AddrExtended, TraceGeneric},
	0xFC: {"ldd", 3, AddrExtended, TraceGeneric},
	0xFD: {"std", 3, AddrExtended, TraceGeneric},
	0xFE: {"ldu", 3, AddrExtended, TraceGeneric},
	0xFF: {"stu", 3, AddrExtended, TraceGeneric},
}

// page10Table holds the opcodes introduced by the $10 prefix byte.
// Length excludes the $10 prefix itself; TracePage10 (see tracer.go)
// accounts for it by adding 1 to whatever this table's entry reports.
var page10Table = [256]Opcode{
	0x21: {"lbrn", 3, AddrRelativeLong, TraceRelativeLong},
	0x22: {"lbhi", 3, AddrRelativeLong, TraceRelativeLong},
	0x23: {"lbls", 3, AddrRelativeLong, TraceRelativeLong},
	0x24: {"lbhs", 3, AddrRelativeLong, TraceRelativeLong},
	0x25: {"lblo", 3, AddrRelativeLong, TraceRelativeLong},
	0x26: {"lbne", 3, AddrRelativeLong, TraceRelativeLong},
	0x27: {"lbeq", 3, AddrRelativeLong, TraceRelativeLong},
	0x28: {"lbvc", 3, AddrRelativeLong, TraceRelativeLong},
	0x29: {"lbvs", 3, AddrRelativeLong, TraceRelativeLong},
	0x2A: {"lbpl", 3, AddrRelativeLong, TraceRelativeLong},
	0x2B: {"lbmi", 3, AddrRelativeLong, TraceRelativeLong},
	0x2C: {"lbge", 3, AddrRelativeLong, TraceRelativeLong},
	0x2D: {"lblt", 3, AddrRelativeLong, TraceRelativeLong},
	0x2E: {"lbgt", 3, AddrRelativeLong, TraceRelativeLong},
	0x2F: {"lble", 3, AddrRelativeLong, TraceRelativeLong},

	0x3F: {"swi2", 2, AddrSyscall, TraceGeneric},

	0x83: {"cmpd", 3, AddrImmediateWord, TraceGeneric},
	0x8C: {"cmpy", 3, AddrImmediateWord, TraceGeneric},
	0x8E: {"ldy", 3, AddrImmediateWord, TraceGeneric},

	0x93: {"cmpd", 2, AddrDirect, TraceGeneric},
	0x9C: {"cmpy", 2, AddrDirect, TraceGeneric},
	0x9E: {"ldy", 2, AddrDirect, TraceGeneric},
	0x9F: {"sty", 2, AddrDirect, TraceGeneric},

	0xA3: {"cmpd", 2, AddrIndexed, TraceIndexedEffect},
	0xAC: {"cmpy", 2, AddrIndexed, TraceIndexedEffect},
	0xAE: {"ldy", 2, AddrIndexed, TraceIndexedEffect},
	0xAF: {"sty", 2, AddrIndexed, TraceIndexedEffect},

	0xB3: {"cmpd", 3, AddrExtended, TraceGeneric},
	0xBC: {"cmpy", 3, AddrExtended, TraceGeneric},
	0xBE: {"ldy", 3, AddrExtended, TraceGeneric},
	0xBF: {"sty", 3, AddrExtended, TraceGeneric},

	0xCE: {"lds", 3, AddrImmediateWord, TraceGeneric},
	0xDE: {"lds", 2, AddrDirect, TraceGeneric},
	0xDF: {"sts", 2, AddrDirect, TraceGeneric},
	0xEE: {"lds", 2, AddrIndexed, TraceIndexedEffect},
	0xEF: {"sts", 2, AddrIndexed, TraceIndexedEffect},
	0xFE: {"lds", 3, AddrExtended, TraceGeneric},
	0xFF: {"sts", 3, AddrExtended, TraceGeneric},
}

// page11Table holds the opcodes introduced by the $11 prefix byte.
var page11Table = [256]Opcode{
	0x3F: {"swi3", 1, AddrInherent, TraceGeneric},

	0x83: {"cmpu", 3, AddrImmediateWord, TraceGeneric},
	0x8C: {"cmps", 3, AddrImmediateWord, TraceGeneric},

	0x93: {"cmpu", 2, AddrDirect, TraceGeneric},
	0x9C: {"cmps", 2, AddrDirect, TraceGeneric},

	0xA3: {"cmpu", 2, AddrIndexed, TraceIndexedEffect},
	0xAC: {"cmps", 2, AddrIndexed, TraceIndexedEffect},

	0xB3: {"cmpu", 3, AddrExtended, TraceGeneric},
	0xBC: {"cmps", 3, AddrExtended, TraceGeneric},
}

// indexedExtraBytes returns the number of extra bytes consumed by an
// indexed postbyte beyond the opcode and the postbyte itself.
func indexedExtraBytes(postbyte byte) int {
	if postbyte&0x80 == 0 {
		return 0
	}
	return postOpExtraBytes[postbyte&0x1f]
}
