package rofdisasm

import (
	"context"
	"fmt"
	"io"
)

// extendedJumpMnemonics names the mnemonics whose extended or indexed
// word-offset operand addresses code rather than data, so label
// resolution picks SpaceCode instead of SpaceData for them.
var extendedJumpMnemonics = map[string]bool{
	"jmp": true,
	"jsr": true,
}

const (
	maxFCBLength = 8  // bytes per fcb line, spec.md §4.G / original MAX_FCBLENGTH
	maxFCCLength = 32 // bytes per fcc line, spec.md §4.G / original MAX_FCCLENGTH
)

// Disassembler orchestrates the full pipeline for one module: trace
// control flow from its entry points, classify every address, then
// walk the module twice (dry run, then emission) to produce formatted
// 6809 assembly (spec.md §4.H).
type Disassembler struct {
	mod    *Module
	tracer *Tracer
	cls    *Classifier
	em     *Emitter
}

// NewDisassembler prepares a disassembler for mod, writing to w.
func NewDisassembler(mod *Module, w io.Writer) *Disassembler {
	return &Disassembler{
		mod:    mod,
		tracer: NewTracer(mod.ObjectCode),
		em:     NewEmitter(w),
	}
}

// Run traces, classifies, and emits mod's assembly text. It accepts a
// context so a caller driving many modules (or a very large one) can
// cancel the walk between passes.
func (d *Disassembler) Run(ctx context.Context) error {
	d.traceEntryPoints()
	d.cls = NewClassifier(d.mod, d.tracer.CodeMap())

	for pass := 1; pass <= 2; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.em.SetPass(pass)
		if err := d.emitModule(); err != nil {
			return err
		}
	}
	return nil
}

// traceEntryPoints finds every GLOBAL reference whose target is code
// and traces from each; if none exist, it falls back to tracing from
// address 0, matching spec.md §4.E's entry-point rule.
func (d *Disassembler) traceEntryPoints() {
	found := false
	for _, ref := range d.mod.References.All() {
		if ref.Type == RefGlobal && ref.CodeEntry() {
			d.tracer.TraceFrom(ref.Offset)
			found = true
		}
	}
	if !found {
		d.tracer.TraceFrom(0)
	}
}

func (d *Disassembler) emitModule() error {
	if err := d.em.Raw(fmt.Sprintf("\tpsect\t%s,%d,%d,%d,%d,%s\n",
		d.mod.Name, d.mod.SizeStack, d.mod.SizeObjectCode,
		d.mod.SizeUninitData+d.mod.SizeUninitDPData, d.mod.SizeInitData,
		d.cls.LabelFor(SpaceCode, d.mod.ExecEntry))); err != nil {
		return err
	}

	if err := d.emitCode(); err != nil {
		return err
	}

	if err := d.em.Raw("\n\tvsect\n"); err != nil {
		return err
	}
	if err := d.emitBSS(); err != nil {
		return err
	}
	if err := d.emitInitData(); err != nil {
		return err
	}
	return d.em.Raw("\tendsect\n")
}

func (d *Disassembler) emitCode() error {
	addr := uint16(0)
	n := uint16(len(d.mod.ObjectCode))
	for addr < n {
		if d.cls.IsCode(addr) {
			used, err := d.emitInstruction(addr)
			if err != nil {
				return err
			}
			addr += uint16(used)
			continue
		}
		used, err := d.emitCodeDataRun(addr)
		if err != nil {
			return err
		}
		addr = used
	}
	return nil
}

func (d *Disassembler) emitInstruction(addr uint16) (int, error) {
	mnemonic, operand, comment, length := d.decode(addr)
	label := ""
	if d.cls.IsForced(SpaceCode, addr) {
		label = d.cls.LabelFor(SpaceCode, addr)
	}
	if err := d.em.Line(addr, label, mnemonic, operand, comment); err != nil {
		return 0, err
	}
	if length < 1 {
		length = 1
	}
	return length, nil
}

// emitCodeDataRun handles a stretch of the code section the tracer
// never reached. A LOCAL reference whose patch site falls here is
// rendered as fdb (it is a relocatable pointer, not plain data);
// everything else is grouped into fcb lines of up to maxFCBLength
// bytes, per spec.md §4.G.
func (d *Disassembler) emitCodeDataRun(start uint16) (uint16, error) {
	addr := start
	n := uint16(len(d.mod.ObjectCode))

	for addr < n && !d.cls.IsCode(addr) {
		if ref, ok := d.localPatchAt(addr, true); ok {
			if int(addr)+1 >= len(d.mod.ObjectCode) {
				break
			}
			target := uint16(d.mod.ObjectCode[addr])<<8 | uint16(d.mod.ObjectCode[addr+1])
			targetSpace := SpaceData
			if ref.CodeEntry() {
				targetSpace = SpaceCode
			}
			label := ""
			if d.cls.IsForced(SpaceCode, addr) {
				label = d.cls.LabelFor(SpaceCode, addr)
			}
			if err := d.em.Line(addr, label, "fdb", d.cls.LabelFor(targetSpace, target), ""); err != nil {
				return 0, err
			}
			addr += 2
			continue
		}

		runStart := addr
		var buf []byte
		for addr < n && !d.cls.IsCode(addr) && len(buf) < maxFCBLength {
			if _, ok := d.localPatchAt(addr, true); ok {
				break
			}
			buf = append(buf, d.mod.ObjectCode[addr])
			addr++
		}
		label := ""
		if d.cls.IsForced(SpaceCode, runStart) {
			label = d.cls.LabelFor(SpaceCode, runStart)
		}
		if err := d.em.Line(runStart, label, "fcb", fcbOperand(buf), ""); err != nil {
			return 0, err
		}
	}
	return addr, nil
}

func (d *Disassembler) emitBSS() error {
	total := d.mod.SizeUninitData + d.mod.SizeUninitDPData
	addr := uint16(0)
	for addr < total {
		runStart := addr
		addr++
		for addr < total && !d.cls.IsForced(SpaceData, addr) {
			addr++
		}
		label := ""
		if d.cls.IsForced(SpaceData, runStart) {
			label = d.cls.LabelFor(SpaceData, runStart)
		}
		if err := d.em.Line(runStart, label, "rmb", fmt.Sprintf("%d", addr-runStart), ""); err != nil {
			return err
		}
	}
	return nil
}

func (d *Disassembler) emitInitData() error {
	bssSize := d.mod.SizeUninitData + d.mod.SizeUninitDPData
	addr := uint16(0)
	n := uint16(len(d.mod.InitData))
	for addr < n {
		dataAddr := bssSize + addr
		if ref, ok := d.localPatchAt(addr, false); ok {
			if int(addr)+1 >= len(d.mod.InitData) {
				break
			}
			target := uint16(d.mod.InitData[addr])<<8 | uint16(d.mod.InitData[addr+1])
			targetSpace := SpaceData
			if ref.CodeEntry() {
				targetSpace = SpaceCode
			}
			label := ""
			if d.cls.IsForced(SpaceData, dataAddr) {
				label = d.cls.LabelFor(SpaceData, dataAddr)
			}
			if err := d.em.Line(dataAddr, label, "fdb", d.cls.LabelFor(targetSpace, target), ""); err != nil {
				return err
			}
			addr += 2
			continue
		}

		runStart := addr
		var buf []byte
		for addr < n && len(buf) < maxFCCLength {
			if _, ok := d.localPatchAt(addr, false); ok {
				break
			}
			if d.cls.IsForced(SpaceData, bssSize+addr) && addr != runStart {
				break
			}
			buf = append(buf, d.mod.InitData[addr])
			addr++
		}
		if !isPrintableASCII(buf) && len(buf) > maxFCBLength {
			addr -= uint16(len(buf) - maxFCBLength)
			buf = buf[:maxFCBLength]
		}
		label := ""
		if d.cls.IsForced(SpaceData, bssSize+runStart) {
			label = d.cls.LabelFor(SpaceData, bssSize+runStart)
		}
		mnemonic, operand := dataOperand(buf)
		if err := d.em.Line(bssSize+runStart, label, mnemonic, operand, ""); err != nil {
			return err
		}
	}
	return nil
}

// localPatchAt scans for a LOCAL reference whose patch site is exactly
// addr and whose site kind (code vs data) matches wantCodeSite. It is
// a linear scan over the module's (typically small) reference list,
// not an index; it runs once per byte of each data run walked.
func (d *Disassembler) localPatchAt(addr uint16, wantCodeSite bool) (Reference, bool) {
	for _, ref := range d.mod.References.All() {
		if ref.Type == RefLocal && ref.Offset == addr && ref.CodeLocation() == wantCodeSite {
			return ref, true
		}
	}
	return Reference{}, false
}

func fcbOperand(buf []byte) string {
	s := ""
	for i, b := range buf {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("$%02X", b)
	}
	return s
}

// dataOperand chooses fcc for a run of printable ASCII bytes and fcb
// otherwise, per spec.md §4.G's text/binary mode switch.
func dataOperand(buf []byte) (mnemonic, operand string) {
	if isPrintableASCII(buf) {
		return "fcc", fmt.Sprintf("%q", string(buf))
	}
	return "fcb", fcbOperand(buf)
}

func isPrintableASCII(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	for _, b := range buf {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// decode disassembles the instruction at addr, returning its mnemonic,
// formatted operand, an optional trailing comment, and its total
// length including any page prefix and indexed-mode extra bytes.
func (d *Disassembler) decode(addr uint16) (mnemonic, operand, comment string, length int) {
	b := d.mod.ObjectCode[addr]
	op := baseTable[b]
	switch op.Mode {
	case AddrPage10:
		return d.decodePrefixed(addr, &page10Table)
	case AddrPage11:
		return d.decodePrefixed(addr, &page11Table)
	default:
		return d.decodeOp(addr, op)
	}
}

func (d *Disassembler) decodePrefixed(addr uint16, table *[256]Opcode) (string, string, string, int) {
	if int(addr)+1 >= len(d.mod.ObjectCode) {
		return "fcb", fmt.Sprintf("$%02X", d.mod.ObjectCode[addr]), "truncated page prefix", 1
	}
	sub := table[d.mod.ObjectCode[addr+1]]
	m, o, c, l := d.decodeOp(addr+1, sub)
	return m, o, c, l + 1
}

func (d *Disassembler) decodeOp(addr uint16, op Opcode) (mnemonic, operand, comment string, length int) {
	if op.Mnemonic == "" {
		return "nop", "", fmt.Sprintf("[$%02X] Illegal instruction", d.mod.ObjectCode[addr]), 1
	}

	switch op.Mode {
	case AddrInherent:
		return op.Mnemonic, "", "", op.Length

	case AddrImmediateByte:
		return op.Mnemonic, ImmediateByte(d.byteAt(addr + 1)), "", op.Length

	case AddrImmediateWord:
		return op.Mnemonic, ImmediateWord(d.word(int(addr) + 1)), "", op.Length

	case AddrDirect:
		return op.Mnemonic, DirectOperand(d.byteAt(addr + 1)), "", op.Length

	case AddrExtended:
		target := d.word(int(addr) + 1)
		return op.Mnemonic, d.cls.LabelFor(d.spaceFor(op.Mnemonic), target), "", op.Length

	case AddrRelative:
		target := d.relativeTarget(addr, op.Length, false)
		return op.Mnemonic, d.cls.LabelFor(SpaceCode, target), "", op.Length

	case AddrRelativeLong:
		target := d.relativeTarget(addr, op.Length, true)
		return op.Mnemonic, d.cls.LabelFor(SpaceCode, target), "", op.Length

	case AddrIndexed:
		return d.decodeIndexed(addr, op)

	case AddrRegToReg:
		pb := d.byteAt(addr + 1)
		return op.Mnemonic, interRegisters[pb>>4] + "," + interRegisters[pb&0xf], "", op.Length

	case AddrStackSystem:
		return op.Mnemonic, stackOperand(d.byteAt(addr+1), stackSystemRegs), "", op.Length

	case AddrStackUser:
		return op.Mnemonic, stackOperand(d.byteAt(addr+1), stackUserRegs), "", op.Length

	case AddrSyscall:
		svc := d.byteAt(addr + 1)
		if call, ok := lookupOS9Call(svc); ok {
			return op.Mnemonic, call.Name, fmt.Sprintf("[$%02X] %s", svc, call.Comment), op.Length
		}
		return op.Mnemonic, fmt.Sprintf("$%02X", svc), "unknown OS-9 service", op.Length

	default:
		return op.Mnemonic, "", "", op.Length
	}
}

// spaceFor chooses the address space an extended-mode or indexed
// word-offset operand names: jmp/jsr target code, everything else
// (lda, sta, cmpx, ...) targets data.
func (d *Disassembler) spaceFor(mnemonic string) AddressSpace {
	if extendedJumpMnemonics[mnemonic] {
		return SpaceCode
	}
	return SpaceData
}

func stackOperand(postbyte byte, names [8]string) string {
	s := ""
	for i := 0; i < 8; i++ {
		if postbyte&stackRegBits[i] == 0 {
			continue
		}
		if s != "" {
			s += ","
		}
		s += names[i]
	}
	if s == "" {
		return "0"
	}
	return s
}

// decodeIndexed formats an indexed-mode operand (spec.md §4.D): either
// the compact 5-bit signed offset form, or one of the bit-7-set
// extended sub-modes, optionally wrapped in [ ] for indirection.
func (d *Disassembler) decodeIndexed(addr uint16, op Opcode) (mnemonic, operand, comment string, length int) {
	postbyte := d.byteAt(addr + uint16(op.Length) - 1)
	reg := indexedRegisters[(postbyte>>5)&0x3]

	if postbyte&0x80 == 0 {
		offset := int8(postbyte & 0x1f)
		if postbyte&0x10 != 0 {
			offset = int8(postbyte | 0xe0) // sign-extend the 5-bit field
		}
		return op.Mnemonic, fmt.Sprintf("%d,%s", offset, reg), "", op.Length
	}

	sub := postbyte & 0x0f
	indirect := postbyte&pbIndirect != 0
	extra := indexedExtraBytes(postbyte)
	length = op.Length + extra
	extraStart := addr + uint16(op.Length)

	var body string
	switch sub {
	case idxIncReg:
		body = indexedOperand("", reg+"+", false)
	case idxIncReg2:
		body = indexedOperand("", reg+"++", false)
	case idxDecReg:
		body = indexedOperand("", "-"+reg, false)
	case idxDecReg2:
		body = indexedOperand("", "--"+reg, false)
	case idxOffset0:
		body = indexedOperand("", reg, false)
	case idxOffsetB:
		body = indexedOperand("b", reg, false)
	case idxOffsetA:
		body = indexedOperand("a", reg, false)
	case idxOffsetD:
		body = indexedOperand("d", reg, false)
	case idxOffsetByt:
		body = fmt.Sprintf("%d,%s", int8(d.byteAt(extraStart)), reg)
	case idxOffsetWrd:
		target := d.word(int(extraStart))
		body = indexedOperand(">"+d.cls.LabelFor(d.spaceFor(op.Mnemonic), target), reg, false)
	case idxOffsetPCR:
		off := int8(d.byteAt(extraStart))
		target := uint16(int32(addr) + int32(length) + int32(off))
		return op.Mnemonic, d.cls.LabelFor(SpaceCode, target) + ",pcr", "", length
	case idxOffsetPC2:
		off := int16(d.word(int(extraStart)))
		target := uint16(int32(addr) + int32(length) + int32(off))
		return op.Mnemonic, d.cls.LabelFor(SpaceCode, target) + ",pcr", "", length
	case idxIndirectX:
		target := d.word(int(extraStart))
		return op.Mnemonic, "[" + IndirectExtendedAddress(target) + "]", "", length
	default:
		body = "???," + reg
	}

	if indirect {
		body = "[" + body + "]"
	}
	return op.Mnemonic, body, "", length
}

func (d *Disassembler) byteAt(addr uint16) byte {
	if int(addr) >= len(d.mod.ObjectCode) {
		return 0
	}
	return d.mod.ObjectCode[addr]
}

func (d *Disassembler) word(idx int) uint16 {
	if idx < 0 || idx+1 >= len(d.mod.ObjectCode) {
		return 0
	}
	return uint16(d.mod.ObjectCode[idx])<<8 | uint16(d.mod.ObjectCode[idx+1])
}

func (d *Disassembler) relativeTarget(addr uint16, length int, long bool) uint16 {
	base := int32(addr) + int32(length)
	if long {
		word := d.word(int(addr) + length - 2)
		return uint16(base + int32(int16(word)))
	}
	off := d.byteAt(addr + uint16(length) - 1)
	return uint16(base + signExtend8(off))
}

// localPatchAt's counterpart for the data segment is handled by the
// same function above; it differs only by which slice the caller
// later dereferences.
