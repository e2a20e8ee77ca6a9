package rofdisasm

import (
	"context"
	"strings"
	"testing"
)

func moduleWithCode(code []byte) *Module {
	return &Module{
		Name:       "TEST",
		ObjectCode: code,
		References: NewReferenceStore(),
	}
}

func TestDisassemblerSingleRTS(t *testing.T) {
	mod := moduleWithCode([]byte{0x39})
	var out strings.Builder
	d := NewDisassembler(mod, &out)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "rts") {
		t.Fatalf("output missing rts instruction: %q", text)
	}
	if !strings.Contains(text, "psect") || !strings.Contains(text, "endsect") {
		t.Fatalf("output missing section framing: %q", text)
	}
}

func TestDisassemblerFallsBackToEntryZero(t *testing.T) {
	// No GLOBAL CODENT reference exists, so tracing must start at 0.
	mod := moduleWithCode([]byte{0x12, 0x39}) // nop ; rts
	var out strings.Builder
	d := NewDisassembler(mod, &out)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "nop") || !strings.Contains(text, "rts") {
		t.Fatalf("expected both instructions disassembled from fallback entry 0: %q", text)
	}
}

func TestDisassemblerUsesGlobalEntryPoint(t *testing.T) {
	// Byte 0 is unreachable data; the only code is the rts at byte 2,
	// exported as START.
	mod := moduleWithCode([]byte{0xAA, 0xBB, 0x39})
	mod.References.Add(Reference{Type: RefGlobal, Symbol: "START", Flag: FlagCodeEnt, Offset: 2})
	var out strings.Builder
	d := NewDisassembler(mod, &out)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "START") {
		t.Fatalf("exported entry symbol should appear in output: %q", text)
	}
	if !strings.Contains(text, "fcb") {
		t.Fatalf("unreachable leading bytes should be dumped as fcb: %q", text)
	}
}

func TestDisassemblerRespectsContextCancellation(t *testing.T) {
	mod := moduleWithCode([]byte{0x39})
	var out strings.Builder
	d := NewDisassembler(mod, &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx); err == nil {
		t.Fatalf("Run with a cancelled context should return an error")
	}
}

func TestDecodeIllegalOpcode(t *testing.T) {
	mod := moduleWithCode([]byte{0x01}) // never assigned in baseTable
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	mnemonic, _, comment, length := d.decode(0)
	if mnemonic != "nop" || comment != "[$01] Illegal instruction" || length != 1 {
		t.Errorf("decode(illegal) = %q/%q/%d, want nop/[$01] Illegal instruction/1", mnemonic, comment, length)
	}
}

func TestDecodeSWI2EmitsServiceComment(t *testing.T) {
	mod := moduleWithCode([]byte{0x10, 0x3F, 0x00})
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	mnemonic, operand, comment, length := d.decode(0)
	if mnemonic != "swi2" || operand != "F$Link" || length != 3 {
		t.Errorf("decode(swi2) = %q/%q/%q/%d, want swi2/F$Link/.../3", mnemonic, operand, comment, length)
	}
	if !strings.Contains(comment, "Link to Module") {
		t.Errorf("comment should describe the service: %q", comment)
	}
}

func TestDecodeIndexedFiveBitOffset(t *testing.T) {
	// lda 4,x : postbyte 0x04 (bit7 clear, register x, offset 4).
	mod := moduleWithCode([]byte{0xA6, 0x04})
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	mnemonic, operand, _, length := d.decode(0)
	if mnemonic != "lda" || operand != "4,x" || length != 2 {
		t.Errorf("decode(indexed 5-bit offset) = %q/%q/%d, want lda/4,x/2", mnemonic, operand, length)
	}
}

func TestDecodeIndexedNegativeFiveBitOffset(t *testing.T) {
	// lda -1,x : postbyte 0x1F (bit7 clear, bit4 set => sign-extend).
	mod := moduleWithCode([]byte{0xA6, 0x1F})
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	_, operand, _, _ := d.decode(0)
	if operand != "-1,x" {
		t.Errorf("decode(indexed negative 5-bit offset) operand = %q, want -1,x", operand)
	}
}

func TestDecodeIndexedWordOffsetResolvesLabel(t *testing.T) {
	// lda $1234,x : postbyte 0x89 (word offset sub-mode), word 0x1234.
	mod := moduleWithCode([]byte{0xA6, 0x89, 0x12, 0x34, 0x39})
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	mnemonic, operand, _, length := d.decode(0)
	if mnemonic != "lda" || length != 4 {
		t.Fatalf("decode(indexed word offset) = %q/%d, want lda/4", mnemonic, length)
	}
	if operand != ">I1234,x" {
		t.Errorf("decode(indexed word offset) operand = %q, want >I1234,x", operand)
	}
}

func TestDecodeIndexedPCRelative(t *testing.T) {
	// lda n,PCR (byte form): postbyte 0x8C, offset byte 0x02.
	mod := moduleWithCode([]byte{0xA6, 0x8C, 0x02, 0x39})
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	_, operand, _, length := d.decode(0)
	if length != 3 {
		t.Fatalf("decode length = %d, want 3", length)
	}
	if !strings.HasSuffix(operand, ",pcr") {
		t.Errorf("PC-relative indexed operand = %q, want a ,pcr suffix", operand)
	}
}

func TestDecodeIndexedExtendedIndirect(t *testing.T) {
	// lda [$1234] : postbyte 0x9F, word 0x1234.
	mod := moduleWithCode([]byte{0xA6, 0x9F, 0x12, 0x34})
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	_, operand, _, length := d.decode(0)
	if length != 4 {
		t.Fatalf("decode length = %d, want 4", length)
	}
	if !strings.HasPrefix(operand, "[") || !strings.HasSuffix(operand, "]") {
		t.Errorf("extended-indirect operand = %q, want bracketed", operand)
	}
}

func TestDecodeIndexedIndirectFlagWrapsSimpleSubMode(t *testing.T) {
	// lda [,x++] : postbyte 0x80 | 0x10 | 0x01 = 0x91.
	mod := moduleWithCode([]byte{0xA6, 0x91})
	d := &Disassembler{mod: mod, tracer: NewTracer(mod.ObjectCode)}
	d.cls = NewClassifier(mod, d.tracer.CodeMap())
	_, operand, _, _ := d.decode(0)
	if operand != "[,x++]" {
		t.Errorf("decode(indirect ,x++) operand = %q, want [,x++]", operand)
	}
}

func TestEmitModuleConservesEveryByte(t *testing.T) {
	// A realistic-ish mix: rts immediately, then untraced trailing bytes
	// that must still show up somewhere in the emitted fcb/data lines.
	code := []byte{0x39, 0xDE, 0xAD, 0xBE, 0xEF}
	mod := moduleWithCode(code)
	var out strings.Builder
	d := NewDisassembler(mod, &out)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	for _, want := range []string{"DE", "AD", "BE", "EF"} {
		if !strings.Contains(text, want) {
			t.Errorf("trailing data byte %q not found in output:\n%s", want, text)
		}
	}
}
