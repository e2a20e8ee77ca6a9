package rofdisasm

import "testing"

func TestTraceSingleRTS(t *testing.T) {
	tr := NewTracer([]byte{0x39}) // rts
	tr.TraceFrom(0)
	if !tr.CodeMap()[0] {
		t.Fatalf("byte 0 (rts) should be marked code")
	}
}

func TestTraceBranchOverData(t *testing.T) {
	// bra +2 (skip two data bytes), then rts.
	code := []byte{0x20, 0x02, 0xAA, 0xBB, 0x39}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	cm := tr.CodeMap()
	if !cm[0] || !cm[1] {
		t.Errorf("bra instruction bytes (0,1) should be code")
	}
	if cm[2] || cm[3] {
		t.Errorf("skipped bytes (2,3) should remain data, got %v %v", cm[2], cm[3])
	}
	if !cm[4] {
		t.Errorf("rts at byte 4 should be code")
	}
}

func TestTracePage10PrefixThenRTS(t *testing.T) {
	// 10 8E AA BB : ldy #$aabb ; 39 : rts
	code := []byte{0x10, 0x8E, 0xAA, 0xBB, 0x39}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	cm := tr.CodeMap()
	for i := 0; i < 5; i++ {
		if !cm[i] {
			t.Errorf("byte %d should be code", i)
		}
	}
}

func TestTraceUnconditionalJumpOutOfRangeTargetTerminates(t *testing.T) {
	// bra -3 (0xFD) computes a target that wraps below address 0 and so
	// falls outside the object code entirely. TraceFrom must terminate
	// (a hang here would hang the whole test run) and still mark the
	// bra instruction itself as code.
	code := []byte{0x20, 0xFD}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	if !tr.CodeMap()[0] || !tr.CodeMap()[1] {
		t.Fatalf("bra instruction bytes should be marked code")
	}
}

func TestTraceJumpToAddressZero(t *testing.T) {
	// bra -4 at pc=2 jumps to address 0 exactly: base=2+2=4, offset -4
	// (0xFC is not < 127 so signExtend8 gives -4), target = 4-4 = 0.
	// Asserts no hang and that the redirect target is traced.
	code := []byte{0x39, 0x00, 0x20, 0xFC} // rts ; pad ; bra target=2+2-4=0
	tr := NewTracer(code)
	tr.TraceFrom(2)
	if !tr.CodeMap()[2] || !tr.CodeMap()[3] {
		t.Fatalf("bra instruction bytes should be marked code")
	}
	if !tr.CodeMap()[0] {
		t.Fatalf("redirect target (address 0) should have been traced as code")
	}
}

func TestTraceIndexedWordOffset(t *testing.T) {
	// lda [n,x] extended form isn't needed here; use a plain indexed lda
	// with a 16-bit offset sub-mode (postbyte 0x89 = n,R word offset on X)
	// followed by rts, to exercise the extra-bytes accounting.
	code := []byte{0xA6, 0x89, 0x00, 0x10, 0x39}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	cm := tr.CodeMap()
	for i := 0; i < 5; i++ {
		if !cm[i] {
			t.Errorf("byte %d should be code", i)
		}
	}
}

func TestTraceSWI2ServiceZero(t *testing.T) {
	// 10 3F 00 : swi2 ; service F$Link (0x00) ; then rts
	code := []byte{0x10, 0x3F, 0x00, 0x39}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	cm := tr.CodeMap()
	for i := 0; i < 4; i++ {
		if !cm[i] {
			t.Errorf("byte %d should be code", i)
		}
	}
}

func TestTraceFromIsIdempotent(t *testing.T) {
	code := []byte{0x39}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	before := append([]bool(nil), tr.CodeMap()...)
	tr.TraceFrom(0)
	after := tr.CodeMap()
	if len(before) != len(after) {
		t.Fatalf("code map length changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("byte %d classification changed on re-trace", i)
		}
	}
}

func TestTraceCoversEveryByteExactlyOnce(t *testing.T) {
	// Every byte in the object code ends up classified one way (code)
	// or the other (left false, meaning data); CodeMap never panics or
	// leaves indices unset relative to len(data).
	code := []byte{0x86, 0x01, 0x39, 0xAA, 0xBB}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	cm := tr.CodeMap()
	if len(cm) != len(code) {
		t.Fatalf("CodeMap length = %d, want %d", len(cm), len(code))
	}
	for i := 0; i < 3; i++ {
		if !cm[i] {
			t.Errorf("byte %d should be code", i)
		}
	}
	for i := 3; i < 5; i++ {
		if cm[i] {
			t.Errorf("byte %d should remain data (untraced)", i)
		}
	}
}

func TestTraceConditionalBranchContinuesFallThrough(t *testing.T) {
	// beq +2 targets the rts at byte 4; being conditional, the tracer
	// must also continue the fall-through path onto the rts at byte 2,
	// unlike an unconditional jump which would abandon it.
	code := []byte{0x27, 0x02, 0x39, 0x00, 0x39}
	tr := NewTracer(code)
	tr.TraceFrom(0)
	cm := tr.CodeMap()
	if !cm[0] || !cm[1] {
		t.Errorf("beq instruction should be code")
	}
	if !cm[2] {
		t.Errorf("fall-through rts at byte 2 should also be code")
	}
	if !cm[4] {
		t.Errorf("branch target (rts at 4) should be code")
	}
}

func TestSignExtend8PreservesOriginalThreshold(t *testing.T) {
	if signExtend8(126) != 126 {
		t.Errorf("126 should read as positive 126")
	}
	if signExtend8(127) != 127-256 {
		t.Errorf("127 should read as negative per the preserved threshold bug, got %d", signExtend8(127))
	}
	if signExtend8(128) != 128-256 {
		t.Errorf("128 should read as negative")
	}
	if signExtend8(255) != -1 {
		t.Errorf("255 should read as -1")
	}
}
