package rofdisasm

import "testing"

func TestLookupOS9CallLink(t *testing.T) {
	call, ok := lookupOS9Call(0x00)
	if !ok {
		t.Fatalf("service 0x00 should be known")
	}
	if call.Name != "F$Link" {
		t.Errorf("service 0x00 name = %q, want F$Link", call.Name)
	}
	if call.Comment != "Link to Module" {
		t.Errorf("service 0x00 comment = %q, want Link to Module", call.Comment)
	}
}

func TestLookupOS9CallAttach(t *testing.T) {
	call, ok := lookupOS9Call(0x80)
	if !ok || call.Name != "I$Attach" {
		t.Fatalf("service 0x80 = %+v, ok=%v, want I$Attach", call, ok)
	}
}

func TestLookupOS9CallReservedSlot(t *testing.T) {
	// 0x1F falls between the documented F$ calls (through 0x1E) and the
	// next block (0x21 onward); it is a reserved, unnamed slot.
	if _, ok := lookupOS9Call(0x1F); ok {
		t.Errorf("service 0x1F should be unnamed/reserved")
	}
}

func TestLookupOS9CallOutOfRange(t *testing.T) {
	if _, ok := lookupOS9Call(0xFF); ok {
		t.Errorf("service 0xFF is beyond maxOS9Calls and should report not ok")
	}
}
