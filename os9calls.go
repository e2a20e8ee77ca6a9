package rofdisasm

// maxOS9Calls bounds the OS-9 system call table (spec.md §4.D); a
// service number at or beyond it has no known name.
const maxOS9Calls = 0x91

// OS9Call names one OS-9 system call reachable through an SWI2
// instruction's following service-number byte.
type OS9Call struct {
	Name    string
	Comment string
}

// os9Calls is indexed by service number. Grounded on the standard
// OS-9/6809 Level Two system call numbering (F$ kernel calls starting
// at $00, I$ file manager calls starting at $80); unused slots between
// the documented F$ calls and I$Attach are reserved in the original
// system and have no entry here.
var os9Calls = [maxOS9Calls]OS9Call{
	0x00: {"F$Link", "Link to Module"},
	0x01: {"F$Load", "Load Module from File"},
	0x02: {"F$UnLink", "Unlink Module"},
	0x03: {"F$Fork", "Start New Process"},
	0x04: {"F$Wait", "Wait for Child Process to Die"},
	0x05: {"F$Chain", "Chain Process to New Memory Space"},
	0x06: {"F$Exit", "Terminate Process"},
	0x07: {"F$Mem", "Set Memory Size"},
	0x08: {"F$Send", "Send Signal to Process"},
	0x09: {"F$Icpt", "Set Signal Intercept"},
	0x0A: {"F$Sleep", "Suspend Process"},
	0x0B: {"F$SSpd", "Suspend Process"},
	0x0C: {"F$ID", "Return Process ID"},
	0x0D: {"F$SPrior", "Set Process Priority"},
	0x0E: {"F$SSWI", "Set Software Interrupt"},
	0x0F: {"F$PErr", "Print Error"},
	0x10: {"F$PrsNam", "Parse Pathlist Name"},
	0x11: {"F$CmpNam", "Compare Two Names"},
	0x12: {"F$SchBit", "Search Bit Map"},
	0x13: {"F$AllBit", "Allocate in Bit Map"},
	0x14: {"F$DelBit", "Deallocate in Bit Map"},
	0x15: {"F$Time", "Get Current Time"},
	0x16: {"F$STime", "Set Current Time"},
	0x17: {"F$CRC", "Generate CRC"},
	0x18: {"F$GPrDsc", "Get Process Descriptor"},
	0x19: {"F$GBlkMp", "Get System Block Map"},
	0x1A: {"F$GModDr", "Get Module Directory"},
	0x1B: {"F$CpyMem", "Copy External Memory"},
	0x1C: {"F$SUser", "Set User ID Number"},
	0x1D: {"F$UnLoad", "Unlink Module by Name"},
	0x1E: {"F$Alarm", "Set Process Alarm"},
	0x21: {"F$NProc", "Set Process Limit"},
	0x22: {"F$VModul", "Validate Module"},
	0x23: {"F$Find64", "Find Process/Path Descriptor"},
	0x24: {"F$All64", "Allocate Process/Path Descriptor"},
	0x25: {"F$Ret64", "Return Process/Path Descriptor"},
	0x26: {"F$SSvc", "Service Request Table Init"},
	0x27: {"F$IODel", "Delete I/O Module"},
	0x28: {"F$SLink", "System Link"},
	0x29: {"F$Boot", "Bootstrap System"},
	0x2A: {"F$BtMem", "Bootstrap Memory Request"},
	0x2B: {"F$GProcP", "Get Process Pointer"},
	0x2C: {"F$Move", "Move Data (Low Memory)"},
	0x2D: {"F$AllRAM", "Allocate RAM Blocks"},
	0x2E: {"F$AllImg", "Allocate Image RAM Blocks"},
	0x2F: {"F$DelImg", "Deallocate Image RAM Blocks"},
	0x30: {"F$SetImg", "Set Process Memory Image"},
	0x31: {"F$FreeLB", "Get Free Low Block"},
	0x32: {"F$FreeHB", "Get Free High Block"},
	0x33: {"F$AllTsk", "Allocate Process Task Number"},
	0x34: {"F$DelTsk", "Deallocate Process Task Number"},
	0x35: {"F$SetTsk", "Set Process Task DAT Image"},
	0x36: {"F$ResTsk", "Reserve Task Number"},
	0x37: {"F$RelTsk", "Release Task Number"},
	0x38: {"F$DATLog", "Convert DAT Block/Offset to Logical"},
	0x3D: {"F$LDABX", "Load A Register From B Accum Offset Indexed"},
	0x3E: {"F$STABX", "Store A Register at B Accum Offset Indexed"},
	0x3F: {"F$AllPrc", "Allocate Process Descriptor"},
	0x40: {"F$DelPrc", "Deallocate Process Descriptor"},
	0x41: {"F$ELink", "Link Using Module Directory Entry"},
	0x42: {"F$FModul", "Find Module Directory Entry"},
	0x43: {"F$MapBlk", "Map Specific Block"},
	0x44: {"F$ClrBlk", "Clear Specific Block"},
	0x45: {"F$DelRAM", "Deallocate RAM Blocks"},
	0x46: {"F$GCMDir", "Pack Module Directory"},
	0x47: {"F$AlHRAM", "Allocate High RAM Blocks"},

	0x80: {"I$Attach", "Attach I/O Device"},
	0x81: {"I$Detach", "Detach I/O Device"},
	0x82: {"I$Dup", "Duplicate Path"},
	0x83: {"I$Create", "Create New File"},
	0x84: {"I$Open", "Open Existing File"},
	0x85: {"I$MakDir", "Make Directory File"},
	0x86: {"I$ChgDir", "Change Default Directory"},
	0x87: {"I$Delete", "Delete File"},
	0x88: {"I$Seek", "Change Current Position"},
	0x89: {"I$Read", "Read Data"},
	0x8A: {"I$Write", "Write Data"},
	0x8B: {"I$ReadLn", "Read Line of ASCII Data"},
	0x8C: {"I$WritLn", "Write Line of ASCII Data"},
	0x8D: {"I$GetStt", "Get Path Status"},
	0x8E: {"I$SetStt", "Set Path Status"},
	0x8F: {"I$Close", "Close Path"},
	0x90: {"I$DeletX", "Delete from Current Exec Dir"},
}

// lookupOS9Call returns the call at service number n, or ok=false if n
// is out of range or unnamed (a reserved slot).
func lookupOS9Call(n byte) (OS9Call, bool) {
	if int(n) >= maxOS9Calls {
		return OS9Call{}, false
	}
	call := os9Calls[n]
	return call, call.Name != ""
}
