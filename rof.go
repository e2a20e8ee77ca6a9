package rofdisasm

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// romSync is the ROF header magic value (spec.md §4.C, §6).
const romSync = 0x62CD2387

// symLen is the maximum length, including the terminator, of a symbol
// name (globals, externals).
const symLen = 64

// maxModuleName is the maximum length of a module name.
const maxModuleName = 255

// CreationStamp is a ROF module's five-byte creation timestamp.
type CreationStamp struct {
	YearOffset uint8 // year - 1900
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
}

// Time returns the creation stamp as a time.Time in UTC. This is a
// convenience accessor not exercised by any testable property in
// spec.md; it exists because every caller eventually wants a real
// timestamp rather than five raw bytes.
func (c CreationStamp) Time() time.Time {
	return time.Date(1900+int(c.YearOffset), time.Month(c.Month), int(c.Day), int(c.Hour), int(c.Minute), 0, 0, time.UTC)
}

// Module is one parsed ROF unit (spec.md §3).
type Module struct {
	Name     string
	Filename string

	SizeUninitData   uint16
	SizeUninitDPData uint16
	SizeInitData     uint16
	SizeInitDPData   uint16
	SizeObjectCode   uint16
	SizeStack        uint16

	ExecEntry    uint16
	TypeLanguage uint16
	AsmValid     uint8
	Created      CreationStamp
	Edition      uint8

	ObjectCode []byte
	InitData   []byte
	InitDPData []byte

	References *ReferenceStore

	// Warnings accumulates non-fatal diagnostics recorded while loading,
	// such as a reference whose flag bits fall outside its type's mask
	// (spec.md §7, FlagOutOfMask: "logged but still stored").
	Warnings []string
}

// LoadROF reads exactly one ROF unit starting at the stream's current
// position. The stream may hold several concatenated units; call
// LoadROF again at the position it leaves the reader to get the next
// one, until it returns ErrNoMore.
func LoadROF(r io.ReadSeeker, filename string) (*Module, error) {
	br := newByteReader(r)

	mod := &Module{
		Filename:   filename,
		References: NewReferenceStore(),
	}

	if err := readHeader(br, mod); err != nil {
		return nil, err
	}
	if err := loadGlobals(br, mod); err != nil {
		return nil, err
	}
	if err := loadCode(br, mod); err != nil {
		return nil, err
	}
	if mod.SizeInitDPData != 0 {
		buf, err := br.bytes(int(mod.SizeInitDPData))
		if err != nil {
			return nil, fmt.Errorf("%s: init DP data: %w", filename, asTruncated(err))
		}
		mod.InitDPData = buf
	}
	if mod.SizeInitData != 0 {
		buf, err := br.bytes(int(mod.SizeInitData))
		if err != nil {
			return nil, fmt.Errorf("%s: init data: %w", filename, asTruncated(err))
		}
		mod.InitData = buf
	}
	if err := loadExternalRefs(br, mod); err != nil {
		return nil, err
	}
	if err := loadLocalRefs(br, mod); err != nil {
		return nil, err
	}

	return mod, nil
}

// asTruncated maps a short-read error to ErrTruncated; it leaves other
// errors (e.g. from a broken io.ReadSeeker) alone.
func asTruncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func readHeader(br *byteReader, mod *Module) error {
	sync, err := br.u32be()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrNoMore
		}
		return fmt.Errorf("%s: header sync: %w", mod.Filename, asTruncated(err))
	}
	if sync != romSync {
		return fmt.Errorf("%s: %w", mod.Filename, ErrBadMagic)
	}

	typeLanguage, err := br.u16be()
	if err != nil {
		return fmt.Errorf("%s: type/language: %w", mod.Filename, asTruncated(err))
	}
	mod.TypeLanguage = typeLanguage

	asmValid, err := br.u8()
	if err != nil {
		return fmt.Errorf("%s: asm valid: %w", mod.Filename, asTruncated(err))
	}
	mod.AsmValid = asmValid

	stamp, err := br.bytes(5)
	if err != nil {
		return fmt.Errorf("%s: creation stamp: %w", mod.Filename, asTruncated(err))
	}
	mod.Created = CreationStamp{stamp[0], stamp[1], stamp[2], stamp[3], stamp[4]}

	edition, err := br.u8()
	if err != nil {
		return fmt.Errorf("%s: edition: %w", mod.Filename, asTruncated(err))
	}
	mod.Edition = edition

	if _, err := br.u8(); err != nil { // reserved byte
		return fmt.Errorf("%s: reserved byte: %w", mod.Filename, asTruncated(err))
	}

	sizes := []*uint16{
		&mod.SizeUninitData,
		&mod.SizeUninitDPData,
		&mod.SizeInitData,
		&mod.SizeInitDPData,
		&mod.SizeObjectCode,
		&mod.SizeStack,
	}
	for _, dst := range sizes {
		v, err := br.u16be()
		if err != nil {
			return fmt.Errorf("%s: header sizes: %w", mod.Filename, asTruncated(err))
		}
		*dst = v
	}

	execEntry, err := br.u16be()
	if err != nil {
		return fmt.Errorf("%s: exec entry: %w", mod.Filename, asTruncated(err))
	}
	mod.ExecEntry = execEntry

	name, err := br.cstr(maxModuleName + 1)
	if err != nil {
		return fmt.Errorf("%s: module name: %w", mod.Filename, asTruncated(err))
	}
	mod.Name = name

	return nil
}

func loadGlobals(br *byteReader, mod *Module) error {
	count, err := br.u16be()
	if err != nil {
		return fmt.Errorf("%s: globals count: %w", mod.Filename, asTruncated(err))
	}

	for i := uint16(0); i < count; i++ {
		symbol, err := br.cstr(symLen)
		if err != nil {
			return fmt.Errorf("%s: global %d symbol: %w", mod.Filename, i, wrapOverlong(err))
		}
		flag, err := br.u8()
		if err != nil {
			return fmt.Errorf("%s: global %d flag: %w", mod.Filename, i, asTruncated(err))
		}
		offset, err := br.u16be()
		if err != nil {
			return fmt.Errorf("%s: global %d offset: %w", mod.Filename, i, asTruncated(err))
		}

		ref := Reference{Type: RefGlobal, Symbol: symbol, Flag: flag, Offset: offset}
		addReference(mod, ref)
	}
	return nil
}

func loadCode(br *byteReader, mod *Module) error {
	if mod.SizeObjectCode == 0 {
		return nil
	}
	buf, err := br.bytes(int(mod.SizeObjectCode))
	if err != nil {
		return fmt.Errorf("%s: object code: %w", mod.Filename, asTruncated(err))
	}
	mod.ObjectCode = buf
	return nil
}

func loadExternalRefs(br *byteReader, mod *Module) error {
	symbolCount, err := br.u16be()
	if err != nil {
		return fmt.Errorf("%s: external symbol count: %w", mod.Filename, asTruncated(err))
	}

	for i := uint16(0); i < symbolCount; i++ {
		symbol, err := br.cstr(symLen)
		if err != nil {
			return fmt.Errorf("%s: external %d symbol: %w", mod.Filename, i, wrapOverlong(err))
		}
		occurrences, err := br.u16be()
		if err != nil {
			return fmt.Errorf("%s: external %d occurrence count: %w", mod.Filename, i, asTruncated(err))
		}
		for j := uint16(0); j < occurrences; j++ {
			flag, err := br.u8()
			if err != nil {
				return fmt.Errorf("%s: external %d.%d flag: %w", mod.Filename, i, j, asTruncated(err))
			}
			offset, err := br.u16be()
			if err != nil {
				return fmt.Errorf("%s: external %d.%d offset: %w", mod.Filename, i, j, asTruncated(err))
			}
			addReference(mod, Reference{Type: RefExternal, Symbol: symbol, Flag: flag, Offset: offset})
		}
	}
	return nil
}

func loadLocalRefs(br *byteReader, mod *Module) error {
	count, err := br.u16be()
	if err != nil {
		return fmt.Errorf("%s: local ref count: %w", mod.Filename, asTruncated(err))
	}

	for i := uint16(0); i < count; i++ {
		flag, err := br.u8()
		if err != nil {
			return fmt.Errorf("%s: local %d flag: %w", mod.Filename, i, asTruncated(err))
		}
		offset, err := br.u16be()
		if err != nil {
			return fmt.Errorf("%s: local %d offset: %w", mod.Filename, i, asTruncated(err))
		}
		addReference(mod, Reference{Type: RefLocal, Flag: flag, Offset: offset})
	}
	return nil
}

// addReference stores ref and records a warning if its flags carry
// bits outside its type's mask (spec.md §3, §7: FlagOutOfMask is
// logged, not fatal).
func addReference(mod *Module, ref Reference) {
	if inMask := mod.References.Add(ref); !inMask {
		mod.Warnings = append(mod.Warnings, fmt.Sprintf(
			"reference %s at $%04X has flag $%02X outside mask $%02X",
			ref.Type, ref.Offset, ref.Flag, ref.Type.flagMask()))
	}
}

func wrapOverlong(err error) error {
	if errors.Is(err, ErrOverlong) {
		return err
	}
	return asTruncated(err)
}
