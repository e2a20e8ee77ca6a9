package rofdisasm

import "fmt"

// AddressSpace distinguishes the two linear address ranges a reference
// or operand can name: the module's code area, or its data area (bss
// followed by initialized data, per the header's declared sizes).
type AddressSpace int

const (
	SpaceCode AddressSpace = iota
	SpaceData
)

type addrKey struct {
	space AddressSpace
	addr  uint16
}

// Classifier resolves the label that should name an address, combining
// the tracer's code/not-code verdict with the module's reference table
// (spec.md §4.F). Exported symbols always win; otherwise the label
// kind falls out of which region the address lands in.
type Classifier struct {
	mod     *Module
	code    []bool
	symbols map[addrKey]string
	forced  map[addrKey]bool
}

// NewClassifier builds a classifier for mod using codeMap (as produced
// by a Tracer run over mod.ObjectCode). It walks every reference once,
// up front, rather than re-scanning the reference list per lookup.
func NewClassifier(mod *Module, codeMap []bool) *Classifier {
	c := &Classifier{
		mod:     mod,
		code:    codeMap,
		symbols: make(map[addrKey]string),
		forced:  make(map[addrKey]bool),
	}
	c.index()
	return c
}

func (c *Classifier) index() {
	for _, ref := range c.mod.References.All() {
		switch ref.Type {
		case RefGlobal:
			space := SpaceData
			if ref.CodeEntry() {
				space = SpaceCode
			}
			key := addrKey{space, ref.Offset}
			if ref.Symbol != "" {
				c.symbols[key] = ref.Symbol
			}
			c.forced[key] = true

		case RefExternal:
			// An external reference names a patch site within this
			// module (in code or data, per its CODLOC bit) that resolves to
			// a symbol defined elsewhere; it does not itself name an
			// address inside this module worth labeling.
			continue

		case RefLocal:
			c.indexLocal(ref)
		}
	}
}

// indexLocal dereferences a LOCAL reference: its Offset names a
// two-byte slot inside the code or data area (per CodeLocation) that
// holds a pointer to some other address in this module. That pointed-to
// address, not the slot itself, is what needs a label.
func (c *Classifier) indexLocal(ref Reference) {
	var storage []byte
	if ref.CodeLocation() {
		storage = c.mod.ObjectCode
	} else {
		storage = c.mod.InitData
	}
	if int(ref.Offset)+1 >= len(storage) {
		return
	}
	target := uint16(storage[ref.Offset])<<8 | uint16(storage[ref.Offset+1])

	space := SpaceData
	if ref.CodeEntry() {
		space = SpaceCode
	}
	c.forced[addrKey{space, target}] = true
}

// LabelFor returns the label text for addr in space: an exported
// symbol if one targets that exact address, otherwise a generated
// label whose prefix reflects the region (L = traced code, D =
// untraced code-segment data, I = initialized data, U = bss).
func (c *Classifier) LabelFor(space AddressSpace, addr uint16) string {
	if name, ok := c.symbols[addrKey{space, addr}]; ok {
		return name
	}
	switch space {
	case SpaceCode:
		if int(addr) < len(c.code) && c.code[addr] {
			return fmt.Sprintf("L%04X", addr)
		}
		return fmt.Sprintf("D%04X", addr)
	default:
		bssSize := c.mod.SizeUninitData + c.mod.SizeUninitDPData
		if addr < bssSize {
			return fmt.Sprintf("U%04X", addr)
		}
		return fmt.Sprintf("I%04X", addr)
	}
}

// IsForced reports whether addr in space must receive its own label
// line during emission even though it may fall in the middle of a
// data or bss run, because some reference names it directly.
func (c *Classifier) IsForced(space AddressSpace, addr uint16) bool {
	return c.forced[addrKey{space, addr}]
}

// IsCode reports whether addr was reached by the tracer.
func (c *Classifier) IsCode(addr uint16) bool {
	return int(addr) < len(c.code) && c.code[addr]
}
