// This file is part of mos6502bus.
//
// mos6502bus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502bus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502bus.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Category of an instruction describes its effect
type Category int

const (
	Read Category = iota
	Write
	Modify
	Flow
	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Shape describes the order of bus cycles for an instruction when it
// deviates from the usual order of opcode, operands and then memory access.
type Shape int

const (
	Normal Shape = iota

	// the instruction writes a register value to the bus. stores and pushes
	EarlyWrite

	// the second operand is fetched after the stack has been written to. only
	// JSR behaves like this
	DeferredOperand
)

func (s Shape) String() string {
	switch s {
	case Normal:
		return "Normal"
	case EarlyWrite:
		return "EarlyWrite"
	case DeferredOperand:
		return "DeferredOperand"
	}
	return "unknown shape"
}

// FlowControl describes how an instruction changes the program counter, other
// than by advancing over itself.
type FlowControl int

const (
	NoFlow FlowControl = iota
	Branch
	BranchZeroPage
	Jump
	JumpIndirect
	Call
	Return
	ReturnInterrupt
	Break
)

func (f FlowControl) String() string {
	switch f {
	case NoFlow:
		return "NoFlow"
	case Branch:
		return "Branch"
	case BranchZeroPage:
		return "BranchZeroPage"
	case Jump:
		return "Jump"
	case JumpIndirect:
		return "JumpIndirect"
	case Call:
		return "Call"
	case Return:
		return "Return"
	case ReturnInterrupt:
		return "ReturnInterrupt"
	case Break:
		return "Break"
	}
	return "unknown flow"
}
