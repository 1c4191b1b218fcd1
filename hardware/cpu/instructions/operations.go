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

// Operation identifies the transfer function used to model the effect of an
// instruction on the CPU registers. Many opcodes share an operation, differing
// only in addressing mode.
type Operation int

// List of operations. NoOperation is used by instructions which have no effect
// on the modelled registers (or whose effect is not modelled).
const (
	NoOperation Operation = iota
	OpADC
	OpAND
	OpASL
	OpASLA
	OpBIT
	OpBITImmediate
	OpBRK
	OpCLC
	OpCLD
	OpCLI
	OpCLV
	OpCMP
	OpCPX
	OpCPY
	OpDEC
	OpDECA
	OpDEX
	OpDEY
	OpEOR
	OpINC
	OpINCA
	OpINX
	OpINY
	OpJSR
	OpLDA
	OpLDX
	OpLDY
	OpLSR
	OpLSRA
	OpORA
	OpPHA
	OpPHP
	OpPHX
	OpPHY
	OpPLA
	OpPLP
	OpPLX
	OpPLY
	OpROL
	OpROLA
	OpROR
	OpRORA
	OpRTI
	OpRTS
	OpSBC
	OpSEC
	OpSED
	OpSEI
	OpSTA
	OpSTX
	OpSTY
	OpTAX
	OpTAY
	OpTSBTRB
	OpTSX
	OpTXA
	OpTXS
	OpTYA

	numOperations
)

var operationNames = [numOperations]string{
	NoOperation:    "-",
	OpADC:          "ADC",
	OpAND:          "AND",
	OpASL:          "ASL",
	OpASLA:         "ASLA",
	OpBIT:          "BIT",
	OpBITImmediate: "BITImmediate",
	OpBRK:          "BRK",
	OpCLC:          "CLC",
	OpCLD:          "CLD",
	OpCLI:          "CLI",
	OpCLV:          "CLV",
	OpCMP:          "CMP",
	OpCPX:          "CPX",
	OpCPY:          "CPY",
	OpDEC:          "DEC",
	OpDECA:         "DECA",
	OpDEX:          "DEX",
	OpDEY:          "DEY",
	OpEOR:          "EOR",
	OpINC:          "INC",
	OpINCA:         "INCA",
	OpINX:          "INX",
	OpINY:          "INY",
	OpJSR:          "JSR",
	OpLDA:          "LDA",
	OpLDX:          "LDX",
	OpLDY:          "LDY",
	OpLSR:          "LSR",
	OpLSRA:         "LSRA",
	OpORA:          "ORA",
	OpPHA:          "PHA",
	OpPHP:          "PHP",
	OpPHX:          "PHX",
	OpPHY:          "PHY",
	OpPLA:          "PLA",
	OpPLP:          "PLP",
	OpPLX:          "PLX",
	OpPLY:          "PLY",
	OpROL:          "ROL",
	OpROLA:         "ROLA",
	OpROR:          "ROR",
	OpRORA:         "RORA",
	OpRTI:          "RTI",
	OpRTS:          "RTS",
	OpSBC:          "SBC",
	OpSEC:          "SEC",
	OpSED:          "SED",
	OpSEI:          "SEI",
	OpSTA:          "STA",
	OpSTX:          "STX",
	OpSTY:          "STY",
	OpTAX:          "TAX",
	OpTAY:          "TAY",
	OpTSBTRB:       "TSBTRB",
	OpTSX:          "TSX",
	OpTXA:          "TXA",
	OpTXS:          "TXS",
	OpTYA:          "TYA",
}

func (op Operation) String() string {
	if op < 0 || op >= numOperations {
		return "unknown operation"
	}
	return operationNames[op]
}

// ParseOperation is the inverse of Operation.String().
func ParseOperation(s string) (Operation, bool) {
	for op, n := range operationNames {
		if n == s {
			return Operation(op), true
		}
	}
	return NoOperation, false
}
