// generated code - do not change

package instructions

// definitionsTable returns the table of instruction definitions for the 65C02
func definitionsTable() []Definition {
	return []Definition{
		{OpCode: 0x00, Mnemonic: "BRK", Bytes: 2, AddressingMode: Immediate, Effect: Interrupt, Shape: EarlyWrite, Flow: Break, Operation: OpBRK},
		{OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x02, Mnemonic: "NOP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x03, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x04, Mnemonic: "TSB", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpTSBTRB},
		{OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpASL},
		{OpCode: 0x07, Mnemonic: "RMB0", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, AddressingMode: Implied, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpPHP},
		{OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x0a, Mnemonic: "ASL", Bytes: 1, AddressingMode: Accumulator, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpASLA},
		{OpCode: 0x0b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x0c, Mnemonic: "TSB", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpTSBTRB},
		{OpCode: 0x0d, Mnemonic: "ORA", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x0e, Mnemonic: "ASL", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpASL},
		{OpCode: 0x0f, Mnemonic: "BBR0", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x12, Mnemonic: "ORA", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x13, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x14, Mnemonic: "TRB", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpTSBTRB},
		{OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, AddressingMode: ZeroPageX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpASL},
		{OpCode: 0x17, Mnemonic: "RMB1", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCLC},
		{OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x1a, Mnemonic: "INC", Bytes: 1, AddressingMode: Accumulator, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpINCA},
		{OpCode: 0x1b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x1c, Mnemonic: "TRB", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpTSBTRB},
		{OpCode: 0x1d, Mnemonic: "ORA", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpORA},
		{OpCode: 0x1e, Mnemonic: "ASL", Bytes: 3, AddressingMode: AbsoluteX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpASL},
		{OpCode: 0x1f, Mnemonic: "BBR1", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, AddressingMode: Absolute, Effect: Subroutine, Shape: DeferredOperand, Flow: Call, Operation: OpJSR},
		{OpCode: 0x21, Mnemonic: "AND", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x22, Mnemonic: "NOP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x23, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpBIT},
		{OpCode: 0x25, Mnemonic: "AND", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROL},
		{OpCode: 0x27, Mnemonic: "RMB2", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpPLP},
		{OpCode: 0x29, Mnemonic: "AND", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x2a, Mnemonic: "ROL", Bytes: 1, AddressingMode: Accumulator, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpROLA},
		{OpCode: 0x2b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x2c, Mnemonic: "BIT", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpBIT},
		{OpCode: 0x2d, Mnemonic: "AND", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x2e, Mnemonic: "ROL", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROL},
		{OpCode: 0x2f, Mnemonic: "BBR2", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0x31, Mnemonic: "AND", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x32, Mnemonic: "AND", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x33, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x34, Mnemonic: "BIT", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpBIT},
		{OpCode: 0x35, Mnemonic: "AND", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, AddressingMode: ZeroPageX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROL},
		{OpCode: 0x37, Mnemonic: "RMB3", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSEC},
		{OpCode: 0x39, Mnemonic: "AND", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x3a, Mnemonic: "DEC", Bytes: 1, AddressingMode: Accumulator, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpDECA},
		{OpCode: 0x3b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x3c, Mnemonic: "BIT", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpBIT},
		{OpCode: 0x3d, Mnemonic: "AND", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpAND},
		{OpCode: 0x3e, Mnemonic: "ROL", Bytes: 3, AddressingMode: AbsoluteX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROL},
		{OpCode: 0x3f, Mnemonic: "BBR3", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, AddressingMode: Implied, Effect: Interrupt, Shape: Normal, Flow: ReturnInterrupt, Operation: OpRTI},
		{OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x42, Mnemonic: "NOP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x43, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x44, Mnemonic: "NOP", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpLSR},
		{OpCode: 0x47, Mnemonic: "RMB4", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, AddressingMode: Implied, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpPHA},
		{OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x4a, Mnemonic: "LSR", Bytes: 1, AddressingMode: Accumulator, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLSRA},
		{OpCode: 0x4b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x4c, Mnemonic: "JMP", Bytes: 3, AddressingMode: Absolute, Effect: Flow, Shape: Normal, Flow: Jump, Operation: NoOperation},
		{OpCode: 0x4d, Mnemonic: "EOR", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x4e, Mnemonic: "LSR", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpLSR},
		{OpCode: 0x4f, Mnemonic: "BBR4", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x52, Mnemonic: "EOR", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x53, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x54, Mnemonic: "NOP", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, AddressingMode: ZeroPageX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpLSR},
		{OpCode: 0x57, Mnemonic: "RMB5", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCLI},
		{OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x5a, Mnemonic: "PHY", Bytes: 1, AddressingMode: Implied, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpPHY},
		{OpCode: 0x5b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x5c, Mnemonic: "NOP", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x5d, Mnemonic: "EOR", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpEOR},
		{OpCode: 0x5e, Mnemonic: "LSR", Bytes: 3, AddressingMode: AbsoluteX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpLSR},
		{OpCode: 0x5f, Mnemonic: "BBR5", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, AddressingMode: Implied, Effect: Subroutine, Shape: Normal, Flow: Return, Operation: OpRTS},
		{OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x62, Mnemonic: "NOP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x63, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x64, Mnemonic: "STZ", Bytes: 2, AddressingMode: ZeroPage, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROR},
		{OpCode: 0x67, Mnemonic: "RMB6", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpPLA},
		{OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x6a, Mnemonic: "ROR", Bytes: 1, AddressingMode: Accumulator, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpRORA},
		{OpCode: 0x6b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x6c, Mnemonic: "JMP", Bytes: 3, AddressingMode: Indirect, Effect: Flow, Shape: Normal, Flow: JumpIndirect, Operation: NoOperation},
		{OpCode: 0x6d, Mnemonic: "ADC", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x6e, Mnemonic: "ROR", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROR},
		{OpCode: 0x6f, Mnemonic: "BBR6", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x72, Mnemonic: "ADC", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x73, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x74, Mnemonic: "STZ", Bytes: 2, AddressingMode: ZeroPageX, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, AddressingMode: ZeroPageX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROR},
		{OpCode: 0x77, Mnemonic: "RMB7", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSEI},
		{OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x7a, Mnemonic: "PLY", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpPLY},
		{OpCode: 0x7b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x7c, Mnemonic: "JMP", Bytes: 3, AddressingMode: AbsoluteIndexedIndirect, Effect: Flow, Shape: Normal, Flow: JumpIndirect, Operation: NoOperation},
		{OpCode: 0x7d, Mnemonic: "ADC", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpADC},
		{OpCode: 0x7e, Mnemonic: "ROR", Bytes: 3, AddressingMode: AbsoluteX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpROR},
		{OpCode: 0x7f, Mnemonic: "BBR7", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x80, Mnemonic: "BRA", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0x81, Mnemonic: "STA", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x82, Mnemonic: "NOP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x83, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x84, Mnemonic: "STY", Bytes: 2, AddressingMode: ZeroPage, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTY},
		{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, AddressingMode: ZeroPage, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x86, Mnemonic: "STX", Bytes: 2, AddressingMode: ZeroPage, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTX},
		{OpCode: 0x87, Mnemonic: "SMB0", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpDEY},
		{OpCode: 0x89, Mnemonic: "BIT", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpBITImmediate},
		{OpCode: 0x8a, Mnemonic: "TXA", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpTXA},
		{OpCode: 0x8b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x8c, Mnemonic: "STY", Bytes: 3, AddressingMode: Absolute, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTY},
		{OpCode: 0x8d, Mnemonic: "STA", Bytes: 3, AddressingMode: Absolute, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x8e, Mnemonic: "STX", Bytes: 3, AddressingMode: Absolute, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTX},
		{OpCode: 0x8f, Mnemonic: "BBS0", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0x91, Mnemonic: "STA", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x92, Mnemonic: "STA", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x93, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x94, Mnemonic: "STY", Bytes: 2, AddressingMode: ZeroPageX, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTY},
		{OpCode: 0x95, Mnemonic: "STA", Bytes: 2, AddressingMode: ZeroPageX, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x96, Mnemonic: "STX", Bytes: 2, AddressingMode: ZeroPageY, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTX},
		{OpCode: 0x97, Mnemonic: "SMB1", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpTYA},
		{OpCode: 0x99, Mnemonic: "STA", Bytes: 3, AddressingMode: AbsoluteY, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x9a, Mnemonic: "TXS", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpTXS},
		{OpCode: 0x9b, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x9c, Mnemonic: "STZ", Bytes: 3, AddressingMode: Absolute, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x9d, Mnemonic: "STA", Bytes: 3, AddressingMode: AbsoluteX, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpSTA},
		{OpCode: 0x9e, Mnemonic: "STZ", Bytes: 3, AddressingMode: AbsoluteX, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0x9f, Mnemonic: "BBS1", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0xa0, Mnemonic: "LDY", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDY},
		{OpCode: 0xa1, Mnemonic: "LDA", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xa2, Mnemonic: "LDX", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDX},
		{OpCode: 0xa3, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xa4, Mnemonic: "LDY", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDY},
		{OpCode: 0xa5, Mnemonic: "LDA", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xa6, Mnemonic: "LDX", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDX},
		{OpCode: 0xa7, Mnemonic: "SMB2", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xa8, Mnemonic: "TAY", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpTAY},
		{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpTAX},
		{OpCode: 0xab, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xac, Mnemonic: "LDY", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDY},
		{OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xae, Mnemonic: "LDX", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDX},
		{OpCode: 0xaf, Mnemonic: "BBS2", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0xb0, Mnemonic: "BCS", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0xb1, Mnemonic: "LDA", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xb2, Mnemonic: "LDA", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xb3, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xb4, Mnemonic: "LDY", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDY},
		{OpCode: 0xb5, Mnemonic: "LDA", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xb6, Mnemonic: "LDX", Bytes: 2, AddressingMode: ZeroPageY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDX},
		{OpCode: 0xb7, Mnemonic: "SMB3", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xb8, Mnemonic: "CLV", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCLV},
		{OpCode: 0xb9, Mnemonic: "LDA", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xba, Mnemonic: "TSX", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpTSX},
		{OpCode: 0xbb, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xbc, Mnemonic: "LDY", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDY},
		{OpCode: 0xbd, Mnemonic: "LDA", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDA},
		{OpCode: 0xbe, Mnemonic: "LDX", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpLDX},
		{OpCode: 0xbf, Mnemonic: "BBS3", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0xc0, Mnemonic: "CPY", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCPY},
		{OpCode: 0xc1, Mnemonic: "CMP", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xc2, Mnemonic: "NOP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xc3, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xc4, Mnemonic: "CPY", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCPY},
		{OpCode: 0xc5, Mnemonic: "CMP", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xc6, Mnemonic: "DEC", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpDEC},
		{OpCode: 0xc7, Mnemonic: "SMB4", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xc8, Mnemonic: "INY", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpINY},
		{OpCode: 0xc9, Mnemonic: "CMP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xca, Mnemonic: "DEX", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpDEX},
		{OpCode: 0xcb, Mnemonic: "WAI", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xcc, Mnemonic: "CPY", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCPY},
		{OpCode: 0xcd, Mnemonic: "CMP", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xce, Mnemonic: "DEC", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpDEC},
		{OpCode: 0xcf, Mnemonic: "BBS4", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0xd0, Mnemonic: "BNE", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0xd1, Mnemonic: "CMP", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xd2, Mnemonic: "CMP", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xd3, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xd4, Mnemonic: "NOP", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xd5, Mnemonic: "CMP", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xd6, Mnemonic: "DEC", Bytes: 2, AddressingMode: ZeroPageX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpDEC},
		{OpCode: 0xd7, Mnemonic: "SMB5", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xd8, Mnemonic: "CLD", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCLD},
		{OpCode: 0xd9, Mnemonic: "CMP", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xda, Mnemonic: "PHX", Bytes: 1, AddressingMode: Implied, Effect: Write, Shape: EarlyWrite, Flow: NoFlow, Operation: OpPHX},
		{OpCode: 0xdb, Mnemonic: "STP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xdc, Mnemonic: "NOP", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xdd, Mnemonic: "CMP", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCMP},
		{OpCode: 0xde, Mnemonic: "DEC", Bytes: 3, AddressingMode: AbsoluteX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpDEC},
		{OpCode: 0xdf, Mnemonic: "BBS5", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0xe0, Mnemonic: "CPX", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCPX},
		{OpCode: 0xe1, Mnemonic: "SBC", Bytes: 2, AddressingMode: IndexedIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xe2, Mnemonic: "NOP", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xe3, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xe4, Mnemonic: "CPX", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCPX},
		{OpCode: 0xe5, Mnemonic: "SBC", Bytes: 2, AddressingMode: ZeroPage, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xe6, Mnemonic: "INC", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpINC},
		{OpCode: 0xe7, Mnemonic: "SMB6", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpINX},
		{OpCode: 0xe9, Mnemonic: "SBC", Bytes: 2, AddressingMode: Immediate, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xea, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xeb, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xec, Mnemonic: "CPX", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpCPX},
		{OpCode: 0xed, Mnemonic: "SBC", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xee, Mnemonic: "INC", Bytes: 3, AddressingMode: Absolute, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpINC},
		{OpCode: 0xef, Mnemonic: "BBS6", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
		{OpCode: 0xf0, Mnemonic: "BEQ", Bytes: 2, AddressingMode: Relative, Effect: Flow, Shape: Normal, Flow: Branch, Operation: NoOperation},
		{OpCode: 0xf1, Mnemonic: "SBC", Bytes: 2, AddressingMode: IndirectIndexed, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xf2, Mnemonic: "SBC", Bytes: 2, AddressingMode: ZeroPageIndirect, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xf3, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xf4, Mnemonic: "NOP", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xf5, Mnemonic: "SBC", Bytes: 2, AddressingMode: ZeroPageX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xf6, Mnemonic: "INC", Bytes: 2, AddressingMode: ZeroPageX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpINC},
		{OpCode: 0xf7, Mnemonic: "SMB7", Bytes: 2, AddressingMode: ZeroPage, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xf8, Mnemonic: "SED", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSED},
		{OpCode: 0xf9, Mnemonic: "SBC", Bytes: 3, AddressingMode: AbsoluteY, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xfa, Mnemonic: "PLX", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpPLX},
		{OpCode: 0xfb, Mnemonic: "NOP", Bytes: 1, AddressingMode: Implied, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xfc, Mnemonic: "NOP", Bytes: 3, AddressingMode: Absolute, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: NoOperation},
		{OpCode: 0xfd, Mnemonic: "SBC", Bytes: 3, AddressingMode: AbsoluteX, Effect: Read, Shape: Normal, Flow: NoFlow, Operation: OpSBC},
		{OpCode: 0xfe, Mnemonic: "INC", Bytes: 3, AddressingMode: AbsoluteX, Effect: Modify, Shape: Normal, Flow: NoFlow, Operation: OpINC},
		{OpCode: 0xff, Mnemonic: "BBS7", Bytes: 3, AddressingMode: ZeroPageRelative, Effect: Flow, Shape: Normal, Flow: BranchZeroPage, Operation: NoOperation},
	}
}
