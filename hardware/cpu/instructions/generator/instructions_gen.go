//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6502bus/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// definitionsTable returns the table of instruction definitions for the 65C02\n" +
	"func definitionsTable() []Definition {\n" +
	"return []Definition{\n"

const trailingBoilerPlate = "}\n}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":                   instructions.Implied,
	"ACCUMULATOR":               instructions.Accumulator,
	"RELATIVE":                  instructions.Relative,
	"IMMEDIATE":                 instructions.Immediate,
	"ZERO_PAGE":                 instructions.ZeroPage,
	"ZERO_PAGE_X":               instructions.ZeroPageX,
	"ZERO_PAGE_Y":               instructions.ZeroPageY,
	"INDEXED_INDIRECT":          instructions.IndexedIndirect,
	"INDIRECT_INDEXED":          instructions.IndirectIndexed,
	"ZERO_PAGE_INDIRECT":        instructions.ZeroPageIndirect,
	"ABSOLUTE":                  instructions.Absolute,
	"ABSOLUTE_X":                instructions.AbsoluteX,
	"ABSOLUTE_Y":                instructions.AbsoluteY,
	"INDIRECT":                  instructions.Indirect,
	"ABSOLUTE_INDEXED_INDIRECT": instructions.AbsoluteIndexedIndirect,
	"ZERO_PAGE_RELATIVE":        instructions.ZeroPageRelative,
}

var categories = map[string]instructions.Category{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"MODIFY":     instructions.Modify,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

var shapes = map[string]instructions.Shape{
	"NORMAL":           instructions.Normal,
	"EARLY_WRITE":      instructions.EarlyWrite,
	"DEFERRED_OPERAND": instructions.DeferredOperand,
}

var flows = map[string]instructions.FlowControl{
	"NO_FLOW":          instructions.NoFlow,
	"BRANCH":           instructions.Branch,
	"BRANCH_ZERO_PAGE": instructions.BranchZeroPage,
	"JUMP":             instructions.Jump,
	"JUMP_INDIRECT":    instructions.JumpIndirect,
	"CALL":             instructions.Call,
	"RETURN":           instructions.Return,
	"RETURN_INTERRUPT": instructions.ReturnInterrupt,
	"BREAK":            instructions.Break,
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = 7

	var deftable [256]*instructions.Definition

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)
		if deftable[newDef.OpCode] != nil {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		// field: mnemonic
		newDef.Mnemonic = rec[1]

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		var ok bool
		newDef.AddressingMode, ok = addressingModes[strings.ToUpper(rec[2])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}
		newDef.Bytes = newDef.AddressingMode.Bytes()

		// field: effect category
		newDef.Effect, ok = categories[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		}

		// field: cycle shape
		newDef.Shape, ok = shapes[strings.ToUpper(rec[4])]
		if !ok {
			return "", fmt.Errorf("unknown cycle shape for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		}

		// field: flow control
		newDef.Flow, ok = flows[strings.ToUpper(rec[5])]
		if !ok {
			return "", fmt.Errorf("unknown flow control for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
		}

		// field: transfer operation
		newDef.Operation, ok = instructions.ParseOperation(rec[6])
		if !ok {
			return "", fmt.Errorf("unknown operation for %#02x (%s) [line %d]", newDef.OpCode, rec[6], line)
		}

		deftable[newDef.OpCode] = &newDef
	}

	s := strings.Builder{}
	for opcode, def := range deftable {
		if def == nil {
			return "", fmt.Errorf("missing definition for opcode %#02x", opcode)
		}

		op := "NoOperation"
		if def.Operation != instructions.NoOperation {
			op = fmt.Sprintf("Op%s", def.Operation)
		}

		s.WriteString(fmt.Sprintf("{OpCode: 0x%02x, Mnemonic: %q, Bytes: %d, AddressingMode: %s, Effect: %s, Shape: %s, Flow: %s, Operation: %s},\n",
			def.OpCode, def.Mnemonic, def.Bytes, def.AddressingMode, def.Effect, def.Shape, def.Flow, op))
	}

	return s.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	// format code using standard Go formatted
	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
