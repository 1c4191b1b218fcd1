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

package execution

import (
	"github.com/jetsetilly/mos6502bus/bus"
	"github.com/jetsetilly/mos6502bus/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: result not finalised")
	}

	if len(r.Cycles) == 0 || r.Cycles[0].Phase != bus.Fetch {
		return curated.Errorf("execution: result does not begin with an opcode fetch")
	}

	if r.Defn == nil {
		return curated.Errorf("execution: opcode is unknown")
	}

	// an interrupt discards the fetched opcode so the number of operand
	// bytes is not meaningful
	if r.Interrupt {
		if r.WriteCount() != 3 {
			return curated.Errorf("execution: interrupt with %d writes", r.WriteCount())
		}
		return nil
	}

	if r.ByteCount != r.Defn.OperandCount() {
		return curated.Errorf("execution: unexpected number of operand bytes for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.ByteCount, r.Defn.OperandCount())
	}

	if len(r.Cycles) < r.Defn.Bytes {
		return curated.Errorf("execution: too few cycles for opcode %#02x [%s] (%d)",
			r.Defn.OpCode, r.Defn.Mnemonic, len(r.Cycles))
	}

	if r.End <= r.Start {
		return curated.Errorf("execution: empty span for opcode %#02x [%s]",
			r.Defn.OpCode, r.Defn.Mnemonic)
	}

	return nil
}
