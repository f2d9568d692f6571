// This file is part of symtbl.
//
// symtbl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// symtbl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with symtbl.  If not, see <https://www.gnu.org/licenses/>.

// Package assembler resolves labels in a line oriented assembly source in two
// passes, using the symbols package to record what it finds.
//
// Pass one records every label definition in a symbol table. A label is the
// first word of a line when it ends with a colon. The address of a label is
// the byte offset of the next instruction, every instruction being four bytes
// long.
//
//	start:  addi $t0, $zero, 10
//	loop:   addi $t0, $t0, -1
//	        bne $t0, $zero, loop
//	        j end
//
// Pass two looks at the final operand of branch and jump instructions. If the
// operand names a label in the symbol table the reference is resolved.
// Otherwise the label and the address of the referring instruction are
// recorded in a relocation table, which allows duplicate names.
//
// Text following a '#' is a comment. Instructions are not otherwise decoded.
package assembler
