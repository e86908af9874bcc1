/* Package graliffer executes Graliffer, a language whose programs live on a
2-D grid of tiny textual cells.

A Graliffer program is nothing but a grid: a sparse 64x64 space of cells, each
holding at most 3 grapheme clusters of text. Code and data share that space. A
head (the program counter) travels over the grid in one of four directions,
reads the cell under it, and interprets it as a word:

  - an opcode, when the text matches a mnemonic like "add" or "jmp";
  - an address like "@AB", naming a grid position (x then y, one base64
    character each, so "@AB" is column 0 row 1);
  - a pointer like "&AB", a handle that designates another cell's word;
  - otherwise a literal, a bare piece of text with no inherent meaning.

Literals mean nothing on their own: the same cell text "5" is the number five
to an arithmetic opcode and an invalid boolean to a conditional one.
Classification of a cell is static and context free; evaluation is dynamic and
driven entirely by the interpretation the consuming opcode slot demands. That
contextual reinterpretation is the heart of the language.

An opcode assembles its instruction by reading the following cells in the
head's travel direction, one per operand slot, evaluating each under the
slot's required interpretation, and staging the results on a value stack.
Results an opcode pushes stay on the stack for later instructions, so grids
compose dataflow the way FORTH programs do.

The Engine here is an explicit state machine: each Step returns Running,
Halted, or Faulted, and a fault always carries the offending grid position.
Input and output opcodes delegate to injected collaborators, so embedding a
debugger, an editor, or a plain CLI around the engine needs nothing beyond
the options in api.go and the read-only inspection accessors.
*/
package graliffer
