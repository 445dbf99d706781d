// This file is part of funge - https://github.com/db47h/funge
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package asm provides utility functions to assemble and disassemble funge
// programs.
//
// Supported assembler mnemonics:
//
//	TOS is the value on top of the stack. NOS is the next value on the stack.
//
//	char	asm	stack	description
//	----	---	-----	------------------------------------------------------------------------
//	' '	nop		no-op
//	+	add	xy-z	add NOS and TOS
//	-	sub	xy-z	subtract TOS from NOS
//	*	mul	xy-z	multiply NOS with TOS
//	/	div	xy-z	divide NOS by TOS, truncating toward zero
//	%	mod	xy-z	remainder of NOS divided by TOS
//	!	not	n-f	push 1 if TOS is 0, else 0
//	`	gt	xy-f	push 1 if NOS > TOS, else 0
//	>	right		move right
//	<	left		move left
//	^	up		move up
//	v	down		move down
//	?	rand		move in a random direction
//	_	hif	n-	move right if TOS is 0, else left
//	|	vif	n-	move down if TOS is 0, else up
//	"	str		toggle string mode
//	:	dup	n-nn	duplicate TOS
//	\	swap	xy-yx	swap TOS and NOS
//	$	drop	n-	drop TOS
//	.	print	n-	write TOS as a decimal integer followed by a space
//	,	emit	n-	write TOS as a character
//	#	bridge		skip the next cell
//	g	get	xy-n	fetch the cell at (x, y)
//	p	put	nxy-	store NOS at (x, y)
//	&	readint	-n	read a decimal integer from input
//	~	readchar	-n	read a character from input
//	@	halt		stop execution
//	0-9	0-9	-n	push the digit value
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	( this is a
//	  rather long
//	  multiline comment )
//
// Tokens:
//
// Input is split at white space (space, tab or new line) into tokens. The
// parser then does the following:
//
//	- If a token can be converted to a Go integer (see strconv.ParseInt) that
//	  fits in a Cell, it is compiled to a sequence of digits, "9*" and "+"
//	  instructions that pushes this value. Negative values are computed as
//	  0 - n.
//	- Go character literals between single quotes and Go string literals
//	  between double quotes are compiled as string mode sequences. Characters
//	  that cannot appear in string mode (double quote, line feeds, and
//	  non-printable characters) are compiled as integers.
//	- Any other token must be either an instruction mnemonic or the single
//	  character form of an instruction.
//
// For example:
//
//	"olleh" emit emit emit emit emit
//	1029 ( pushes 1029 ) print
//	'\n' ,	( single character forms work too )
//	@
//
// compiles to:
//
//	"olleh",,,,,19*3+9*6+9*3+.19*1+,@
//
// The assembled program is a single line of source code.
package asm
