// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package remote

// AddNoCarry sums non-negative integers decimal digit by decimal digit,
// discarding carries instead of propagating them. Each decimal position of
// the result is the sum of the digits present at that position, modulo 10;
// operands shorter than the longest contribute nothing at positions they
// do not have. The result therefore has as many digits as the longest
// operand:
//
//	AddNoCarry(1, 1)  == 2
//	AddNoCarry(1, 18) == 19
//	AddNoCarry(1, 19) == 10
//
// The UC-2000 uses this arithmetic to build the checksum byte for the SET
// percent command. Behavior for negative inputs is undefined; the encoder
// never produces them.
func AddNoCarry(values ...int) int {
	result := 0
	for place := 1; ; place *= 10 {
		sum := 0
		more := false
		for _, v := range values {
			if v/place > 0 || place == 1 {
				sum += v / place % 10
			}
			if v/place >= 10 {
				more = true
			}
		}
		result += sum % 10 * place
		if !more {
			return result
		}
	}
}
