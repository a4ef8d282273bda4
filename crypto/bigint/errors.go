// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bigint

import "errors"

var (
	// ErrInvalidRadix is returned if the radix is not in [2, 36].
	ErrInvalidRadix = errors.New("radix must be in [2, 36]")
	// ErrEmptyAfterSign is returned if a parsed string is just a sign with no digits.
	ErrEmptyAfterSign = errors.New("no digits after sign")
	// ErrInvalidChar is returned if a parsed string has a character outside 0-9a-zA-Z.
	ErrInvalidChar = errors.New("invalid character in number")
	// ErrDigitOutOfRange is returned if a parsed digit is not smaller than the radix.
	ErrDigitOutOfRange = errors.New("digit out of range for radix")
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
