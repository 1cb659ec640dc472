// SPDX-License-Identifier: MIT

package matrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrBackingSize indicates that an adopted backing slice does not hold rows*cols elements.
var ErrBackingSize = errors.New("matrix: backing slice length does not match dimensions")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDimensionMismatch indicates that operand shapes are not conformable.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrSingular indicates that elimination found no usable pivot.
var ErrSingular = errors.New("matrix: singular matrix")
