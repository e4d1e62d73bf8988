// SPDX-License-Identifier: MIT

package interval

import "errors"

// ErrInvertedRange is returned when an interval's lower bound is greater
// than its upper bound.
var ErrInvertedRange = errors.New("interval: inverted range (lo > hi)")
