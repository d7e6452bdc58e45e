// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var ErrUnknownVariant = errors.New("unknown waveform variant")
