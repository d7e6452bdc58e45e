// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNotOggFile     = errors.New("not an ogg file")
	ErrInvalidOggPage = errors.New("invalid ogg page")
	ErrNoSuchTrack    = errors.New("no such track in ogg stream")
)
