// Package search finds byte patterns in a buffer.
//
// Searches are linear, byte-exact and never wrap around the buffer ends.
// An empty needle never matches.
//
//	buf := buffer.NewBuffer([]byte{0x00, 0xAB, 0xCD, 0xAB, 0xCD})
//	needle := search.ParseHexNeedle("AB CD")
//
//	off, ok := search.FindNext(buf, 0, needle)     // 1, true
//	off, ok = search.FindNext(buf, 2, needle)      // 3, true
//	off, ok = search.FindPrevious(buf, 3, needle)  // 1, true
package search
