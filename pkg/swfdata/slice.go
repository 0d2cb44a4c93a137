// Package swfdata carries the producer-side data types the script
// runtime consumes: bytecode slices, function descriptors as parsed
// from DefineFunction/DefineFunction2 actions, a wire encoding for
// shipping descriptors between processes, and version-aware string
// decoding.
package swfdata

// SwfSlice is a half-open window [Start, End) into a movie's action
// byte stream. Slices share the backing array; the runtime never
// mutates bytecode.
type SwfSlice struct {
	Data  []byte
	Start int
	End   int
}

// NewSwfSlice covers the whole byte stream.
func NewSwfSlice(data []byte) SwfSlice {
	return SwfSlice{Data: data, Start: 0, End: len(data)}
}

// Bytes returns the windowed bytes.
func (s SwfSlice) Bytes() []byte {
	if s.Start < 0 || s.End > len(s.Data) || s.Start > s.End {
		return nil
	}
	return s.Data[s.Start:s.End]
}

func (s SwfSlice) Len() int { return s.End - s.Start }

func (s SwfSlice) IsEmpty() bool { return s.Len() <= 0 }

// SubSlice re-windows relative to this slice's start. Out-of-range
// bounds clamp to the slice.
func (s SwfSlice) SubSlice(start, end int) SwfSlice {
	absStart := s.Start + start
	absEnd := s.Start + end
	if absStart < s.Start {
		absStart = s.Start
	}
	if absEnd > s.End {
		absEnd = s.End
	}
	if absStart > absEnd {
		absStart = absEnd
	}
	return SwfSlice{Data: s.Data, Start: absStart, End: absEnd}
}
