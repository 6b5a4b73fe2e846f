package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParsePropertyID checks that parsing never panics and always returns
// either a trimmed, re-parseable id or an error.
func FuzzParsePropertyID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("  padded  ")
	f.Add("'; db.dropDatabase();//")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParsePropertyID(input)
		if err != nil {
			return
		}
		if id.String() != strings.TrimSpace(id.String()) {
			t.Errorf("accepted id is not trimmed: %q", id)
		}
		roundTrip, err := ParsePropertyID(id.String())
		if err != nil {
			t.Errorf("valid id failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Error("round-trip changed id value")
		}
		if !utf8.ValidString(input) {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseAllIDs ensures owner and property ids accept and reject the same inputs.
func FuzzParseAllIDs(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("invalid\x7f")

	f.Fuzz(func(t *testing.T, input string) {
		_, errOwner := ParseOwnerID(input)
		_, errProperty := ParsePropertyID(input)

		if (errOwner == nil) != (errProperty == nil) {
			t.Errorf("inconsistent parse results for %q", input)
		}
	})
}
