package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiredEmptyDominatesKindRules(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindGeneric, KindName, KindEmail, KindPhone, KindMessage} {
		spec := FieldSpec{Name: "f", Kind: kind, Required: true}
		for _, raw := range []string{"", "   ", "\t\n"} {
			res := Validate(spec, raw)
			require.False(t, res.Valid, "kind %s raw %q", kind, raw)
			require.Equal(t, ErrRequired, res.Key, "kind %s raw %q", kind, raw)
		}
	}
}

func TestOptionalEmptyIsValid(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindGeneric, KindName, KindEmail, KindPhone, KindMessage} {
		res := Validate(FieldSpec{Name: "f", Kind: kind}, "  ")
		require.True(t, res.Valid, "kind %s", kind)
		require.Equal(t, ErrNone, res.Key)
	}
}

func TestKindRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		spec  FieldSpec
		raw   string
		valid bool
		key   ErrorKind
	}{
		{"name ok", FieldSpec{Kind: KindName, Required: true}, "Ada Lovelace", true, ErrNone},
		{"name hyphen apostrophe", FieldSpec{Kind: KindName, Required: true}, "Mary-Jane O'Brien", true, ErrNone},
		{"name too short", FieldSpec{Kind: KindName, Required: true}, "A", false, ErrInvalidName},
		{"name digits", FieldSpec{Kind: KindName, Required: true}, "R2D2", false, ErrInvalidName},
		{"email ok", FieldSpec{Kind: KindEmail, Required: true}, "a@b.co", true, ErrNone},
		{"email short tld", FieldSpec{Kind: KindEmail, Required: true}, "a@b.c", true, ErrNone},
		{"email no at", FieldSpec{Kind: KindEmail, Required: true}, "not-an-email", false, ErrInvalidEmail},
		{"email no tld", FieldSpec{Kind: KindEmail, Required: true}, "a@b", false, ErrInvalidEmail},
		{"email spaces", FieldSpec{Kind: KindEmail, Required: true}, "a b@c.de", false, ErrInvalidEmail},
		{"phone ok", FieldSpec{Kind: KindPhone}, "+61 (03) 9123-4567", true, ErrNone},
		{"phone letters", FieldSpec{Kind: KindPhone}, "call me", false, ErrInvalidPhone},
		{"message short", FieldSpec{Kind: KindMessage, Required: true}, "short", false, ErrTooShort},
		{"message long enough", FieldSpec{Kind: KindMessage, Required: true}, "this is long enough", true, ErrNone},
		{"message padded short", FieldSpec{Kind: KindMessage, Required: true}, "   tiny      ", false, ErrTooShort},
		{"generic anything", FieldSpec{Kind: KindGeneric, Required: true}, "x", true, ErrNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Validate(tc.spec, tc.raw)
			require.Equal(t, tc.valid, res.Valid)
			require.Equal(t, tc.key, res.Key)
		})
	}
}

// Validate must be referentially transparent: calling it twice with the
// same inputs yields the same result, with no hidden state between calls.
func TestValidateIsPure(t *testing.T) {
	t.Parallel()

	spec := FieldSpec{Name: "email", Kind: KindEmail, Required: true}
	first := Validate(spec, "someone@example.com")
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Validate(spec, "someone@example.com"))
	}
	require.Equal(t, Validate(spec, "bad"), Validate(spec, "bad"))
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, KindEmail, ParseKind("email"))
	require.Equal(t, KindPhone, ParseKind("tel"))
	require.Equal(t, KindPhone, ParseKind(" Phone "))
	require.Equal(t, KindMessage, ParseKind("textarea"))
	require.Equal(t, KindGeneric, ParseKind("checkbox"))
	require.Equal(t, KindGeneric, ParseKind(""))
}

func TestMessageCopyExistsForEveryKey(t *testing.T) {
	t.Parallel()

	for _, key := range []ErrorKind{ErrRequired, ErrInvalidName, ErrInvalidEmail, ErrInvalidPhone, ErrTooShort} {
		require.NotEmpty(t, Message(key), "key %s", key)
	}
	require.Empty(t, Message(ErrNone))
}
