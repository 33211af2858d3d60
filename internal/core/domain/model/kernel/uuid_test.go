package kernel_test

import (
	"testing"

	"pickuphub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUUID = "8f14e45f-ceea-467f-a7e4-1d2a7c5b013e"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should not repeat across calls", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
		assert.NotEqual(t, first.String(), second.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse the canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(sampleUUID)

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should parse the variant forms route parameters can carry", func(t *testing.T) {
		variants := []string{
			"{" + sampleUUID + "}",
			"urn:uuid:" + sampleUUID,
			"8f14e45fceea467fa7e41d2a7c5b013e",
		}

		for _, variant := range variants {
			id, err := kernel.UUIDFromString(variant)
			require.NoError(t, err, "variant: %s", variant)
			assert.Equal(t, sampleUUID, id.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		malformed := []string{
			"",
			"PED-AB12CD34",
			"8f14e45f-ceea-467f-a7e4",
			sampleUUID + "-extra",
			"zz14e45f-ceea-467f-a7e4-1d2a7c5b013e",
		}

		for _, input := range malformed {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the column representation", func(t *testing.T) {
		original, err := kernel.UUIDFromString(sampleUUID)
		require.NoError(t, err)

		raw := original.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject a short slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x8f, 0x14, 0xe4})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	id := kernel.NewUUID()
	raw := id.Bytes()

	assert.IsType(t, uuid.UUID{}, raw)
	assert.Equal(t, id.String(), raw.String())
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same value compares equal both ways", func(t *testing.T) {
		left, _ := kernel.UUIDFromString(sampleUUID)
		right, _ := kernel.UUIDFromString(sampleUUID)

		assert.True(t, left.IsEqual(right))
		assert.True(t, right.IsEqual(left))
	})

	t.Run("zero values compare equal to each other only", func(t *testing.T) {
		var zero1, zero2 kernel.UUID

		assert.True(t, zero1.IsEqual(zero2))
		assert.False(t, zero1.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed UUID passes", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var id kernel.UUID
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("explicit nil UUID fails", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_Immutability(t *testing.T) {
	// Bytes returns a copy; writing through it must not reach the value object.
	id := kernel.NewUUID()
	before := id.String()

	raw := id.Bytes()
	for i := range raw {
		raw[i] = 0xFF
	}

	assert.Equal(t, before, id.String())
	assert.NoError(t, id.Validate())
}
