package bridge

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadRoundTrip(t *testing.T) {
	payload := &TransferPayload{
		Sender:       "alice",
		Receiver:     "bob",
		SrcChainID:   "chain-a",
		DestChainID:  "chain-b",
		Amount:       big.NewInt(123456789),
		PersonalRate: new(big.Int).SetUint64(5e16),
		Timestamp:    1700000000,
	}
	encoded, err := payload.Encode()
	assert.Nil(t, err)

	decoded, err := DecodePayload(encoded)
	assert.Nil(t, err)
	assert.Equal(t, payload, decoded)

	// the rate must survive byte for byte
	reencoded, err := decoded.Encode()
	assert.Nil(t, err)
	assert.Equal(t, encoded, reencoded)
	assert.Equal(t, TransferID(encoded), TransferID(reencoded))
}

func TestPayloadRejectsWrongVersion(t *testing.T) {
	payload := &TransferPayload{
		Amount:       big.NewInt(1),
		PersonalRate: big.NewInt(1),
	}
	encoded, err := payload.Encode()
	assert.Nil(t, err)
	encoded[0] = 99

	_, err = DecodePayload(encoded)
	assert.Equal(t, ErrPayloadVersion, err)
}

func TestPayloadRejectsTruncation(t *testing.T) {
	payload := &TransferPayload{
		Sender:       "alice",
		Receiver:     "bob",
		SrcChainID:   "chain-a",
		DestChainID:  "chain-b",
		Amount:       big.NewInt(1),
		PersonalRate: big.NewInt(1),
	}
	encoded, err := payload.Encode()
	assert.Nil(t, err)

	for _, length := range []int{0, 1, 32, 64, 72, len(encoded) - 1} {
		_, err = DecodePayload(encoded[:length])
		assert.Equal(t, ErrPayloadTooShort, err, "length %v", length)
	}
}

func TestPayloadRejectsOutOfRangeValues(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	payload := &TransferPayload{
		Amount:       tooBig,
		PersonalRate: big.NewInt(1),
	}
	_, err := payload.Encode()
	assert.Equal(t, ErrValueOutOfRange, err)

	payload = &TransferPayload{
		Amount:       big.NewInt(1),
		PersonalRate: big.NewInt(-1),
	}
	_, err = payload.Encode()
	assert.Equal(t, ErrValueOutOfRange, err)
}

func TestTransferIDIsDeterministic(t *testing.T) {
	payload := &TransferPayload{
		Sender:       "alice",
		Receiver:     "bob",
		SrcChainID:   "chain-a",
		DestChainID:  "chain-b",
		Amount:       big.NewInt(10),
		PersonalRate: big.NewInt(20),
		Timestamp:    42,
	}
	first, err := payload.Encode()
	assert.Nil(t, err)
	second, err := payload.Encode()
	assert.Nil(t, err)
	assert.Equal(t, TransferID(first), TransferID(second))

	payload.Timestamp = 43
	third, err := payload.Encode()
	assert.Nil(t, err)
	assert.NotEqual(t, TransferID(first), TransferID(third))
}
