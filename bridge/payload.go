package bridge

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/big"

	"github.com/rebasefi/CrossChain-RebaseToken/common"
)

// PayloadVersion is the wire version of the transfer payload.
const PayloadVersion = 1

const wordLength = 32

// payload errors
var (
	ErrPayloadTooShort  = errors.New("payload too short")
	ErrPayloadVersion   = errors.New("unsupported payload version")
	ErrValueOutOfRange  = errors.New("payload value out of range")
	ErrWrongDestChain   = errors.New("payload for wrong destination chain")
	ErrAlreadyDelivered = errors.New("transfer already delivered")
	ErrUnknownPeerChain = errors.New("unknown peer chain")
)

// TransferPayload carries one cross chain transfer through the transport.
// PersonalRate is the sender's rate at burn time, encoded as a fixed 32
// byte big endian word so it round trips byte for byte.
type TransferPayload struct {
	Sender       string
	Receiver     string
	SrcChainID   string
	DestChainID  string
	Amount       *big.Int
	PersonalRate *big.Int
	Timestamp    int64
}

// Encode serializes the payload:
// version | amount word | rate word | timestamp | sender | receiver | src | dest
func (p *TransferPayload) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(PayloadVersion)
	if err := writeWord(buf, p.Amount); err != nil {
		return nil, err
	}
	if err := writeWord(buf, p.PersonalRate); err != nil {
		return nil, err
	}
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(p.Timestamp))
	buf.Write(ts[:])
	writeString(buf, p.Sender)
	writeString(buf, p.Receiver)
	writeString(buf, p.SrcChainID)
	writeString(buf, p.DestChainID)
	return buf.Bytes(), nil
}

// DecodePayload deserializes an encoded transfer payload.
func DecodePayload(data []byte) (*TransferPayload, error) {
	r := bytes.NewReader(data)
	version, err := r.ReadByte()
	if err != nil {
		return nil, ErrPayloadTooShort
	}
	if version != PayloadVersion {
		return nil, ErrPayloadVersion
	}
	amount, err := readWord(r)
	if err != nil {
		return nil, err
	}
	rate, err := readWord(r)
	if err != nil {
		return nil, err
	}
	var ts [8]byte
	if _, err := io.ReadFull(r, ts[:]); err != nil {
		return nil, ErrPayloadTooShort
	}
	sender, err := readString(r)
	if err != nil {
		return nil, err
	}
	receiver, err := readString(r)
	if err != nil {
		return nil, err
	}
	srcChainID, err := readString(r)
	if err != nil {
		return nil, err
	}
	destChainID, err := readString(r)
	if err != nil {
		return nil, err
	}
	return &TransferPayload{
		Sender:       sender,
		Receiver:     receiver,
		SrcChainID:   srcChainID,
		DestChainID:  destChainID,
		Amount:       amount,
		PersonalRate: rate,
		Timestamp:    int64(binary.BigEndian.Uint64(ts[:])),
	}, nil
}

// TransferID is the unique identifier of an encoded transfer payload.
func TransferID(encoded []byte) common.Hash {
	return common.Keccak256Hash(encoded)
}

func writeWord(buf *bytes.Buffer, value *big.Int) error {
	if value == nil || value.Sign() < 0 || value.BitLen() > 8*wordLength {
		return ErrValueOutOfRange
	}
	var word [wordLength]byte
	b := value.Bytes()
	copy(word[wordLength-len(b):], b)
	buf.Write(word[:])
	return nil
}

func readWord(r *bytes.Reader) (*big.Int, error) {
	var word [wordLength]byte
	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, ErrPayloadTooShort
	}
	return new(big.Int).SetBytes(word[:]), nil
}

func writeString(buf *bytes.Buffer, s string) {
	var length [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(length[:], uint64(len(s)))
	buf.Write(length[:n])
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	length, err := binary.ReadUvarint(r)
	if err != nil {
		return "", ErrPayloadTooShort
	}
	if length > uint64(r.Len()) {
		return "", ErrPayloadTooShort
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", ErrPayloadTooShort
	}
	return string(b), nil
}
